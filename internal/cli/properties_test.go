package cli

import (
	"bytes"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/w31r4/susres/internal/process"
)

// Property: any argument count other than two prints usage, exits 1 and
// touches nothing.
func TestProperty_WrongArgCountPrintsUsage(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		args := rapid.SliceOfN(rapid.String(), 0, 6).
			Filter(func(a []string) bool { return len(a) != 2 }).
			Draw(rt, "args")

		var out bytes.Buffer
		ctl := &fakeController{}

		g.Expect(Run(args, ctl, &out, Config{})).To(Equal(1))
		g.Expect(out.String()).To(Equal(usageText))
		g.Expect(ctl.calls).To(BeEmpty())
	})
}

// Property: an unrecognised verb prints usage, exits 1 and touches nothing.
func TestProperty_UnknownVerbPrintsUsage(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		verb := rapid.String().
			Filter(func(v string) bool {
				_, ok := ParseCommand(v)
				return !ok
			}).
			Draw(rt, "verb")
		pid := rapid.Uint32().Draw(rt, "pid")

		var out bytes.Buffer
		ctl := &fakeController{}

		g.Expect(Run([]string{verb, strconv.FormatUint(uint64(pid), 10)}, ctl, &out, Config{})).To(Equal(1))
		g.Expect(out.String()).To(Equal(usageText))
		g.Expect(ctl.calls).To(BeEmpty())
	})
}

// Property: a known verb with a decimal pid reaches the controller exactly
// once with that pid.
func TestProperty_KnownVerbDispatchesOnce(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(rt)

		c := rapid.SampledFrom(commands).Draw(rt, "command")
		pid := rapid.Uint32().Draw(rt, "pid")

		var out bytes.Buffer
		ctl := &fakeController{state: process.Running}

		code := Run([]string{c.String(), strconv.FormatUint(uint64(pid), 10)}, ctl, &out, Config{StrictPID: true})
		g.Expect(code).To(Equal(0))
		g.Expect(ctl.calls).To(HaveLen(1))
		g.Expect(ctl.calls[0].pid).To(Equal(pid))
	})
}
