//go:build windows

package e2e_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const usage = "Usage: susres suspend [pid]\n" +
	"       susres resume  [pid]\n" +
	"       susres status  [pid]"

var _ = Describe("susres", func() {
	Context("usage", func() {
		It("rejects a missing pid", func() {
			out, code := susres("suspend")
			Expect(code).To(Equal(1))
			Expect(out).To(Equal(usage))
		})

		It("rejects an unknown verb", func() {
			out, code := susres("stop", "1")
			Expect(code).To(Equal(1))
			Expect(out).To(Equal(usage))
		})
	})

	Context("with a live process", func() {
		var pid string

		BeforeEach(func() {
			pid = strconv.Itoa(startTarget())
		})

		It("reports R for a running process", func() {
			Expect(susresOK("status", pid)).To(Equal("R"))
		})

		It("reports T after suspend and R after resume", func() {
			Expect(susresOK("suspend", pid)).To(BeEmpty())
			Expect(susresOK("status", pid)).To(Equal("T"))

			Expect(susresOK("resume", pid)).To(BeEmpty())
			Expect(susresOK("status", pid)).To(Equal("R"))
		})

		It("needs as many resumes as suspends", func() {
			susresOK("suspend", pid)
			susresOK("suspend", pid)
			susresOK("resume", pid)
			Expect(susresOK("status", pid)).To(Equal("T"))

			susresOK("resume", pid)
			Expect(susresOK("status", pid)).To(Equal("R"))
		})

		It("accepts resume on a running process", func() {
			Expect(susresOK("resume", pid)).To(BeEmpty())
			Expect(susresOK("status", pid)).To(Equal("R"))
		})

		It("leaves the process state unchanged after a status probe", func() {
			susresOK("suspend", pid)
			for i := 0; i < 3; i++ {
				Expect(susresOK("status", pid)).To(Equal("T"))
			}
			susresOK("resume", pid)
			Expect(susresOK("status", pid)).To(Equal("R"))
		})
	})

	Context("with a pid that does not exist", func() {
		// Windows pids are multiples of four, so this one never names a process.
		const deadPID = "4294967291"

		It("reports no threads on status", func() {
			out, code := susres("status", deadPID)
			Expect(code).To(Equal(1))
			Expect(out).To(Equal("No threads found for pid " + deadPID))
		})

		It("reports an OpenProcess failure on suspend", func() {
			out, code := susres("suspend", deadPID)
			Expect(code).To(Equal(1))
			Expect(out).To(HavePrefix("Failed to OpenProcess(" + deadPID + "): "))
		})
	})
})
