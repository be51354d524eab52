//go:build windows

package e2e_test

import (
	"errors"
	"os/exec"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// startTarget launches a long-running child and returns its pid. The child
// is thawed and killed when the test ends.
func startTarget() int {
	cmd := exec.Command("ping", "-n", "600", "127.0.0.1")
	Expect(cmd.Start()).To(Succeed())
	pid := cmd.Process.Pid
	DeferCleanup(func() {
		// A frozen process cannot exit, so release every freeze first.
		for i := 0; i < 8; i++ {
			_, _ = susres("resume", strconv.Itoa(pid))
		}
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})
	return pid
}

// susres runs the binary and returns trimmed stdout and the exit code.
func susres(args ...string) (string, int) {
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.Output()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		ExpectWithOffset(1, errors.As(err, &exitErr)).To(BeTrue(), "running susres: %v", err)
		code = exitErr.ExitCode()
	}
	return strings.TrimSpace(string(out)), code
}

// susresOK runs the binary and expects exit 0.
func susresOK(args ...string) string {
	out, code := susres(args...)
	ExpectWithOffset(1, code).To(Equal(0), "susres %s failed: %s", strings.Join(args, " "), out)
	return out
}
