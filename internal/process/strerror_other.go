//go:build !windows

package process

import (
	"fmt"
	"syscall"
)

// Strerror returns the platform message for an error code.
func Strerror(code uint32) string {
	return syscall.Errno(code).Error()
}

// StatusText renders an NTSTATUS value. Only Windows carries the ntdll
// message table, so other builds show the raw code.
func StatusText(status uint32) string {
	return fmt.Sprintf("NTSTATUS 0x%08X", status)
}
