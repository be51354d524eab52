//go:build windows

package process

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Strerror returns the system message text for a Win32 error code.
func Strerror(code uint32) string {
	buf := make([]uint16, 1024)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		code,
		0,
		buf,
		nil,
	)
	if err != nil || n == 0 {
		return fmt.Sprintf("unknown error 0x%x", code)
	}
	return trimMessage(windows.UTF16ToString(buf[:n]))
}

// StatusText returns the ntdll message for an NTSTATUS value.
func StatusText(status uint32) string {
	return trimMessage(windows.NTStatus(status).Error())
}
