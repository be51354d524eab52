package process

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrUnsupported is returned by every System call on platforms without the
// ntdll freeze/thaw routines.
var ErrUnsupported = errors.New("not available on this platform")

// ErrNoThreads matches a NoThreadsError with errors.Is.
var ErrNoThreads = errors.New("no threads found")

// ResolveError means a freeze/thaw routine could not be found in ntdll.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("Failed to GetProcAddress(%s): %s", e.Name, describe(e.Err))
}

func (e *ResolveError) Unwrap() error { return e.Err }

// AccessError means a process, thread or snapshot handle could not be
// acquired. HasID is false for calls that take no identifier.
type AccessError struct {
	Op    string
	ID    uint32
	HasID bool
	Err   error
}

func (e *AccessError) Error() string {
	if !e.HasID {
		return fmt.Sprintf("Failed to %s: %s", e.Op, describe(e.Err))
	}
	return fmt.Sprintf("Failed to %s(%d): %s", e.Op, e.ID, describe(e.Err))
}

func (e *AccessError) Unwrap() error { return e.Err }

// ThreadError means SuspendThread or ResumeThread failed during a probe.
type ThreadError struct {
	Op  string
	TID uint32
	Err error
}

func (e *ThreadError) Error() string {
	return fmt.Sprintf("%s(%d) failed: %s", e.Op, e.TID, describe(e.Err))
}

func (e *ThreadError) Unwrap() error { return e.Err }

// OperationError carries the non-zero NTSTATUS a freeze/thaw routine returned.
type OperationError struct {
	Name   string
	PID    uint32
	Status uint32
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s(%d) returns %x: %s", e.Name, e.PID, e.Status, StatusText(e.Status))
}

// NoThreadsError means the snapshot held no thread owned by PID.
type NoThreadsError struct {
	PID uint32
}

func (e *NoThreadsError) Error() string {
	return fmt.Sprintf("No threads found for pid %d", e.PID)
}

func (e *NoThreadsError) Is(target error) bool { return target == ErrNoThreads }

// describe renders err for a diagnostic line, decoding OS error codes
// through Strerror.
// trimMessage drops the line break FormatMessage appends. The sentence's own
// period stays.
func trimMessage(s string) string {
	return strings.TrimRight(s, " \r\n")
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return Strerror(uint32(errno))
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "unknown error"
	}
	return msg
}
