//go:build windows

package process

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// PROCESS_ALL_ACCESS as defined for Vista and later.
const processAllAccess = windows.STANDARD_RIGHTS_REQUIRED | windows.SYNCHRONIZE | 0xffff

// SuspendThread and ResumeThread return this on failure.
const threadCountFailed = 0xffffffff

var (
	modntdll    = windows.NewLazySystemDLL("ntdll.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSuspendThread = modkernel32.NewProc("SuspendThread")
	procResumeThread  = modkernel32.NewProc("ResumeThread")
)

type windowsSystem struct{}

func newSystem() System {
	return windowsSystem{}
}

type winHandle windows.Handle

func (h winHandle) Close() error {
	return windows.CloseHandle(windows.Handle(h))
}

func (windowsSystem) Resolve(name string) (EntryPoint, error) {
	proc := modntdll.NewProc(name)
	if err := proc.Find(); err != nil {
		return nil, err
	}
	return func(h Handle) uint32 {
		wh, ok := h.(winHandle)
		if !ok {
			return uint32(windows.STATUS_INVALID_HANDLE)
		}
		r, _, _ := proc.Call(uintptr(wh))
		return uint32(r)
	}, nil
}

func (windowsSystem) OpenProcess(pid uint32) (Handle, error) {
	h, err := windows.OpenProcess(processAllAccess, false, pid)
	if err != nil {
		return nil, err
	}
	return winHandle(h), nil
}

func (windowsSystem) SnapshotThreads() (ThreadSnapshot, error) {
	h, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPTHREAD, 0)
	if err != nil {
		return nil, err
	}
	return &toolhelpSnapshot{h: h}, nil
}

func (windowsSystem) OpenThread(tid uint32) (ThreadHandle, error) {
	h, err := windows.OpenThread(windows.THREAD_SUSPEND_RESUME, false, tid)
	if err != nil {
		return nil, err
	}
	return winThread(h), nil
}

// toolhelpSnapshot walks a TH32CS_SNAPTHREAD snapshot. Any failure of
// Thread32First/Thread32Next ends the walk.
type toolhelpSnapshot struct {
	h       windows.Handle
	entry   windows.ThreadEntry32
	started bool
	done    bool
}

func (s *toolhelpSnapshot) Next() (ThreadEntry, bool) {
	if s.done {
		return ThreadEntry{}, false
	}
	s.entry.Size = uint32(unsafe.Sizeof(s.entry))

	var err error
	if !s.started {
		s.started = true
		err = windows.Thread32First(s.h, &s.entry)
	} else {
		err = windows.Thread32Next(s.h, &s.entry)
	}
	if err != nil {
		s.done = true
		return ThreadEntry{}, false
	}
	return ThreadEntry{ThreadID: s.entry.ThreadID, OwnerPID: s.entry.OwnerProcessID}, true
}

func (s *toolhelpSnapshot) Close() error {
	return windows.CloseHandle(s.h)
}

type winThread windows.Handle

func (t winThread) Close() error {
	return windows.CloseHandle(windows.Handle(t))
}

func (t winThread) Suspend() (uint32, error) {
	return callThreadCount(procSuspendThread, t)
}

func (t winThread) Resume() (uint32, error) {
	return callThreadCount(procResumeThread, t)
}

func callThreadCount(proc *windows.LazyProc, t winThread) (uint32, error) {
	r, _, e := proc.Call(uintptr(t))
	if uint32(r) == threadCountFailed {
		var errno windows.Errno
		if errors.As(e, &errno) && errno != 0 {
			return 0, errno
		}
		return 0, windows.ERROR_INVALID_HANDLE
	}
	return uint32(r), nil
}
