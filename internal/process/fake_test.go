package process

import (
	"errors"
	"syscall"
)

// fakeSystem models the kernel's per-thread suspend counts. Freezing a
// process bumps every thread's count and thawing drops it, never below zero.
type fakeSystem struct {
	threads []*fakeThread

	missing map[string]bool   // entry points Resolve cannot find
	denied  map[uint32]bool   // pids OpenProcess refuses
	status  map[string]uint32 // NTSTATUS returned per entry point

	snapshotErr   error
	openThreadErr map[uint32]error
	suspendErr    map[uint32]error

	open        int // handles currently open
	opened      int // handles ever opened
	threadOpens int
	resolve     []string
}

type fakeThread struct {
	tid   uint32
	pid   uint32
	count uint32
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		missing:       map[string]bool{},
		denied:        map[uint32]bool{},
		status:        map[string]uint32{},
		openThreadErr: map[uint32]error{},
		suspendErr:    map[uint32]error{},
	}
}

func (f *fakeSystem) addProcess(pid uint32, tids ...uint32) {
	for _, tid := range tids {
		f.threads = append(f.threads, &fakeThread{tid: tid, pid: pid})
	}
}

func (f *fakeSystem) counts(pid uint32) []uint32 {
	var out []uint32
	for _, t := range f.threads {
		if t.pid == pid {
			out = append(out, t.count)
		}
	}
	return out
}

func (f *fakeSystem) exists(pid uint32) bool {
	for _, t := range f.threads {
		if t.pid == pid {
			return true
		}
	}
	return false
}

func (f *fakeSystem) track() {
	f.open++
	f.opened++
}

func (f *fakeSystem) Resolve(name string) (EntryPoint, error) {
	f.resolve = append(f.resolve, name)
	if f.missing[name] {
		return nil, syscall.Errno(127)
	}
	return func(h Handle) uint32 {
		if st := f.status[name]; st != 0 {
			return st
		}
		fp := h.(*fakeProcess)
		for _, t := range f.threads {
			if t.pid != fp.pid {
				continue
			}
			switch name {
			case suspendEntry:
				t.count++
			case resumeEntry:
				if t.count > 0 {
					t.count--
				}
			}
		}
		return 0
	}, nil
}

func (f *fakeSystem) OpenProcess(pid uint32) (Handle, error) {
	if f.denied[pid] {
		return nil, syscall.Errno(5)
	}
	if !f.exists(pid) {
		return nil, syscall.Errno(87)
	}
	f.track()
	return &fakeProcess{sys: f, pid: pid}, nil
}

func (f *fakeSystem) SnapshotThreads() (ThreadSnapshot, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	entries := make([]ThreadEntry, 0, len(f.threads))
	for _, t := range f.threads {
		entries = append(entries, ThreadEntry{ThreadID: t.tid, OwnerPID: t.pid})
	}
	f.track()
	return &fakeSnapshot{sys: f, entries: entries}, nil
}

func (f *fakeSystem) OpenThread(tid uint32) (ThreadHandle, error) {
	if err := f.openThreadErr[tid]; err != nil {
		return nil, err
	}
	for _, t := range f.threads {
		if t.tid == tid {
			f.track()
			f.threadOpens++
			return &fakeThreadHandle{sys: f, t: t}, nil
		}
	}
	return nil, syscall.Errno(87)
}

type fakeProcess struct {
	sys    *fakeSystem
	pid    uint32
	closed bool
}

func (p *fakeProcess) Close() error {
	if p.closed {
		return errors.New("double close")
	}
	p.closed = true
	p.sys.open--
	return nil
}

type fakeSnapshot struct {
	sys     *fakeSystem
	entries []ThreadEntry
	pos     int
	closed  bool
}

func (s *fakeSnapshot) Next() (ThreadEntry, bool) {
	if s.pos >= len(s.entries) {
		return ThreadEntry{}, false
	}
	e := s.entries[s.pos]
	s.pos++
	return e, true
}

func (s *fakeSnapshot) Close() error {
	if s.closed {
		return errors.New("double close")
	}
	s.closed = true
	s.sys.open--
	return nil
}

type fakeThreadHandle struct {
	sys    *fakeSystem
	t      *fakeThread
	closed bool
}

func (h *fakeThreadHandle) Suspend() (uint32, error) {
	if err := h.sys.suspendErr[h.t.tid]; err != nil {
		return 0, err
	}
	prev := h.t.count
	h.t.count++
	return prev, nil
}

func (h *fakeThreadHandle) Resume() (uint32, error) {
	prev := h.t.count
	if h.t.count > 0 {
		h.t.count--
	}
	return prev, nil
}

func (h *fakeThreadHandle) Close() error {
	if h.closed {
		return errors.New("double close")
	}
	h.closed = true
	h.sys.open--
	return nil
}
