package process

// Handle is an open OS handle to a process or thread. Close releases it.
type Handle interface {
	Close() error
}

// EntryPoint is a resolved freeze or thaw routine. It returns the NTSTATUS
// reported by the kernel; zero means success.
type EntryPoint func(h Handle) uint32

// ThreadEntry is one row of a thread snapshot.
type ThreadEntry struct {
	ThreadID uint32
	OwnerPID uint32
}

// ThreadSnapshot iterates a point-in-time listing of every thread on the
// system. Next reports false once the listing is exhausted.
type ThreadSnapshot interface {
	Next() (ThreadEntry, bool)
	Close() error
}

// ThreadHandle is a thread opened with suspend/resume access. Suspend and
// Resume both return the suspend count the thread had before the call.
type ThreadHandle interface {
	Handle
	Suspend() (uint32, error)
	Resume() (uint32, error)
}

// System is the kernel surface the controller needs. The Windows build backs
// it with ntdll and kernel32; tests substitute a fake.
type System interface {
	// Resolve looks up a freeze/thaw routine by name in ntdll.
	Resolve(name string) (EntryPoint, error)
	// OpenProcess opens pid with full access.
	OpenProcess(pid uint32) (Handle, error)
	// SnapshotThreads captures every thread currently known to the OS.
	SnapshotThreads() (ThreadSnapshot, error)
	// OpenThread opens tid with suspend/resume access.
	OpenThread(tid uint32) (ThreadHandle, error)
}

// DefaultSystem returns the System for the running platform.
func DefaultSystem() System {
	return newSystem()
}
