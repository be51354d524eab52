package process

// State is the aggregate execution state of a process.
type State int

const (
	Unknown State = iota
	Running
	Suspended
)

// String returns the one-letter code printed by the status command.
func (s State) String() string {
	switch s {
	case Running:
		return "R"
	case Suspended:
		return "T"
	default:
		return "?"
	}
}

// Status reports Suspended when every thread of pid has a non-zero suspend
// count and Running as soon as one thread does not.
//
// There is no process-level query, so each thread is suspended and resumed
// once and the count seen before the suspend is used. The net change to every
// thread is zero, but threads created, exited or resumed by someone else while
// the walk runs can produce a stale answer.
func (c *Controller) Status(pid uint32) (State, error) {
	snap, err := c.sys.SnapshotThreads()
	if err != nil {
		return Unknown, &AccessError{Op: "CreateToolhelp32Snapshot", Err: err}
	}
	defer snap.Close()

	found := false
	state := Suspended
	for {
		entry, ok := snap.Next()
		if !ok {
			break
		}
		if entry.OwnerPID != pid {
			continue
		}
		found = true

		prev, err := c.probeThread(entry.ThreadID)
		if err != nil {
			return Unknown, err
		}
		c.log.Printf("thread %d of pid %d: suspend count %d", entry.ThreadID, pid, prev)
		if prev == 0 {
			state = Running
			break
		}
	}

	if !found {
		return Unknown, &NoThreadsError{PID: pid}
	}
	return state, nil
}

// probeThread returns the suspend count tid had before a suspend/resume pair.
func (c *Controller) probeThread(tid uint32) (uint32, error) {
	th, err := c.sys.OpenThread(tid)
	if err != nil {
		return 0, &AccessError{Op: "OpenThread", ID: tid, HasID: true, Err: err}
	}
	defer th.Close()

	prev, err := th.Suspend()
	if err != nil {
		return 0, &ThreadError{Op: "SuspendThread", TID: tid, Err: err}
	}
	if _, err := th.Resume(); err != nil {
		return 0, &ThreadError{Op: "ResumeThread", TID: tid, Err: err}
	}
	return prev, nil
}
