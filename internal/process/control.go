package process

import (
	"io"
	"log"
)

// Names of the ntdll routines that freeze and thaw every thread of a process
// in a single kernel call.
const (
	suspendEntry = "NtSuspendProcess"
	resumeEntry  = "NtResumeProcess"
)

// Freezer is the process-freeze capability. Freeze stops every thread of a
// process atomically and Thaw undoes one Freeze. Calls nest: two Freezes
// need two Thaws before the process runs again.
type Freezer interface {
	Freeze(pid uint32) error
	Thaw(pid uint32) error
}

// Prober reports whether every thread of a process is suspended.
type Prober interface {
	Status(pid uint32) (State, error)
}

// Controller freezes, thaws and probes processes through a System.
type Controller struct {
	sys System
	log *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger traces every OS step to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController returns a Controller backed by sys.
func NewController(sys System, opts ...Option) *Controller {
	c := &Controller{
		sys: sys,
		log: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Freeze suspends every thread of pid.
func (c *Controller) Freeze(pid uint32) error {
	return c.apply(pid, suspendEntry)
}

// Thaw resumes every thread of pid once.
func (c *Controller) Thaw(pid uint32) error {
	return c.apply(pid, resumeEntry)
}

func (c *Controller) apply(pid uint32, name string) error {
	entry, err := c.sys.Resolve(name)
	if err != nil {
		return &ResolveError{Name: name, Err: err}
	}
	c.log.Printf("resolved %s", name)

	h, err := c.sys.OpenProcess(pid)
	if err != nil {
		return &AccessError{Op: "OpenProcess", ID: pid, HasID: true, Err: err}
	}
	defer h.Close()

	status := entry(h)
	c.log.Printf("%s(%d) = %#x", name, pid, status)
	if status != 0 {
		return &OperationError{Name: name, PID: pid, Status: status}
	}
	return nil
}
