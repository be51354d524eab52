package process

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const listTimeout = 5 * time.Second

// Item is one row of the picker's process list.
type Item struct {
	Pid        int32  `json:"pid"`
	Executable string `json:"executable"`
	User       string `json:"user"`
	StartTime  string `json:"start_time"`
	State      State  `json:"state"`
}

// NewItem returns an Item whose state has not been probed yet.
func NewItem(pid int32, executable, user string) *Item {
	return &Item{Pid: pid, Executable: executable, User: user}
}

// PID returns the identifier in the width the kernel APIs take.
func (it *Item) PID() uint32 {
	return uint32(it.Pid)
}

// GetProcesses returns every visible process sorted by executable name.
// Processes that exit while the list is built are skipped.
func GetProcesses() ([]*Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || strings.TrimSpace(name) == "" {
			continue
		}
		it := NewItem(p.Pid, name, "")
		if user, err := p.UsernameWithContext(ctx); err == nil {
			it.User = user
		}
		if ms, err := p.CreateTimeWithContext(ctx); err == nil && ms > 0 {
			it.StartTime = time.UnixMilli(ms).Format("15:04:05")
		}
		items = append(items, it)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Executable == items[j].Executable {
			return items[i].Pid < items[j].Pid
		}
		return items[i].Executable < items[j].Executable
	})
	return items, nil
}
