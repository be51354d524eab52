package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/w31r4/susres/internal/process"
)

// A message containing a fresh process list.
type processesMsg []*process.Item

// A message containing the list saved by the previous run.
type cachedProcessesMsg []*process.Item

// A message containing the detailed info of a process.
type processDetailsMsg string

// A message carrying the probed state of one process.
type stateMsg struct {
	pid   int32
	state process.State
}

// A message containing an error.
type errMsg struct{ err error }

// controller is the engine the picker drives.
type controller interface {
	process.Freezer
	process.Prober
}

type confirmPrompt struct {
	pid    int32
	name   string
	op     string // suspend | resume
	freeze bool
}

// model holds the picker's state.
type model struct {
	ctl            controller
	processes      []*process.Item
	filtered       []*process.Item
	cursor         int
	textInput      textinput.Model
	err            error
	showDetails    bool
	processDetails string
	confirm        *confirmPrompt
}

// InitialModel returns the starting model with filter pre-filled.
func InitialModel(filter string, ctl controller) model {
	ti := textinput.New()
	ti.Placeholder = "Search processes"
	ti.CharLimit = 156
	ti.Width = 20
	ti.SetValue(filter)

	return model{
		ctl:       ctl,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadCachedProcesses, getProcesses)
}

func loadCachedProcesses() tea.Msg {
	items, err := process.Load()
	if err != nil {
		return nil
	}
	return cachedProcessesMsg(items)
}

func getProcesses() tea.Msg {
	procs, err := process.GetProcesses()
	if err != nil {
		return errMsg{err}
	}
	return processesMsg(procs)
}

func getProcessDetails(pid int32) tea.Cmd {
	return func() tea.Msg {
		details, err := process.GetProcessDetails(pid)
		if err != nil {
			return errMsg{err}
		}
		return processDetailsMsg(details)
	}
}

// probeState runs the thread-walk status probe for pid.
func probeState(ctl controller, pid int32) tea.Cmd {
	return func() tea.Msg {
		st, err := ctl.Status(uint32(pid))
		if err != nil {
			return errMsg{err}
		}
		return stateMsg{pid: pid, state: st}
	}
}

// applyFreeze freezes or thaws pid and then probes the result, so the list
// only changes after the kernel call succeeded.
func applyFreeze(ctl controller, pid int32, freeze bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if freeze {
			err = ctl.Freeze(uint32(pid))
		} else {
			err = ctl.Thaw(uint32(pid))
		}
		if err != nil {
			return errMsg{err}
		}
		return probeState(ctl, pid)()
	}
}

// fuzzyProcessSource wraps the process list to implement fuzzy.Source.
type fuzzyProcessSource struct {
	processes []*process.Item
}

// String combines executable and PID so both are searchable.
func (s fuzzyProcessSource) String(i int) string {
	p := s.processes[i]
	return fmt.Sprintf("%s %d", p.Executable, p.Pid)
}

func (s fuzzyProcessSource) Len() int {
	return len(s.processes)
}

func (m *model) filterProcesses(filter string) []*process.Item {
	if filter == "" {
		return m.processes
	}

	matches := fuzzy.FindFrom(filter, fuzzyProcessSource{processes: m.processes})
	filtered := make([]*process.Item, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, m.processes[match.Index])
	}
	return filtered
}

func (m *model) findProcess(pid int32) *process.Item {
	for _, it := range m.processes {
		if it.Pid == pid {
			return it
		}
	}
	return nil
}

func (m *model) selected() *process.Item {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return m.filtered[m.cursor]
}

func (m *model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
}

// Start runs the picker until the user quits.
func Start(filter string) {
	ctl := process.NewController(process.DefaultSystem())
	p := tea.NewProgram(InitialModel(filter, ctl))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
