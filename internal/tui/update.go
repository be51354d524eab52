package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/w31r4/susres/internal/process"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case cachedProcessesMsg:
		// The live list may already have arrived.
		if len(m.processes) == 0 {
			m.processes = msg
			m.filtered = m.filterProcesses(m.textInput.Value())
			m.clampCursor()
		}
		return m, nil

	case processesMsg:
		carryStates(m.processes, msg)
		m.processes = msg
		m.filtered = m.filterProcesses(m.textInput.Value())
		m.clampCursor()
		items := snapshotItems(m.processes)
		return m, func() tea.Msg {
			_ = process.Save(items)
			return nil
		}

	case processDetailsMsg:
		m.processDetails = string(msg)
		return m, nil

	case stateMsg:
		if it := m.findProcess(msg.pid); it != nil {
			it.State = msg.state
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "enter":
				m.err = nil
			}
			return m, nil
		}

		if m.confirm != nil {
			switch msg.String() {
			case "y", "enter":
				op := *m.confirm
				m.confirm = nil
				return m, applyFreeze(m.ctl, op.pid, op.freeze)
			case "n", "esc":
				m.confirm = nil
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.showDetails {
			switch msg.String() {
			case "q", "esc", "i":
				m.showDetails = false
				m.processDetails = ""
			}
			return m, nil
		}

		if m.textInput.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.textInput.Blur()
			}
			m.textInput, cmd = m.textInput.Update(msg)
			m.filtered = m.filterProcesses(m.textInput.Value())
			m.clampCursor()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "ctrl+r":
			return m, getProcesses
		case "/":
			cmd = m.textInput.Focus()
			return m, cmd
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "p":
			if p := m.selected(); p != nil {
				m.confirm = &confirmPrompt{pid: p.Pid, name: p.Executable, op: "suspend", freeze: true}
			}
		case "r":
			if p := m.selected(); p != nil {
				m.confirm = &confirmPrompt{pid: p.Pid, name: p.Executable, op: "resume", freeze: false}
			}
		case "s":
			if p := m.selected(); p != nil {
				return m, probeState(m.ctl, p.Pid)
			}
		case "i":
			if p := m.selected(); p != nil {
				m.showDetails = true
				m.processDetails = ""
				return m, getProcessDetails(p.Pid)
			}
		}
	}

	return m, nil
}

// snapshotItems copies items so the save command never reads an Item that
// Update is still writing.
func snapshotItems(items []*process.Item) []*process.Item {
	snap := make([]*process.Item, len(items))
	for i, it := range items {
		c := *it
		snap[i] = &c
	}
	return snap
}

// carryStates copies probed states from old onto matching pids in fresh.
func carryStates(old, fresh []*process.Item) {
	if len(old) == 0 {
		return
	}
	known := make(map[int32]process.State, len(old))
	for _, it := range old {
		if it.State != process.Unknown {
			known[it.Pid] = it.State
		}
	}
	for _, it := range fresh {
		if st, ok := known[it.Pid]; ok {
			it.State = st
		}
	}
}
