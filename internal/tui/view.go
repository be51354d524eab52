package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/w31r4/susres/internal/process"
)

var (
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
	suspendedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	runningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	detailTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	detailPaneStyle  = paneStyle.BorderForeground(lipgloss.Color("63"))

	errorTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errorPaneStyle    = paneStyle.BorderForeground(lipgloss.Color("9")).Width(70)
	errorMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	confirmTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
	confirmPaneStyle  = paneStyle.BorderForeground(lipgloss.Color("178")).Width(70)
)

// Number of list rows shown at once.
const viewHeight = 10

func (m model) View() string {
	if m.err != nil {
		return m.errorView()
	}
	if m.confirm != nil {
		return m.confirmView()
	}
	if m.showDetails {
		return m.detailsView()
	}
	if len(m.processes) == 0 {
		return docStyle.Render("Loading processes...")
	}

	var b strings.Builder

	count := fmt.Sprintf("(%d/%d)", len(m.filtered), len(m.processes))
	fmt.Fprintf(&b, "Search processes %s: %s\n\n", faintStyle.Render(count), m.textInput.View())

	if len(m.filtered) == 0 {
		fmt.Fprintln(&b, "  No results...")
		fmt.Fprint(&b, "\n"+m.helpLine())
		return docStyle.Render(b.String())
	}

	start := m.cursor - viewHeight/2
	if start < 0 {
		start = 0
	}
	end := start + viewHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
		start = end - viewHeight
		if start < 0 {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		p := m.filtered[i]
		line := fmt.Sprintf("[%s] %-24s %-20s %-8s %d", p.State, p.Executable, p.User, p.StartTime, p.Pid)
		switch p.State {
		case process.Suspended:
			line = suspendedStyle.Render(line)
		case process.Running:
			line = runningStyle.Render(line)
		}
		if i == m.cursor {
			fmt.Fprintln(&b, selectedStyle.Render("❯ "+line))
		} else {
			fmt.Fprintln(&b, "  "+faintStyle.Render(line))
		}
	}

	fmt.Fprint(&b, "\n"+m.helpLine())
	return docStyle.Render(b.String())
}

func (m model) helpLine() string {
	if m.textInput.Focused() {
		return faintStyle.Render(" enter/esc to exit search")
	}
	return faintStyle.Render(" /: search • p: suspend • r: resume • s: status • i: info • ctrl+r: refresh • q: quit")
}

func (m model) errorView() string {
	var b strings.Builder
	fmt.Fprintln(&b, errorTitleStyle.Render("Error"))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, errorMessageStyle.Render(m.err.Error()))
	fmt.Fprint(&b, faintStyle.Render("\nesc/enter: dismiss • q: quit"))
	return docStyle.Render(errorPaneStyle.Render(b.String()))
}

func (m model) confirmView() string {
	var b strings.Builder
	fmt.Fprintln(&b, confirmTitleStyle.Render("Confirm"))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s (pid %d)?\n", strings.ToUpper(m.confirm.op[:1])+m.confirm.op[1:], m.confirm.name, m.confirm.pid)
	fmt.Fprint(&b, faintStyle.Render("\ny/enter: confirm • n/esc: cancel"))
	return docStyle.Render(confirmPaneStyle.Render(b.String()))
}

func (m model) detailsView() string {
	var b strings.Builder
	fmt.Fprintln(&b, detailTitleStyle.Render("Process Details"))
	if m.processDetails == "" {
		fmt.Fprintln(&b, "\n  Loading...")
	} else {
		fmt.Fprintln(&b)
		fmt.Fprint(&b, m.processDetails)
	}
	fmt.Fprint(&b, faintStyle.Render("\nq/esc/i: back to list"))
	return docStyle.Render(detailPaneStyle.Render(b.String()))
}
