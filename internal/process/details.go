package process

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shirou/gopsutil/v3/process"
)

const (
	defaultDetailsTimeout = 900 * time.Millisecond
	maxCmdlineRunes       = 120
)

// GetProcessDetails renders a tab-separated summary of pid for the picker's
// details pane. Fields that cannot be read are shown as unavailable; only a
// missing process is an error.
func GetProcessDetails(pid int32) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DetailsTimeout())
	defer cancel()

	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", err
	}

	lines := []string{
		fmt.Sprintf("PID:\t%d", pid),
		nameLine(ctx, p),
		exeLine(ctx, p),
		cmdlineLine(ctx, p),
		parentLine(ctx, p),
		threadsLine(ctx, p),
		memoryLine(ctx, p),
	}

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String(), nil
}

func nameLine(ctx context.Context, p *process.Process) string {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return "Name:\t" + unavailable(err)
	}
	return "Name:\t" + name
}

func exeLine(ctx context.Context, p *process.Process) string {
	exe, err := p.ExeWithContext(ctx)
	if err != nil || exe == "" {
		return "Exe:\t" + unavailable(err)
	}
	return "Exe:\t" + exe
}

func cmdlineLine(ctx context.Context, p *process.Process) string {
	cmdline, err := p.CmdlineWithContext(ctx)
	if err != nil || strings.TrimSpace(cmdline) == "" {
		return "Cmdline:\t" + unavailable(err)
	}
	return "Cmdline:\t" + truncateRunes(cmdline, maxCmdlineRunes)
}

func parentLine(ctx context.Context, p *process.Process) string {
	ppid, err := p.PpidWithContext(ctx)
	if err != nil {
		return "Parent:\t" + unavailable(err)
	}
	return fmt.Sprintf("Parent:\t%d", ppid)
}

func threadsLine(ctx context.Context, p *process.Process) string {
	threads, err := p.NumThreadsWithContext(ctx)
	if err != nil || threads < 0 {
		return "Threads:\t" + unavailable(err)
	}
	return fmt.Sprintf("Threads:\t%d", threads)
}

func memoryLine(ctx context.Context, p *process.Process) string {
	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil || mem == nil {
		return "Memory:\t" + unavailable(err)
	}

	var parts []string
	if mem.RSS > 0 {
		parts = append(parts, "RSS "+formatBytesIEC(mem.RSS))
	}
	if mem.VMS > 0 {
		parts = append(parts, "VMS "+formatBytesIEC(mem.VMS))
	}
	if len(parts) == 0 {
		return "Memory:\t(n/a)"
	}
	return "Memory:\t" + strings.Join(parts, " • ")
}

func unavailable(err error) string {
	if err == nil {
		return "(unavailable)"
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "(unavailable)"
	}
	return "(unavailable: " + truncateRunes(msg, 90) + ")"
}

func formatBytesIEC(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}

	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	value := float64(b) / float64(div)
	suffix := "KMGTPE"[exp]
	return fmt.Sprintf("%.1f %ciB", value, suffix)
}

func truncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

// DetailsTimeout bounds gopsutil collection for the details pane. It reads
// SUSRES_TOP_DETAILS_TIMEOUT_MS and falls back to 900ms on anything that is
// not a positive integer.
func DetailsTimeout() time.Duration {
	v := os.Getenv("SUSRES_TOP_DETAILS_TIMEOUT_MS")
	if v == "" {
		return defaultDetailsTimeout
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 || v[0] == '+' {
		return defaultDetailsTimeout
	}
	return time.Duration(ms) * time.Millisecond
}
