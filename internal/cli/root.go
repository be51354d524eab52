// Package cli implements the susres command line: three verbs acting on one
// pid, usage on anything else, exit status 0 or 1.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/w31r4/susres/internal/process"
)

const usageText = `Usage: susres suspend [pid]
       susres resume  [pid]
       susres status  [pid]
`

// Command is the verb selected from the first argument.
type Command int

const (
	Suspend Command = iota
	Resume
	Status
)

var commands = []Command{Suspend, Resume, Status}

func (c Command) String() string {
	switch c {
	case Suspend:
		return "suspend"
	case Resume:
		return "resume"
	case Status:
		return "status"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseCommand matches verb case-sensitively against the known verbs.
func ParseCommand(verb string) (Command, bool) {
	for _, c := range commands {
		if c.String() == verb {
			return c, true
		}
	}
	return 0, false
}

// Controller is what the verbs drive. *process.Controller satisfies it.
type Controller interface {
	process.Freezer
	process.Prober
}

var (
	// errUsage makes Run print the usage block.
	errUsage = errors.New("usage")
	// errFailed means the handler already printed its diagnostic.
	errFailed = errors.New("failed")
)

// Execute runs the command line against the platform's kernel and returns the
// process exit status.
func Execute(args []string) int {
	cfg := ConfigFromEnv()

	var opts []process.Option
	if cfg.Debug {
		opts = append(opts, process.WithLogger(log.New(os.Stderr, "susres: ", log.Lmicroseconds)))
	}
	ctl := process.NewController(process.DefaultSystem(), opts...)
	return Run(args, ctl, os.Stdout, cfg)
}

// Run dispatches args (without the program name) to ctl and writes every
// line of output to out.
func Run(args []string, ctl Controller, out io.Writer, cfg Config) int {
	// Checked here as well as in cobra: cobra would route "--help suspend" and
	// similar to a verb, and its own usage path is still needed for strict pid.
	if len(args) != 2 {
		printUsage(out)
		return 1
	}
	if _, ok := ParseCommand(args[0]); !ok {
		printUsage(out)
		return 1
	}

	root := NewRootCmd(ctl, out, cfg)
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		printUsage(out)
		return 1
	}
}

// NewRootCmd builds the cobra tree. Flag parsing is off everywhere so every
// token is positional, and help goes to the usage block.
func NewRootCmd(ctl Controller, out io.Writer, cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:                "susres",
		Short:              "Suspend, resume or inspect a Windows process",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errUsage
		},
	}
	root.SetOut(out)
	root.SetErr(out)
	root.SetHelpCommand(&cobra.Command{
		Use:                "help",
		Hidden:             true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errUsage
		},
	})
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printUsage(out)
	})

	for _, c := range commands {
		root.AddCommand(newVerbCmd(c, ctl, out, cfg))
	}
	return root
}

func newVerbCmd(c Command, ctl Controller, out io.Writer, cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:                c.String() + " <pid>",
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0], cfg.StrictPID)
			if err != nil {
				return errUsage
			}
			return dispatch(c, pid, ctl, out)
		},
	}
}

func dispatch(c Command, pid uint32, ctl Controller, out io.Writer) error {
	switch c {
	case Suspend:
		return report(out, ctl.Freeze(pid))
	case Resume:
		return report(out, ctl.Thaw(pid))
	case Status:
		st, err := ctl.Status(pid)
		if err != nil {
			return report(out, err)
		}
		fmt.Fprintln(out, st)
		return nil
	default:
		return errUsage
	}
}

// report prints err as a diagnostic line.
func report(out io.Writer, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(out, err)
	return errFailed
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, usageText)
}
