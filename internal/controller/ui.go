// Package controller provides output adapters for reporting generation runs.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeCheck
	ModeList
)

func (mode StartMode) String() string {
	switch mode {
	case ModeGenerate:
		return "generate"
	case ModeCheck:
		return "check"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithMode sets the mode the run is started in.
func WithMode(mode StartMode) StartOption {
	return func(c *StartConfig) {
		c.mode = mode
	}
}

// WithTotal sets the number of samples the run will classify.
func WithTotal(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var config StartConfig

	for _, option := range options {
		option(&config)
	}

	return config
}

// UI reports the progress and results of a run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	// SampleDone is called once per classified sample, possibly from several
	// goroutines.
	SampleDone(ctx context.Context, result m.SampleResult)
	DisplaySamples(ctx context.Context, summary m.Summary) error
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayStale(ctx context.Context, stale []m.StaleFile) error
}

// NewUI picks the interactive UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
