package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// SampleDone is a no-op; SimpleUI only prints final reports.
func (s *SimpleUI) SampleDone(_ context.Context, _ m.SampleResult) {}

// DisplaySamples prints the classification table of a list run.
func (s *SimpleUI) DisplaySamples(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSamplesTable(summary))

	return nil
}

// DisplaySummary prints what a generate run produced.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", summaryLine(summary))
	s.printf("%s\n", commitLine(summary.Commit))

	return nil
}

// DisplayStale prints every stale artifact with its diff.
func (s *SimpleUI) DisplayStale(ctx context.Context, stale []m.StaleFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(stale) == 0 {
		s.printf("Generated files are up to date\n")
		return nil
	}

	for _, file := range stale {
		s.printf("%s: %s\n", staleLabel(file), file.Path)

		if file.Diff != "" {
			s.printf("%s", file.Diff)

			if !strings.HasSuffix(file.Diff, "\n") {
				s.printf("\n")
			}
		}
	}

	s.printf("%d generated file(s) out of date\n", len(stale))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSamplesTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Sample", "Outcome", "Snapshot"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, result := range summary.Results {
		snapshotPath := "-"
		if result.Outcome.Kind == m.Parsed {
			snapshotPath = result.Sample.SnapshotRelPath()
		}

		table.Append([]string{result.Sample.RelPath, result.Outcome.Kind.String(), snapshotPath})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Samples %d", summary.Samples),
		fmt.Sprintf("%d parsed", summary.Parsed),
		fmt.Sprintf("%d failed", summary.Failed),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryLine(summary m.Summary) string {
	return fmt.Sprintf("Generated %s: %d test(s) in %d scope(s) (%d parsed, %d failed)",
		summary.Output, summary.Samples, summary.Directories, summary.Parsed, summary.Failed)
}

func commitLine(commit m.CommitResult) string {
	return fmt.Sprintf("Files written: %d, unchanged: %d, pruned: %d",
		len(commit.Written), len(commit.Unchanged), len(commit.Pruned))
}

func staleLabel(file m.StaleFile) string {
	switch {
	case file.Missing:
		return "missing"
	case file.Orphan:
		return "orphan"
	default:
		return "stale"
	}
}
