package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

const (
	progressPadding  = 2
	progressMaxWidth = 60
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	parsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	staleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	addedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start shows a progress bar for the samples of the run.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options...)
	if config.total == 0 {
		return nil
	}

	width, _ := terminalSize(t.output)
	model := newProgressModel(config.mode, config.total, width)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil), tea.WithoutSignalHandler())
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Progress display failed", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress bar if it is still running.
func (t *TUI) Close(_ context.Context) {
	t.stop()
}

// SampleDone advances the progress bar.
func (t *TUI) SampleDone(_ context.Context, result m.SampleResult) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(sampleDoneMsg{path: result.Sample.RelPath, kind: result.Outcome.Kind})
}

// DisplaySamples shows the classified samples, paging when they do not fit the
// terminal.
func (t *TUI) DisplaySamples(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.stop()

	model := newSampleListModel(summary)
	model.width, model.height = terminalSize(t.output)

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySummary prints a styled summary of a generate run.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.stop()

	var b strings.Builder

	b.WriteString(titleStyle.Render(summaryLine(summary)))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(commitLine(summary.Commit)))
	b.WriteString("\n")

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayStale prints stale artifacts with colored diffs.
func (t *TUI) DisplayStale(ctx context.Context, stale []m.StaleFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.stop()

	var b strings.Builder

	if len(stale) == 0 {
		b.WriteString(parsedStyle.Render("Generated files are up to date"))
		b.WriteString("\n")

		_, err := fmt.Fprint(t.output, b.String())

		return err
	}

	for _, file := range stale {
		fmt.Fprintf(&b, "%s %s\n", staleStyle.Render(staleLabel(file)+":"), file.Path)

		for _, line := range strings.Split(strings.TrimSuffix(file.Diff, "\n"), "\n") {
			if line == "" {
				continue
			}

			b.WriteString(colorDiffLine(line))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "%s\n", staleStyle.Render(fmt.Sprintf("%d generated file(s) out of date", len(stale))))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func (t *TUI) stop() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})
	<-done
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
		return faintStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return staleStyle.Render(line)
	default:
		return line
	}
}

func terminalSize(output io.Writer) (int, int) {
	f, ok := output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

type sampleDoneMsg struct {
	path string
	kind m.OutcomeKind
}

type finishMsg struct{}

// progressModel renders classification progress.
type progressModel struct {
	mode    StartMode
	bar     progress.Model
	total   int
	done    int
	parsed  int
	failed  int
	current string
}

func newProgressModel(mode StartMode, total int, width int) progressModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressWidth(width)

	return progressModel{
		mode:  mode,
		bar:   bar,
		total: total,
	}
}

func progressWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		return progressMaxWidth
	}

	width := terminalWidth - progressPadding*2 - 12
	if width > progressMaxWidth {
		return progressMaxWidth
	}

	if width < 10 {
		return 10
	}

	return width
}

func (pm progressModel) Init() tea.Cmd {
	return nil
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.bar.Width = progressWidth(msg.Width)

		return pm, nil

	case sampleDoneMsg:
		pm.done++
		pm.current = msg.path

		if msg.kind == m.Parsed {
			pm.parsed++
		} else {
			pm.failed++
		}

		return pm, nil

	case finishMsg:
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		return 1
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) View() string {
	pad := strings.Repeat(" ", progressPadding)

	var b strings.Builder

	b.WriteString(pad + titleStyle.Render("fixturegen "+pm.mode.String()) + "\n\n")
	fmt.Fprintf(&b, "%s%s %d/%d\n", pad, pm.bar.ViewAs(pm.percent()), pm.done, pm.total)
	fmt.Fprintf(&b, "%s%s  %s\n", pad,
		parsedStyle.Render(fmt.Sprintf("%d parsed", pm.parsed)),
		failedStyle.Render(fmt.Sprintf("%d failed", pm.failed)))

	if pm.current != "" {
		b.WriteString(pad + faintStyle.Render(pm.current) + "\n")
	}

	return b.String()
}

// sampleListModel pages through the samples of a list run.
type sampleListModel struct {
	summary m.Summary
	height  int
	width   int
	offset  int
}

func newSampleListModel(summary m.Summary) sampleListModel {
	return sampleListModel{summary: summary}
}

func (sm sampleListModel) Init() tea.Cmd {
	return nil
}

func (sm sampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (sm sampleListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return sm, tea.Quit
	case "down", "j":
		sm.offset++
	case "up", "k":
		sm.offset--
	case "g", "home":
		sm.offset = 0
	case "G", "end":
		sm.offset = sm.maxOffset()
	case "d", "pgdown":
		sm.offset += sm.itemsPerPage()
	case "u", "pgup":
		sm.offset -= sm.itemsPerPage()
	}

	sm.offset = max(0, min(sm.offset, sm.maxOffset()))

	return sm, nil
}

// itemsPerPage is the number of rows left once header and footer are drawn.
func (sm sampleListModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	const reserved = 8

	return max(1, sm.height-reserved)
}

func (sm sampleListModel) maxOffset() int {
	return max(0, len(sm.summary.Results)-sm.itemsPerPage())
}

func (sm sampleListModel) needsPagination() bool {
	return sm.height > 0 && len(sm.summary.Results) > sm.itemsPerPage()
}

func (sm sampleListModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fixturegen samples"))
	b.WriteString("\n\n")

	results := sm.summary.Results
	if len(results) == 0 {
		b.WriteString("  No samples found\n")
		return b.String()
	}

	start, end := 0, len(results)
	if sm.needsPagination() {
		start = sm.offset
		end = min(start+sm.itemsPerPage(), len(results))
	}

	for _, result := range results[start:end] {
		label := parsedStyle.Render(m.Parsed.String())
		if result.Outcome.Kind == m.Failed {
			label = failedStyle.Render(m.Failed.String())
		}

		fmt.Fprintf(&b, "  %s  %s\n", label, result.Sample.RelPath)
	}

	fmt.Fprintf(&b, "\n  Total: %d sample(s), %d parsed, %d failed\n",
		sm.summary.Samples, sm.summary.Parsed, sm.summary.Failed)

	if sm.needsPagination() {
		perPage := sm.itemsPerPage()
		fmt.Fprintf(&b, "\n  Page %d/%d | Showing %d-%d of %d\n",
			start/perPage+1, (len(results)+perPage-1)/perPage, start+1, end, len(results))
		b.WriteString(faintStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
