// Package domain implements the fixture generation pipeline: scanning the
// resource tree, classifying samples, emitting the test file and committing
// the artifacts.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"fixturegen.dev/pkg/fixturegen/internal/adapter"
	"fixturegen.dev/pkg/fixturegen/internal/controller"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

// GenerateArgs contains the arguments shared by generate, check and list.
type GenerateArgs struct {
	Resources m.Path
	Output    m.Path
	// Package defaults to the output directory name with a _test suffix.
	Package string
	Suite   string
	Parser  string
	// Extension defaults to the parser's extension.
	Extension string
	Exclude   []string
	Parallel  uint
	Prune     bool
}

// Workflow defines the generation use cases.
type Workflow interface {
	// Generate recomputes every artifact and writes the ones that changed.
	Generate(ctx context.Context, args GenerateArgs) (m.Summary, error)
	// Check recomputes every artifact and reports drift without writing. It
	// returns ErrStale when anything is out of date.
	Check(ctx context.Context, args GenerateArgs) ([]m.StaleFile, error)
	// List classifies the samples and reports them without writing.
	List(ctx context.Context, args GenerateArgs) (m.Summary, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ArtifactStore
	controller.UI
	Scanner
	Classifier
	Emitter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	artifactStore adapter.ArtifactStore,
	ui controller.UI,
	scanner Scanner,
	classifier Classifier,
	emitter Emitter,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ArtifactStore:   artifactStore,
		UI:              ui,
		Scanner:         scanner,
		Classifier:      classifier,
		Emitter:         emitter,
	}
}

// plan is the fully computed result of one run, held in memory until commit.
type plan struct {
	summary   m.Summary
	artifacts []m.Artifact
	prune     []m.Path
}

type resolvedArgs struct {
	GenerateArgs
	parser syntax.Parser
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.Summary, error) {
	resolved, err := w.resolve(args)
	if err != nil {
		return m.Summary{}, err
	}

	for _, dir := range []m.Path{resolved.Resources, m.Path(filepath.Dir(string(resolved.Output)))} {
		if err := w.MkdirAll(ctx, dir); err != nil {
			slog.Error("Failed to create directory", "path", dir, "error", err)
			return m.Summary{}, fault(dir, fmt.Errorf("create directory: %w", err))
		}
	}

	p, err := w.build(ctx, resolved, controller.ModeGenerate, true)
	if err != nil {
		return m.Summary{}, err
	}

	commit, err := w.Commit(ctx, p.artifacts, p.prune)
	if err != nil {
		return m.Summary{}, fmt.Errorf("commit artifacts: %w", err)
	}

	p.summary.Commit = commit

	if err := w.DisplaySummary(ctx, p.summary); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return p.summary, fmt.Errorf("display: %w", err)
	}

	return p.summary, nil
}

func (w *workflow) Check(ctx context.Context, args GenerateArgs) ([]m.StaleFile, error) {
	resolved, err := w.resolve(args)
	if err != nil {
		return nil, err
	}

	p, err := w.build(ctx, resolved, controller.ModeCheck, true)
	if err != nil {
		return nil, err
	}

	stale, err := w.Diff(ctx, p.artifacts, p.prune)
	if err != nil {
		return nil, fmt.Errorf("compare artifacts: %w", err)
	}

	if err := w.DisplayStale(ctx, stale); err != nil {
		slog.Error("Failed to display stale files", "error", err)
		return stale, fmt.Errorf("display: %w", err)
	}

	if len(stale) > 0 {
		return stale, ErrStale
	}

	return nil, nil
}

func (w *workflow) List(ctx context.Context, args GenerateArgs) (m.Summary, error) {
	resolved, err := w.resolve(args)
	if err != nil {
		return m.Summary{}, err
	}

	p, err := w.build(ctx, resolved, controller.ModeList, false)
	if err != nil {
		return m.Summary{}, err
	}

	if err := w.DisplaySamples(ctx, p.summary); err != nil {
		slog.Error("Failed to display samples", "error", err)
		return p.summary, fmt.Errorf("display: %w", err)
	}

	return p.summary, nil
}

// resolve validates args and fills in defaults. Paths become absolute so the
// output file can be recognized while walking the resource tree.
func (w *workflow) resolve(args GenerateArgs) (resolvedArgs, error) {
	if args.Resources == "" {
		return resolvedArgs{}, errors.New("resource directory is required")
	}

	if args.Output == "" {
		return resolvedArgs{}, errors.New("output file is required")
	}

	parser, err := syntax.Lookup(args.Parser)
	if err != nil {
		return resolvedArgs{}, err
	}

	resources, err := filepath.Abs(string(args.Resources))
	if err != nil {
		return resolvedArgs{}, fmt.Errorf("resolve %s: %w", args.Resources, err)
	}

	output, err := filepath.Abs(string(args.Output))
	if err != nil {
		return resolvedArgs{}, fmt.Errorf("resolve %s: %w", args.Output, err)
	}

	args.Resources = m.Path(resources)
	args.Output = m.Path(output)
	args.Parser = parser.Name()

	if args.Extension == "" {
		args.Extension = parser.Extension()
	}

	if !strings.HasPrefix(args.Extension, ".") {
		args.Extension = "." + args.Extension
	}

	// Samples and snapshot sidecars must never share a name space, or pruning
	// would delete samples.
	if strings.EqualFold(args.Extension, snapshot.FileExt) {
		return resolvedArgs{}, fmt.Errorf("sample extension %q is reserved for snapshots", args.Extension)
	}

	if args.Package == "" {
		args.Package = SanitizeIdent(filepath.Base(filepath.Dir(output))) + "_test"
	}

	return resolvedArgs{GenerateArgs: args, parser: parser}, nil
}

// build scans, classifies and emits everything in memory. Nothing is written, so a
// fault at any stage leaves the previous artifacts untouched.
func (w *workflow) build(ctx context.Context, args resolvedArgs, mode controller.StartMode, render bool) (plan, error) {
	tree, err := w.Scan(ctx, ScanArgs{
		Root:      args.Resources,
		Extension: args.Extension,
		Exclude:   args.Exclude,
		Skip:      []m.Path{args.Output},
	})
	if err != nil {
		return plan{}, fmt.Errorf("scan %s: %w", args.Resources, err)
	}

	samples := tree.Samples()

	if err := w.Start(ctx, controller.WithMode(mode), controller.WithTotal(len(samples))); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return plan{}, err
	}
	defer w.Close(ctx)

	outcomes, err := w.classifyAll(ctx, args, samples)
	if err != nil {
		return plan{}, err
	}

	p := plan{summary: summarize(tree, samples, outcomes, args.Output)}

	if !render {
		return p, nil
	}

	for i, sample := range samples {
		if outcomes[i].Kind != m.Parsed {
			continue
		}

		content, err := snapshot.Marshal(outcomes[i].Tree)
		if err != nil {
			slog.Error("Failed to serialize snapshot", "path", sample.FullPath, "error", err)
			return plan{}, fault(sample.FullPath, fmt.Errorf("serialize snapshot: %w", err))
		}

		p.artifacts = append(p.artifacts, m.Artifact{
			Path:    w.JoinPath(ctx, string(args.Resources), filepath.FromSlash(sample.SnapshotRelPath())),
			Content: content,
		})
	}

	source, err := w.renderSuite(ctx, args, tree, outcomes)
	if err != nil {
		return plan{}, err
	}

	// The test file goes last so it never references snapshots that are not on
	// disk yet.
	p.artifacts = append(p.artifacts, m.Artifact{Path: args.Output, Content: source})

	if args.Prune {
		p.prune = orphanSnapshots(tree, p.artifacts)
	}

	return p, nil
}

// classifyAll classifies samples concurrently. Results land at the sample's
// traversal index so emission order never depends on completion order.
func (w *workflow) classifyAll(ctx context.Context, args resolvedArgs, samples []m.Sample) ([]m.Outcome, error) {
	outcomes := make([]m.Outcome, len(samples))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(int(args.Parallel))
	}

	for i, sample := range samples {
		group.Go(func() error {
			outcome, err := w.Classify(groupCtx, args.parser, sample)
			if err != nil {
				return err
			}

			outcomes[i] = outcome
			w.SampleDone(groupCtx, m.SampleResult{Sample: sample, Outcome: outcome})

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("classify samples: %w", err)
	}

	return outcomes, nil
}

func (w *workflow) renderSuite(ctx context.Context, args resolvedArgs, tree *m.DirTree, outcomes []m.Outcome) ([]byte, error) {
	scope, err := w.BuildScope(args.Suite, tree, outcomes)
	if err != nil {
		return nil, fmt.Errorf("build scopes: %w", err)
	}

	rel, err := w.RelPath(ctx, m.Path(filepath.Dir(string(args.Output))), args.Resources)
	if err != nil {
		return nil, fault(args.Output, fmt.Errorf("locate resources from output: %w", err))
	}

	source, err := w.Render(RenderArgs{
		Package:      args.Package,
		Suite:        args.Suite,
		Parser:       args.Parser,
		ResourceRoot: filepath.ToSlash(string(rel)),
	}, scope)
	if err != nil {
		return nil, fault(args.Output, err)
	}

	return source, nil
}

func summarize(tree *m.DirTree, samples []m.Sample, outcomes []m.Outcome, output m.Path) m.Summary {
	summary := m.Summary{
		Output:  output,
		Samples: len(samples),
		Results: make([]m.SampleResult, len(samples)),
	}

	tree.Visit(nil, func(*m.DirTree) { summary.Directories++ })

	for i, sample := range samples {
		summary.Results[i] = m.SampleResult{Sample: sample, Outcome: outcomes[i]}

		if outcomes[i].Kind == m.Parsed {
			summary.Parsed++
		} else {
			summary.Failed++
		}
	}

	return summary
}

// orphanSnapshots lists existing snapshot sidecars that this run does not produce.
func orphanSnapshots(tree *m.DirTree, artifacts []m.Artifact) []m.Path {
	produced := make(map[string]bool, len(artifacts))
	for _, artifact := range artifacts {
		produced[filepath.Clean(string(artifact.Path))] = true
	}

	var orphans []m.Path

	tree.Visit(nil, func(dir *m.DirTree) {
		for _, existing := range dir.Snapshots {
			if !produced[filepath.Clean(string(existing))] {
				orphans = append(orphans, existing)
			}
		}
	})

	return orphans
}
