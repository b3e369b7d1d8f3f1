package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fixturegen.dev/pkg/fixturegen/internal/adapter"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

// Classifier turns one sample into a parse outcome.
type Classifier interface {
	// Classify reads the sample and parses it once. Recognized invalid input
	// becomes a Failed outcome; every other error is a *FaultError.
	Classify(ctx context.Context, parser syntax.Parser, sample m.Sample) (m.Outcome, error)
}

type classifier struct {
	adapter.SourceFSAdapter
	adapter.ParserAdapter
}

// NewClassifier creates a Classifier.
func NewClassifier(fsAdapter adapter.SourceFSAdapter, parserAdapter adapter.ParserAdapter) Classifier {
	return &classifier{
		SourceFSAdapter: fsAdapter,
		ParserAdapter:   parserAdapter,
	}
}

func (c *classifier) Classify(ctx context.Context, parser syntax.Parser, sample m.Sample) (m.Outcome, error) {
	src, err := c.ReadFile(ctx, sample.FullPath)
	if err != nil {
		slog.Error("Failed to read sample", "path", sample.FullPath, "error", err)
		return m.Outcome{}, fault(sample.FullPath, fmt.Errorf("read sample: %w", err))
	}

	tree, err := c.Parse(ctx, parser, sample.FullPath, src)

	switch {
	case err == nil:
		slog.Debug("Sample parsed", "path", sample.RelPath)
		return m.ParsedOutcome(tree), nil

	case errors.Is(err, syntax.ErrInvalidInput):
		slog.Debug("Sample rejected by parser", "path", sample.RelPath, "diagnostic", err)
		return m.FailedOutcome(err), nil

	default:
		slog.Error("Parser fault", "path", sample.FullPath, "error", err)
		return m.Outcome{}, fault(sample.FullPath, err)
	}
}
