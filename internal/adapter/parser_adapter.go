package adapter

import (
	"context"
	"fmt"
	"log/slog"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

// ParserAdapter runs the parser collaborator on one sample. It exists so the domain
// layer never calls third-party parsers directly and tests can substitute failures.
type ParserAdapter interface {
	// Parse returns the parser's tree or error unchanged. A panic inside the parser
	// is reported as an ordinary (non invalid-input) error naming the sample.
	Parse(ctx context.Context, parser syntax.Parser, path m.Path, src []byte) (snapshot.Value, error)
}

// LocalParserAdapter calls the parser in-process.
type LocalParserAdapter struct{}

// NewLocalParserAdapter constructs a LocalParserAdapter.
func NewLocalParserAdapter() *LocalParserAdapter {
	return &LocalParserAdapter{}
}

// Parse invokes parser exactly once.
func (a *LocalParserAdapter) Parse(ctx context.Context, parser syntax.Parser, path m.Path, src []byte) (tree snapshot.Value, err error) {
	if err := ctx.Err(); err != nil {
		return snapshot.Null(), err
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Parser panicked", "parser", parser.Name(), "path", path, "panic", r)

			tree = snapshot.Null()
			err = fmt.Errorf("parser %s panicked on %s: %v", parser.Name(), path, r)
		}
	}()

	return parser.Parse(src)
}
