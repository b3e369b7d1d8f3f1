// Package syntax defines the parser collaborator used to classify samples and the
// parsers that ship with fixturegen.
package syntax

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

// ErrInvalidInput marks a parse failure caused by the sample itself. Any other error
// returned by a Parser is treated as a fault of the parser or the generator.
var ErrInvalidInput = errors.New("invalid input")

// Parser turns sample text into a canonical tree.
type Parser interface {
	// Name is the registry key, e.g. "go".
	Name() string
	// Extension is the default sample file extension, including the dot.
	Extension() string
	// Parse returns the tree for src, or an error wrapping ErrInvalidInput when src
	// is not valid input.
	Parse(src []byte) (snapshot.Value, error)
}

// Diagnostic is one problem reported for invalid input. Line and Column are 1-based;
// zero means unknown.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Message
	}

	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// DiagnosticError is the structured failure for invalid input.
type DiagnosticError struct {
	Diagnostics []Diagnostic
}

func (e *DiagnosticError) Error() string {
	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.String())
	}

	if len(parts) == 0 {
		return ErrInvalidInput.Error()
	}

	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidInput) hold for every DiagnosticError.
func (e *DiagnosticError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds a DiagnosticError with a single diagnostic.
func Invalid(line, column int, format string, args ...any) error {
	return &DiagnosticError{Diagnostics: []Diagnostic{{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}}}
}

// IsInvalidInput reports whether err is a recognized invalid-input failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Parser{}
)

// Register adds p to the registry, replacing any parser with the same name.
func Register(p Parser) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[p.Name()] = p
}

// Names lists registered parser names in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the parser registered under name.
func Lookup(name string) (Parser, error) {
	registryMu.RLock()
	p, ok := registry[name]
	registryMu.RUnlock()

	if ok {
		return p, nil
	}

	if suggestion := closestName(name); suggestion != "" {
		return nil, fmt.Errorf("unknown parser %q, did you mean %q?", name, suggestion)
	}

	return nil, fmt.Errorf("unknown parser %q (available: %s)", name, strings.Join(Names(), ", "))
}

func closestName(name string) string {
	const maxDistance = 2

	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range Names() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), candidate)
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best
}

func init() {
	Register(goParser{})
	Register(yamlParser{})
}
