package domain

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"
	"unicode"
	"unicode/utf8"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

// GeneratedHeader marks the output so Go tooling treats it as generated code.
const GeneratedHeader = "// Code generated by fixturegen. DO NOT EDIT."

// RenderArgs describes the generated test file.
type RenderArgs struct {
	Package string
	Suite   string
	Parser  string
	// ResourceRoot is the slash-separated path from the output directory to the
	// resource root.
	ResourceRoot string
}

// Emitter turns the resource tree and its outcomes into test source.
type Emitter interface {
	// BuildScope folds tree into a scope tree. outcomes holds one outcome per
	// sample, in tree.Samples() order.
	BuildScope(suite string, tree *m.DirTree, outcomes []m.Outcome) (*m.Scope, error)
	// Render writes the gofmt-ed test file for scope.
	Render(args RenderArgs, scope *m.Scope) ([]byte, error)
}

type emitter struct {
	tmpl *template.Template
}

// NewEmitter creates an Emitter.
func NewEmitter() Emitter {
	tmpl := template.Must(template.New("file").Funcs(template.FuncMap{
		"quote":  strconv.Quote,
		"parsed": func(kind m.OutcomeKind) bool { return kind == m.Parsed },
	}).Parse(fileTemplate))

	return &emitter{tmpl: tmpl}
}

func (e *emitter) BuildScope(suite string, tree *m.DirTree, outcomes []m.Outcome) (*m.Scope, error) {
	next := 0

	scope, err := buildScope(suite, tree, outcomes, &next)
	if err != nil {
		return nil, err
	}

	if next != len(outcomes) {
		return nil, fmt.Errorf("%d outcomes for %d samples", len(outcomes), next)
	}

	return scope, nil
}

func buildScope(name string, dir *m.DirTree, outcomes []m.Outcome, next *int) (*m.Scope, error) {
	scope := &m.Scope{Name: name}
	names := nameSet{}

	for _, entry := range dir.Entries {
		switch {
		case entry.Dir != nil:
			child, err := buildScope(names.claim(SanitizeIdent(entry.Dir.Name)), entry.Dir, outcomes, next)
			if err != nil {
				return nil, err
			}

			scope.Entries = append(scope.Entries, m.ScopeEntry{Scope: child})

		case entry.Sample != nil:
			if *next >= len(outcomes) {
				return nil, fmt.Errorf("missing outcome for %s", entry.Sample.RelPath)
			}

			outcome := outcomes[*next]
			*next++

			test := &m.TestCase{
				Name:       names.claim(SanitizeIdent(entry.Sample.BaseName)),
				Kind:       outcome.Kind,
				SamplePath: entry.Sample.RelPath,
			}

			if outcome.Kind == m.Parsed {
				test.SnapshotPath = entry.Sample.SnapshotRelPath()
			}

			scope.Entries = append(scope.Entries, m.ScopeEntry{Test: test})
		}
	}

	return scope, nil
}

func (e *emitter) Render(args RenderArgs, scope *m.Scope) ([]byte, error) {
	if !token.IsIdentifier(args.Package) {
		return nil, fmt.Errorf("invalid package name %q", args.Package)
	}

	if !isTestSuffix(args.Suite) {
		return nil, fmt.Errorf("invalid suite name %q", args.Suite)
	}

	var buf bytes.Buffer

	data := struct {
		RenderArgs
		Header string
		Scope  *m.Scope
	}{
		RenderArgs: args,
		Header:     GeneratedHeader,
		Scope:      scope,
	}

	if err := e.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render test file: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format test file: %w", err)
	}

	return src, nil
}

// isTestSuffix reports whether "Test"+s names a test function go test will run.
func isTestSuffix(s string) bool {
	if !token.IsIdentifier("Test" + s) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s)

	return s == "" || !unicode.IsLower(r)
}

const fileTemplate = `{{.Header}}

package {{.Package}}

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

const (
	resourceRoot = {{quote .ResourceRoot}}
	parserName   = {{quote .Parser}}
)

func readResource(t *testing.T, rel string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(resourceRoot, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return data
}

func assertParses(t *testing.T, sample, stored string) {
	t.Helper()

	parser, err := syntax.Lookup(parserName)
	require.NoError(t, err)

	tree, err := parser.Parse(readResource(t, sample))
	require.NoError(t, err)
	require.NoError(t, snapshot.Compare(tree, readResource(t, stored)))
}

func assertParseFails(t *testing.T, sample string) {
	t.Helper()

	parser, err := syntax.Lookup(parserName)
	require.NoError(t, err)

	_, err = parser.Parse(readResource(t, sample))
	require.ErrorIs(t, err, syntax.ErrInvalidInput)
}

func Test{{.Suite}}(t *testing.T) {
{{- template "entries" .Scope.Entries}}
}
{{define "entries"}}{{range .}}{{if .Scope}}
t.Run({{quote .Scope.Name}}, func(t *testing.T) {
{{- template "entries" .Scope.Entries}}
})
{{- else}}
t.Run({{quote .Test.Name}}, func(t *testing.T) {
{{- if parsed .Test.Kind}}
assertParses(t, {{quote .Test.SamplePath}}, {{quote .Test.SnapshotPath}})
{{- else}}
assertParseFails(t, {{quote .Test.SamplePath}})
{{- end}}
})
{{- end}}{{end}}{{end}}`
