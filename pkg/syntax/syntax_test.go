package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

func TestLookup(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		for _, name := range []string{"go", "yaml"} {
			p, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name())
		}
	})

	t.Run("suggestion", func(t *testing.T) {
		_, err := Lookup("yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `did you mean "yaml"`)
	})

	t.Run("no close match", func(t *testing.T) {
		_, err := Lookup("typescript")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "available: go, yaml")
	})
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "go")
	assert.Contains(t, names, "yaml")
	assert.IsIncreasing(t, names)
}

func TestDiagnosticError(t *testing.T) {
	err := Invalid(3, 7, "expected %s", "';'")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, "invalid input: 3:7: expected ';'", err.Error())

	assert.False(t, IsInvalidInput(errors.New("boom")))
	assert.Equal(t, "invalid input", (&DiagnosticError{}).Error())
	assert.Equal(t, "oops", Diagnostic{Message: "oops"}.String())
}

func TestGoParser_Parse(t *testing.T) {
	p, err := Lookup("go")
	require.NoError(t, err)
	assert.Equal(t, ".go", p.Extension())

	tree, err := p.Parse([]byte("package a\n\nvar x = 1 + 2\n"))
	require.NoError(t, err)

	kind, ok := tree.Get(NodeKey)
	require.True(t, ok)
	assert.Equal(t, "File", kind.Text())

	name, ok := tree.Get("Name")
	require.True(t, ok)
	ident, ok := name.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "a", ident.Text())

	pkg, ok := tree.Get("Package")
	require.True(t, ok)
	assert.Equal(t, "1:1", pkg.Text())

	_, hasImports := tree.Get("Imports")
	assert.False(t, hasImports)

	decls, ok := tree.Get("Decls")
	require.True(t, ok)
	require.Equal(t, 1, decls.Len())

	out, err := snapshot.Marshal(tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Op": "+"`)
	assert.Contains(t, string(out), `"node": "BinaryExpr"`)
}

func TestGoParser_Deterministic(t *testing.T) {
	p, err := Lookup("go")
	require.NoError(t, err)

	src := []byte("package a\n\n// Doc.\nfunc F(a, b int) (c int) {\n\tfor i := range 3 {\n\t\tc += i\n\t}\n\treturn\n}\n")

	first, err := p.Parse(src)
	require.NoError(t, err)

	second, err := p.Parse(src)
	require.NoError(t, err)

	a, err := snapshot.Marshal(first)
	require.NoError(t, err)
	b, err := snapshot.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGoParser_Invalid(t *testing.T) {
	p, err := Lookup("go")
	require.NoError(t, err)

	for _, src := range []string{"", "package", "package a\nfunc {", "var x = 1"} {
		t.Run(src, func(t *testing.T) {
			_, err := p.Parse([]byte(src))
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))

			var diag *DiagnosticError
			require.True(t, errors.As(err, &diag))
			assert.NotEmpty(t, diag.Diagnostics)
		})
	}
}

func TestYAMLParser_Parse(t *testing.T) {
	p, err := Lookup("yaml")
	require.NoError(t, err)
	assert.Equal(t, ".yaml", p.Extension())

	src := []byte("zeta: 1\nalpha: [true, ~, 2.5, text]\nanchor: &a {k: v}\nref: *a\n---\n- 0x10\n")

	tree, err := p.Parse(src)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())

	doc := tree.Index(0)
	fields := doc.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"zeta", "alpha", "anchor", "ref"},
		[]string{fields[0].Key, fields[1].Key, fields[2].Key, fields[3].Key})

	alpha := fields[1].Value
	assert.Equal(t, snapshot.KindBool, alpha.Index(0).Kind())
	assert.True(t, alpha.Index(1).IsNull())
	assert.Equal(t, "2.5", alpha.Index(2).Text())
	assert.Equal(t, "text", alpha.Index(3).Text())

	assert.True(t, snapshot.Equal(fields[2].Value, fields[3].Value))
	assert.Equal(t, "16", tree.Index(1).Index(0).Text())
}

func TestYAMLParser_KeysDifferingByTag(t *testing.T) {
	p, err := Lookup("yaml")
	require.NoError(t, err)

	tree, err := p.Parse([]byte("'1': quoted\n1: plain\n"))
	require.NoError(t, err)

	fields := tree.Index(0).Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "1", fields[0].Key)
	assert.Equal(t, "!!int 1", fields[1].Key)

	data, err := snapshot.Marshal(tree)
	require.NoError(t, err)
	assert.NoError(t, snapshot.Compare(tree, data))

	_, err = p.Parse([]byte("1: a\n1: b\n"))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestYAMLParser_LargeIntegersKeepDigits(t *testing.T) {
	p, err := Lookup("yaml")
	require.NoError(t, err)

	tree, err := p.Parse([]byte("big: 18446744073709551616\nunsigned: 9223372036854775808\nsmall: -7\n"))
	require.NoError(t, err)

	doc := tree.Index(0)

	big, ok := doc.Get("big")
	require.True(t, ok)
	assert.Equal(t, snapshot.KindNumber, big.Kind())
	assert.Equal(t, "18446744073709551616", big.Text())

	unsigned, ok := doc.Get("unsigned")
	require.True(t, ok)
	assert.Equal(t, snapshot.KindNumber, unsigned.Kind())
	assert.Equal(t, "9223372036854775808", unsigned.Text())

	small, ok := doc.Get("small")
	require.True(t, ok)
	assert.Equal(t, "-7", small.Text())

	data, err := snapshot.Marshal(tree)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"big": 18446744073709551616`)
}

func TestYAMLParser_Empty(t *testing.T) {
	p, err := Lookup("yaml")
	require.NoError(t, err)

	tree, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, snapshot.KindArray, tree.Kind())
	assert.Equal(t, 0, tree.Len())
}

func TestYAMLParser_Invalid(t *testing.T) {
	p, err := Lookup("yaml")
	require.NoError(t, err)

	tests := []struct {
		name string
		src  string
	}{
		{"unclosed flow", "a: [1, 2\n"},
		{"bad indentation", "a:\n  b: 1\n c: 2\n"},
		{"duplicate key", "a: 1\na: 2\n"},
		{"complex key", "? [a, b]\n: 1\n"},
		{"unknown alias", "a: *missing\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err), "got %v", err)
		})
	}
}
