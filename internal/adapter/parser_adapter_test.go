package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
	"fixturegen.dev/pkg/fixturegen/pkg/syntax"
)

type panickyParser struct{}

func (panickyParser) Name() string      { return "panicky" }
func (panickyParser) Extension() string { return ".p" }
func (panickyParser) Parse([]byte) (snapshot.Value, error) {
	panic("index out of range")
}

func TestLocalParserAdapter_Parse(t *testing.T) {
	adapter := NewLocalParserAdapter()

	goParser, err := syntax.Lookup("go")
	require.NoError(t, err)

	t.Run("valid source", func(t *testing.T) {
		tree, err := adapter.Parse(context.Background(), goParser, "a.go", []byte("package a\n"))
		require.NoError(t, err)
		assert.Equal(t, snapshot.KindObject, tree.Kind())
	})

	t.Run("invalid source keeps the diagnostic", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), goParser, "b.go", []byte("package\n"))
		require.Error(t, err)
		assert.True(t, syntax.IsInvalidInput(err))
	})

	t.Run("panic becomes a fault", func(t *testing.T) {
		_, err := adapter.Parse(context.Background(), panickyParser{}, "c.p", []byte("x"))
		require.Error(t, err)
		assert.False(t, syntax.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "c.p")
		assert.Contains(t, err.Error(), "index out of range")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.Parse(ctx, goParser, "a.go", []byte("package a\n"))
		require.ErrorIs(t, err, context.Canceled)
	})
}
