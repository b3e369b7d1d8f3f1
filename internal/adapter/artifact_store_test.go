package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

func TestArtifactStore_Commit(t *testing.T) {
	ctx := context.Background()
	store := NewArtifactStore(NewLocalSourceFSAdapter())

	root := t.TempDir()
	same := filepath.Join(root, "same.json")
	changed := filepath.Join(root, "changed.json")
	created := filepath.Join(root, "nested", "new.json")
	orphan := filepath.Join(root, "ast.gone.json")

	writeTestFile(t, same, "same\n")
	writeTestFile(t, changed, "before\n")
	writeTestFile(t, orphan, "{}\n")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(same, old, old))

	result, err := store.Commit(ctx, []m.Artifact{
		{Path: m.Path(same), Content: []byte("same\n")},
		{Path: m.Path(changed), Content: []byte("after\n")},
		{Path: m.Path(created), Content: []byte("created\n")},
	}, []m.Path{m.Path(orphan)})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(changed), m.Path(created)}, result.Written)
	assert.Equal(t, []m.Path{m.Path(same)}, result.Unchanged)
	assert.Equal(t, []m.Path{m.Path(orphan)}, result.Pruned)

	got, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(got))

	got, err = os.ReadFile(created)
	require.NoError(t, err)
	assert.Equal(t, "created\n", string(got))

	info, err := os.Stat(same)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged artifacts must not be rewritten")

	_, err = os.Stat(orphan)
	assert.True(t, os.IsNotExist(err))
}

func TestArtifactStore_Diff(t *testing.T) {
	ctx := context.Background()
	store := NewArtifactStore(NewLocalSourceFSAdapter())

	root := t.TempDir()
	same := filepath.Join(root, "same.json")
	changed := filepath.Join(root, "changed.json")
	missing := filepath.Join(root, "missing.json")
	orphan := filepath.Join(root, "ast.gone.json")
	goneOrphan := filepath.Join(root, "ast.already-gone.json")

	writeTestFile(t, same, "same\n")
	writeTestFile(t, changed, "before\n")
	writeTestFile(t, orphan, "{}\n")

	stale, err := store.Diff(ctx, []m.Artifact{
		{Path: m.Path(same), Content: []byte("same\n")},
		{Path: m.Path(changed), Content: []byte("after\n")},
		{Path: m.Path(missing), Content: []byte("new\n")},
	}, []m.Path{m.Path(orphan), m.Path(goneOrphan)})
	require.NoError(t, err)
	require.Len(t, stale, 3)

	assert.Equal(t, m.Path(changed), stale[0].Path)
	assert.False(t, stale[0].Missing)
	assert.Contains(t, stale[0].Diff, "-before")
	assert.Contains(t, stale[0].Diff, "+after")

	assert.Equal(t, m.Path(missing), stale[1].Path)
	assert.True(t, stale[1].Missing)

	assert.Equal(t, m.Path(orphan), stale[2].Path)
	assert.True(t, stale[2].Orphan)

	got, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Equal(t, "before\n", string(got), "Diff must not write")
}
