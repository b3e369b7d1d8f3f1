package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen.dev/pkg/fixturegen/internal/adapter"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func entryNames(dir *m.DirTree) []string {
	var names []string

	for _, entry := range dir.Entries {
		if entry.Dir != nil {
			names = append(names, entry.Dir.Name+"/")
		} else {
			names = append(names, entry.Sample.RelPath)
		}
	}

	return names
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.go":             "package b\n",
		"a.go":             "package a\n",
		"notes.txt":        "ignored",
		"ast.a.json":       "{}\n",
		"ast.gone.json":    "{}\n",
		"c/d.go":           "package d\n",
		"c/deeper/e.go":    "package e\n",
		"c/ast.d.json":     "{}\n",
		"fixtures_test.go": "package x\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	tree, err := scanner.Scan(context.Background(), ScanArgs{
		Root:      m.Path(root),
		Extension: ".go",
		Skip:      []m.Path{m.Path(filepath.Join(root, "fixtures_test.go"))},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.go", "b.go", "c/", "empty/"}, entryNames(tree))
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "ast.a.json")),
		m.Path(filepath.Join(root, "ast.gone.json")),
	}, tree.Snapshots)

	c := tree.Entries[2].Dir
	assert.Equal(t, "c", c.RelPath)
	assert.Equal(t, []string{"c/d.go", "deeper/"}, entryNames(c))
	assert.Len(t, c.Snapshots, 1)

	empty := tree.Entries[3].Dir
	assert.Empty(t, empty.Entries)

	var rels []string
	for _, sample := range tree.Samples() {
		rels = append(rels, sample.RelPath)
	}

	assert.Equal(t, []string{"a.go", "b.go", "c/d.go", "c/deeper/e.go"}, rels)
	assert.Equal(t, "e", tree.Samples()[3].BaseName)
}

func TestScanner_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"keep.go":           "package a\n",
		"skip_me.go":        "package a\n",
		"vendor/x.go":       "package x\n",
		"nested/wip/y.go":   "package y\n",
		"nested/ready/z.go": "package z\n",
	})

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	tree, err := scanner.Scan(context.Background(), ScanArgs{
		Root:      m.Path(root),
		Extension: ".go",
		Exclude:   []string{"skip_*.go", "vendor", "**/wip"},
	})
	require.NoError(t, err)

	var rels []string
	for _, sample := range tree.Samples() {
		rels = append(rels, sample.RelPath)
	}

	assert.Equal(t, []string{"keep.go", "nested/ready/z.go"}, rels)
}

func TestScanner_InvalidArgs(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())
	root := m.Path(t.TempDir())

	_, err := scanner.Scan(context.Background(), ScanArgs{Root: root, Extension: ".go", Exclude: []string{"[a-"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")

	_, err = scanner.Scan(context.Background(), ScanArgs{Root: root})
	require.Error(t, err)
}

func TestScanner_MissingRoot(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())
	missing := m.Path(filepath.Join(t.TempDir(), "missing"))

	_, err := scanner.Scan(context.Background(), ScanArgs{Root: missing, Extension: ".go"})
	require.Error(t, err)

	var faultErr *FaultError
	require.ErrorAs(t, err, &faultErr)
	assert.Equal(t, missing, faultErr.Path)
}

func TestScanner_Symlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, outside, map[string]string{"linked.go": "package l\n"})
	writeFiles(t, root, map[string]string{"real.go": "package r\n"})

	if err := os.Symlink(outside, filepath.Join(root, "dirlink")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	require.NoError(t, os.Symlink(filepath.Join(outside, "linked.go"), filepath.Join(root, "filelink.go")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "missing.go"), filepath.Join(root, "broken.go")))

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	tree, err := scanner.Scan(context.Background(), ScanArgs{Root: m.Path(root), Extension: ".go"})
	require.NoError(t, err)

	assert.Equal(t, []string{"filelink.go", "real.go"}, entryNames(tree))
}
