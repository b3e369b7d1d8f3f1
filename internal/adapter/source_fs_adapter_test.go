package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

func TestLocalSourceFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.go"), "package b\n")
	writeTestFile(t, filepath.Join(root, "a.go"), "package a\n")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(ctx, m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	if strings.Join(names, ",") != "a.go,b.go,c" {
		t.Fatalf("ReadDir() names = %v, want sorted [a.go b.go c]", names)
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	content := "package main\n" + "func main() {}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_CancelledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.ReadFile(ctx, m.Path(t.TempDir())); err == nil {
		t.Fatalf("ReadFile() expected error for cancelled context")
	}

	if err := adapter.MkdirAll(ctx, m.Path(t.TempDir())); err == nil {
		t.Fatalf("MkdirAll() expected error for cancelled context")
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "out.go")
	writeTestFile(t, path, "old\n")

	if err := adapter.WriteFileAtomic(ctx, m.Path(path), []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}

	if string(got) != "new\n" {
		t.Fatalf("WriteFileAtomic() content = %q, want %q", got, "new\n")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFileAtomic() left temporary files behind: %d entries", len(entries))
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomicMissingDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "missing", "out.go")

	if err := adapter.WriteFileAtomic(context.Background(), m.Path(path), []byte("x"), 0o644); err == nil {
		t.Fatalf("WriteFileAtomic() expected error when the directory does not exist")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("WriteFileAtomic() should not create %s", path)
	}
}

func TestLocalSourceFSAdapter_MkdirAllAndRemove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := adapter.MkdirAll(ctx, m.Path(dir)); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	info, err := adapter.Stat(ctx, m.Path(dir))
	if err != nil || !info.IsDir() {
		t.Fatalf("Stat() = %v, %v; want directory", info, err)
	}

	file := filepath.Join(dir, "f.json")
	writeTestFile(t, file, "{}")

	if err := adapter.Remove(ctx, m.Path(file)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if err := adapter.Remove(ctx, m.Path(file)); err != nil {
		t.Fatalf("Remove() of a missing file error = %v", err)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	base := filepath.Join("/tmp", "project")
	target := filepath.Join(base, "sub", "dir", "file.go")

	rel, err := adapter.RelPath(ctx, m.Path(base), m.Path(target))
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.go") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.go"))
	}

	joined := adapter.JoinPath(ctx, "/tmp", "project", "sub", "file.go")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.go") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "file.go"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
