package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fixturegen.dev/pkg/fixturegen/internal/adapter"
	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

// ScanArgs configures one walk of the resource tree.
type ScanArgs struct {
	Root      m.Path
	Extension string
	// Exclude holds doublestar patterns matched against slash-separated paths
	// relative to Root.
	Exclude []string
	// Skip lists files that are never samples, such as the generated output.
	Skip []m.Path
}

// Scanner builds the in-memory resource tree.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (*m.DirTree, error)
}

type scanner struct {
	adapter.SourceFSAdapter
}

// NewScanner creates a Scanner on top of the filesystem adapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter) Scanner {
	return &scanner{SourceFSAdapter: fsAdapter}
}

// Scan walks args.Root depth-first. Entries of each directory are visited in
// lexical order, sub-directories and samples interleaved.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (*m.DirTree, error) {
	if args.Extension == "" {
		return nil, fmt.Errorf("sample extension is empty")
	}

	for _, pattern := range args.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	skip := make(map[string]bool, len(args.Skip))
	for _, p := range args.Skip {
		skip[filepath.Clean(string(p))] = true
	}

	root := &m.DirTree{
		Name:     filepath.Base(string(args.Root)),
		FullPath: args.Root,
	}

	if err := s.walk(ctx, args, skip, root); err != nil {
		return nil, err
	}

	return root, nil
}

func (s *scanner) walk(ctx context.Context, args ScanArgs, skip map[string]bool, dir *m.DirTree) error {
	entries, err := s.ReadDir(ctx, dir.FullPath)
	if err != nil {
		slog.Error("Failed to read directory", "path", dir.FullPath, "error", err)
		return fault(dir.FullPath, fmt.Errorf("read directory: %w", err))
	}

	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(dir.RelPath, name)
		full := s.JoinPath(ctx, string(dir.FullPath), name)

		if excluded(args.Exclude, rel) {
			slog.Debug("Excluded by pattern", "path", rel)
			continue
		}

		isDir, isFile, err := s.entryKind(ctx, full, entry)
		if err != nil {
			return err
		}

		switch {
		case isDir:
			child := &m.DirTree{Name: name, FullPath: full, RelPath: rel}
			if err := s.walk(ctx, args, skip, child); err != nil {
				return err
			}

			dir.Entries = append(dir.Entries, m.Entry{Dir: child})

		case isFile && snapshot.IsFileName(name):
			dir.Snapshots = append(dir.Snapshots, full)

		case isFile && skip[filepath.Clean(string(full))]:
			slog.Debug("Skipping generated file", "path", full)

		case isFile && isSampleName(name, args.Extension):
			sample := m.NewSample(full, rel, args.Extension)
			dir.Entries = append(dir.Entries, m.Entry{Sample: &sample})
		}
	}

	return nil
}

// entryKind resolves symlinks to files. Symlinked directories are skipped so a
// link cycle can never make the walk recurse forever.
func (s *scanner) entryKind(ctx context.Context, full m.Path, entry fs.DirEntry) (bool, bool, error) {
	mode := entry.Type()

	switch {
	case mode&fs.ModeSymlink != 0:
		info, err := s.Stat(ctx, full)
		if err != nil {
			slog.Warn("Skipping broken symlink", "path", full, "error", err)
			return false, false, nil
		}

		if info.IsDir() {
			slog.Warn("Skipping symlinked directory", "path", full)
			return false, false, nil
		}

		return false, info.Mode().IsRegular(), nil

	case entry.IsDir():
		return true, false, nil

	case mode.IsRegular():
		return false, true, nil

	default:
		return false, false, nil
	}
}

func isSampleName(name, ext string) bool {
	return len(name) > len(ext) && strings.HasSuffix(name, ext)
}

func excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}
