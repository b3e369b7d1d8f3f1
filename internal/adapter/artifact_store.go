package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

const artifactPerm fs.FileMode = 0o644

// ArtifactStore persists generated files.
type ArtifactStore interface {
	// Commit writes artifacts in order, skipping files whose content is already
	// up to date, then removes the prune paths.
	Commit(ctx context.Context, artifacts []m.Artifact, prune []m.Path) (m.CommitResult, error)

	// Diff reports artifacts that differ from disk and prune paths that still exist,
	// without writing anything.
	Diff(ctx context.Context, artifacts []m.Artifact, prune []m.Path) ([]m.StaleFile, error)
}

type artifactStore struct {
	fsAdapter SourceFSAdapter
}

// NewArtifactStore builds an ArtifactStore on top of a SourceFSAdapter.
func NewArtifactStore(fsAdapter SourceFSAdapter) ArtifactStore {
	return &artifactStore{fsAdapter: fsAdapter}
}

func (s *artifactStore) Commit(ctx context.Context, artifacts []m.Artifact, prune []m.Path) (m.CommitResult, error) {
	var result m.CommitResult

	for _, artifact := range artifacts {
		current, exists, err := s.read(ctx, artifact.Path)
		if err != nil {
			return result, err
		}

		if exists && bytes.Equal(current, artifact.Content) {
			slog.Debug("Artifact unchanged", "path", artifact.Path)

			result.Unchanged = append(result.Unchanged, artifact.Path)

			continue
		}

		dir := s.fsAdapter.JoinPath(ctx, filepath.Dir(string(artifact.Path)))
		if err := s.fsAdapter.MkdirAll(ctx, dir); err != nil {
			slog.Error("Failed to create artifact directory", "path", dir, "error", err)
			return result, fmt.Errorf("create directory %s: %w", dir, err)
		}

		if err := s.fsAdapter.WriteFileAtomic(ctx, artifact.Path, artifact.Content, artifactPerm); err != nil {
			slog.Error("Failed to write artifact", "path", artifact.Path, "error", err)
			return result, fmt.Errorf("write %s: %w", artifact.Path, err)
		}

		slog.Debug("Artifact written", "path", artifact.Path, "bytes", len(artifact.Content))

		result.Written = append(result.Written, artifact.Path)
	}

	for _, path := range prune {
		if err := s.fsAdapter.Remove(ctx, path); err != nil {
			slog.Error("Failed to prune artifact", "path", path, "error", err)
			return result, fmt.Errorf("remove %s: %w", path, err)
		}

		slog.Debug("Artifact pruned", "path", path)

		result.Pruned = append(result.Pruned, path)
	}

	return result, nil
}

func (s *artifactStore) Diff(ctx context.Context, artifacts []m.Artifact, prune []m.Path) ([]m.StaleFile, error) {
	var stale []m.StaleFile

	for _, artifact := range artifacts {
		current, exists, err := s.read(ctx, artifact.Path)
		if err != nil {
			return nil, err
		}

		if exists && bytes.Equal(current, artifact.Content) {
			continue
		}

		stale = append(stale, m.StaleFile{
			Path:    artifact.Path,
			Missing: !exists,
			Diff:    snapshot.Diff(string(artifact.Path), string(artifact.Path)+" (generated)", current, artifact.Content),
		})
	}

	for _, path := range prune {
		if _, exists, err := s.read(ctx, path); err != nil {
			return nil, err
		} else if exists {
			stale = append(stale, m.StaleFile{Path: path, Orphan: true})
		}
	}

	return stale, nil
}

func (s *artifactStore) read(ctx context.Context, path m.Path) ([]byte, bool, error) {
	content, err := s.fsAdapter.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	return content, true, nil
}
