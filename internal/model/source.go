// Package model defines the data structures shared by the generation pipeline.
package model

import (
	"path"
	"strings"

	"fixturegen.dev/pkg/fixturegen/pkg/snapshot"
)

// Path represents a file system path.
type Path string

// Sample is one input file under the resource root.
type Sample struct {
	// FullPath is the on-disk location.
	FullPath Path
	// RelPath is slash-separated and relative to the resource root.
	RelPath string
	// BaseName is the file name without its extension.
	BaseName string
}

// Dir returns the slash-separated directory of the sample relative to the root, or ""
// for samples at the root.
func (s Sample) Dir() string {
	dir := path.Dir(s.RelPath)
	if dir == "." {
		return ""
	}

	return dir
}

// SnapshotRelPath is the slash-separated location of the sample's snapshot sidecar.
func (s Sample) SnapshotRelPath() string {
	return path.Join(s.Dir(), snapshot.FileName(s.BaseName))
}

// NewSample builds a Sample from its full path, its slash-separated path relative to
// the resource root and the sample extension.
func NewSample(fullPath Path, relPath, ext string) Sample {
	return Sample{
		FullPath: fullPath,
		RelPath:  relPath,
		BaseName: strings.TrimSuffix(path.Base(relPath), ext),
	}
}

// OutcomeKind tags a parse outcome.
type OutcomeKind int

const (
	// Parsed means the parser produced a tree.
	Parsed OutcomeKind = iota
	// Failed means the parser rejected the sample as invalid input.
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Parsed:
		return "parsed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the classification of one sample.
type Outcome struct {
	Kind OutcomeKind
	// Tree is set for Parsed outcomes.
	Tree snapshot.Value
	// Diagnostic is set for Failed outcomes.
	Diagnostic error
}

// ParsedOutcome wraps a successful parse.
func ParsedOutcome(tree snapshot.Value) Outcome {
	return Outcome{Kind: Parsed, Tree: tree}
}

// FailedOutcome wraps an invalid-input diagnostic.
func FailedOutcome(diagnostic error) Outcome {
	return Outcome{Kind: Failed, Diagnostic: diagnostic}
}
