package model

// DirTree is one directory of the resource tree. Entries hold sub-directories and
// samples interleaved in the order the walker visited them.
type DirTree struct {
	Name     string
	FullPath Path
	// RelPath is slash-separated, "" for the resource root.
	RelPath string
	Entries []Entry
	// Snapshots lists snapshot sidecars already present in this directory.
	Snapshots []Path
}

// Entry is either a sub-directory or a sample.
type Entry struct {
	Dir    *DirTree
	Sample *Sample
}

// Samples returns every sample below t in traversal order.
func (t *DirTree) Samples() []Sample {
	var samples []Sample

	t.Visit(func(_ *DirTree, s Sample) {
		samples = append(samples, s)
	}, nil)

	return samples
}

// Visit walks t depth-first in entry order, calling onSample for each sample and
// onDir for each directory (t included) before its entries.
func (t *DirTree) Visit(onSample func(dir *DirTree, s Sample), onDir func(dir *DirTree)) {
	if onDir != nil {
		onDir(t)
	}

	for _, entry := range t.Entries {
		switch {
		case entry.Dir != nil:
			entry.Dir.Visit(onSample, onDir)
		case entry.Sample != nil && onSample != nil:
			onSample(t, *entry.Sample)
		}
	}
}

// Scope is a named test group mirroring one directory.
type Scope struct {
	Name    string
	Entries []ScopeEntry
}

// ScopeEntry is either a nested scope or a test case.
type ScopeEntry struct {
	Scope *Scope
	Test  *TestCase
}

// TestCase is one generated test bound to a single sample.
type TestCase struct {
	Name string
	Kind OutcomeKind
	// SamplePath and SnapshotPath are slash-separated and relative to the resource
	// root. SnapshotPath is empty for Failed cases.
	SamplePath   string
	SnapshotPath string
}

// CountTests returns the number of test cases below s.
func (s *Scope) CountTests() int {
	n := 0

	for _, entry := range s.Entries {
		switch {
		case entry.Scope != nil:
			n += entry.Scope.CountTests()
		case entry.Test != nil:
			n++
		}
	}

	return n
}
