package model

// Artifact is one file produced by a generation run.
type Artifact struct {
	Path    Path
	Content []byte
}

// CommitResult reports what committing a set of artifacts changed on disk.
type CommitResult struct {
	Written   []Path
	Unchanged []Path
	Pruned    []Path
}

// StaleFile is an artifact whose on-disk content differs from the generated one.
type StaleFile struct {
	Path Path
	// Missing is true when the file does not exist yet.
	Missing bool
	// Orphan is true for a snapshot sidecar that generation would prune.
	Orphan bool
	Diff   string
}

// SampleResult pairs a sample with its outcome for reporting.
type SampleResult struct {
	Sample  Sample
	Outcome Outcome
}

// Summary describes one generation run.
type Summary struct {
	Output      Path
	Directories int
	Samples     int
	Parsed      int
	Failed      int
	Results     []SampleResult
	Commit      CommitResult
}
