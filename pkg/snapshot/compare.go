package snapshot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// FilePrefix and FileExt frame the sidecar name of a sample's snapshot.
	FilePrefix = "ast."
	FileExt    = ".json"
)

// FileName returns the snapshot sidecar name for a sample base name.
func FileName(base string) string {
	return FilePrefix + base + FileExt
}

// IsFileName reports whether name looks like a snapshot sidecar.
func IsFileName(name string) bool {
	return len(name) > len(FilePrefix)+len(FileExt) &&
		strings.HasPrefix(name, FilePrefix) &&
		strings.HasSuffix(name, FileExt)
}

// MismatchError describes a fresh parse result that differs from its stored snapshot.
type MismatchError struct {
	// Diff is a unified diff from the stored snapshot to the fresh serialization.
	Diff string
	// Cause is set when the stored snapshot could not be decoded at all.
	Cause error
}

func (e *MismatchError) Error() string {
	var b strings.Builder

	b.WriteString("parse result does not match stored snapshot")

	if e.Cause != nil {
		fmt.Fprintf(&b, " (%v)", e.Cause)
	}

	if e.Diff != "" {
		b.WriteString(":\n")
		b.WriteString(e.Diff)
	}

	return b.String()
}

func (e *MismatchError) Unwrap() error {
	return e.Cause
}

// Compare checks a freshly parsed tree against stored snapshot text.
//
// The stored text is decoded and compared structurally first. When that fails, both
// sides are compared by their canonical text with numbers normalized, which tolerates
// snapshots whose numeric spelling does not survive the typed round trip.
func Compare(fresh Value, stored []byte) error {
	expected, decodeErr := Unmarshal(stored)
	if decodeErr == nil && Equal(fresh, expected) {
		return nil
	}

	actual, err := Marshal(fresh)
	if err != nil {
		return fmt.Errorf("serialize parse result: %w", err)
	}

	if decodeErr == nil {
		canonicalStored, err := Canonicalize(stored)
		if err == nil {
			canonicalFresh, err := Marshal(normalizeNumbers(fresh))
			if err == nil && bytes.Equal(canonicalStored, canonicalFresh) {
				return nil
			}
		}
	}

	return &MismatchError{
		Diff:  Diff("snapshot", "parsed", stored, actual),
		Cause: decodeErr,
	}
}

// Diff renders a unified diff between two texts, or "" when they are identical.
func Diff(fromName, toName string, from, to []byte) string {
	if bytes.Equal(from, to) {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(from)),
		B:        difflib.SplitLines(string(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("--- %s\n+++ %s\n(diff unavailable: %v)\n", fromName, toName, err)
	}

	return diff
}
