package domain

import (
	"errors"
	"fmt"

	m "fixturegen.dev/pkg/fixturegen/internal/model"
)

// ErrStale is returned by Check when generated files differ from disk.
var ErrStale = errors.New("generated files are out of date")

// FaultError is a fatal generation fault tied to the file that caused it.
type FaultError struct {
	Path m.Path
	Err  error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

func fault(path m.Path, err error) error {
	var existing *FaultError
	if errors.As(err, &existing) {
		return err
	}

	return &FaultError{Path: path, Err: err}
}
