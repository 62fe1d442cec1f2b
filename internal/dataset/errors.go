package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch indicates the dataset could not be retrieved or decoded.
	ErrFetch = errors.New("dataset: fetch failed")

	// ErrEmptyDataset indicates a successful fetch that yielded no records.
	ErrEmptyDataset = errors.New("dataset: no records")

	// ErrUnsupportedSource indicates a source URI with no matching reader.
	ErrUnsupportedSource = errors.New("dataset: unsupported source")
)

// SourceError wraps a fetch failure with the source it came from.
type SourceError struct {
	Source  string
	Wrapped error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetch, e.Source, e.Wrapped)
}

// Unwrap exposes both ErrFetch and the underlying cause to errors.Is.
func (e *SourceError) Unwrap() []error {
	return []error{ErrFetch, e.Wrapped}
}
