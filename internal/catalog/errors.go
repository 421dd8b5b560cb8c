package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn    = errors.New("missing required column")
	ErrNotMatrix        = errors.New("embeddings are not a 2-D matrix")
	ErrUnsupportedDType = errors.New("unsupported embedding dtype")
	ErrRowMismatch      = errors.New("movie and embedding row counts differ")
)

// LoadError reports a startup artifact that could not be used. It is fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load catalog: %v", e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrorf(path, format string, args ...any) *LoadError {
	return &LoadError{Path: path, Err: fmt.Errorf(format, args...)}
}
