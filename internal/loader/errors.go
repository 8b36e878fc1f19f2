package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogNotFound reports a missing catalog file.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrOrderNotFound reports a missing order file.
	ErrOrderNotFound = errors.New("order not found")
)

// Kind names which input file an error refers to.
type Kind string

const (
	KindCatalog Kind = "products"
	KindOrder   Kind = "request"
)

// NotFoundError is returned when an input file does not exist.
type NotFoundError struct {
	Kind Kind
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("missing %s file '%s'", e.Kind, e.Path)
}

// Is matches the sentinel for the file kind, so callers can use errors.Is.
func (e *NotFoundError) Is(target error) bool {
	switch e.Kind {
	case KindCatalog:
		return target == ErrCatalogNotFound
	case KindOrder:
		return target == ErrOrderNotFound
	}
	return false
}

// ParseError describes a malformed input file.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: invalid %s: %v", e.Path, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
