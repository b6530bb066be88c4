package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented   = errors.New("project creation is not implemented yet")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidSelection = errors.New("selection no longer points at a project")
	ErrDuplicateProject = errors.New("project id already in use")
	ErrUnknownRoute     = errors.New("unknown route")
	ErrUnknownEvent     = errors.New("unknown event")
)

// IndexError reports an index outside the project list.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
