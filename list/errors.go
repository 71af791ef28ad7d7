package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by reads and removals which need at least one element.
	ErrEmpty = errors.New("list is empty")

	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError describes a location outside of [Min, Max] passed to Op.
type IndexError struct {
	Op  string
	Loc int
	Min int
	Max int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: location %d out of range [%d, %d]", e.Op, e.Loc, e.Min, e.Max)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
