package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidName        = errors.New("don't use dots or slashes in note names")
	ErrMissingValue       = errors.New("you didn't provide a value")
	ErrMultilineValue     = errors.New("a note must fit on a single line")
	ErrInvalidIndex       = errors.New("invalid index")
	ErrEmptyList          = errors.New("there are no notes")
	ErrIO                 = errors.New("i/o failure")
	ErrNotFound           = errors.New("note file does not exist")
	ErrEditorLaunchFailed = errors.New("failed to open editor")
)

// IndexError reports a position outside the range allowed by an operation.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid index: %d", e.Index)
}

// Is lets errors.Is(err, ErrInvalidIndex) match any IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}
