package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoChannel is returned when not even the target channel is known.
var ErrNoChannel = errors.New("channel is not set, nowhere to report to")

// MissingInputError lists required input variables that were not provided.
type MissingInputError struct {
	Vars []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required inputs: %s", strings.Join(e.Vars, ", "))
}

// ExtractionError reports a changelog that could not be parsed at all.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract changes: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// BuildError reports a failure while assembling the detailed payload.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build payload: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// OutputWriteError reports that the step output could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("write step output: %v", e.Err)
	}
	return fmt.Sprintf("write step output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
