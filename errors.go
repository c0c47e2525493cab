package bai2

import (
	"fmt"

	"github.com/greenline-fi/bai2/internal/model"
)

// UnfinishedError is returned when the input is exhausted before a
// FileTrailer record has been seen and validated.
type UnfinishedError = model.UnfinishedError

// ProcessError wraps whichever pipeline stage produced the first fatal
// error: lexing, field typing, conversion, or the unfinished-input
// lifecycle error. It never represents more than one underlying cause.
type ProcessError struct {
	stage string
	err   error
}

func newProcessError(stage string, err error) *ProcessError {
	if err == nil {
		return nil
	}
	return &ProcessError{stage: stage, err: err}
}

// Stage reports which pipeline stage produced the error: "lex",
// "field-type", "convert", or "unfinished".
func (e *ProcessError) Stage() string { return e.stage }

func (e *ProcessError) Error() string {
	return fmt.Sprintf("bai2: %s: %s", e.stage, e.err)
}

func (e *ProcessError) Unwrap() error { return e.err }
