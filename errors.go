// SPDX-License-Identifier: EPL-2.0

package qcaudio

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientInput is returned when fewer than two files are
	// supplied. Merging a single file is a caller-level short-circuit, not
	// a pipeline run.
	ErrInsufficientInput = errors.New("need at least two recordings to merge")

	// ErrUnknownFormat is returned when a file matches no registered
	// decoder by content type, extension or magic bytes.
	ErrUnknownFormat = errors.New("unknown audio format")
)

// DecodeError reports that one specific input file could not be decoded.
// The whole merge fails; callers surface File so the user can remove or
// replace that recording and retry.
type DecodeError struct {
	File string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.File, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure while serializing the merged output. Given
// correct upstream stages it indicates a programming error, not bad input.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode merged audio: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
