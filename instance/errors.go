// SPDX-License-Identifier: MIT
// Package: lvknap/instance
//
// errors.go - sentinel errors for the instance package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Sentinels are never formatted at definition site; context is attached
//     with %w at the failure point (see wrapf).
//   • Option constructors never panic; bad option values surface here.

package instance

import (
	"errors"
	"fmt"
)

// ErrTooFewItems indicates a requested instance size below 1.
var ErrTooFewItems = errors.New("instance: item count too small")

// ErrInvalidRange indicates a coefficient range R outside [1, MaxRange].
var ErrInvalidRange = errors.New("instance: coefficient range out of domain")

// ErrInvalidRatio indicates a capacity ratio outside (0, 1].
var ErrInvalidRatio = errors.New("instance: capacity ratio out of range")

// ErrUnknownClass indicates an unsupported correlation class.
var ErrUnknownClass = errors.New("instance: unknown class")

// ErrMalformed indicates an instance document that cannot be decoded.
var ErrMalformed = errors.New("instance: malformed document")

// ErrDuplicateLabel indicates two items sharing one label.
var ErrDuplicateLabel = errors.New("instance: duplicate item label")

// Method tags used in wrapped errors.
const (
	methodGenerate = "Generate"
	methodDecode   = "Decode"
	methodEncode   = "Encode"
	methodValidate = "Validate"
)

// wrapf attaches method context to err, keeping it matchable with errors.Is.
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
