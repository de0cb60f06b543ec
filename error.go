// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfgen

import (
	"errors"
	"strconv"
)

// ErrorCode classifies the errors returned by this library.
type ErrorCode int

// These are the possible values of ErrorCode.
const (
	// InvalidParameter indicates that an argument was out of range or
	// inconsistent with other arguments.
	InvalidParameter ErrorCode = iota + 1

	// InvalidOperation indicates that an operation was not allowed in the
	// current state, for example enabling encryption twice.
	InvalidOperation

	// FileNotFound indicates that a file or directory did not exist.
	FileNotFound

	// UnsupportedFunction indicates that a feature is declared but not
	// implemented, for example an unsupported stream filter.
	UnsupportedFunction
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidParameter:
		return "invalid parameter"
	case InvalidOperation:
		return "invalid operation"
	case FileNotFound:
		return "file not found"
	case UnsupportedFunction:
		return "unsupported function"
	default:
		return "pdfgen.ErrorCode(" + strconv.Itoa(int(c)) + ")"
	}
}

// Error is the error type returned by the functions in this module.
//
// Errors can be classified using [errors.Is] together with the sentinel
// values [ErrInvalidParameter], [ErrInvalidOperation], [ErrFileNotFound]
// and [ErrUnsupportedFunction].
type Error struct {
	Code ErrorCode

	// Op names the operation which failed.
	Op string

	// Err, if non-nil, gives more details about the failure.
	Err error
}

// Errorf returns a new *Error with the given code.  If err is nil, the
// error message is just the operation name and the code.
func Errorf(code ErrorCode, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

func (err *Error) Error() string {
	msg := err.Code.String()
	if err.Op != "" {
		msg = err.Op + ": " + msg
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is an *Error with the same code.
// Only the code is compared, so that the sentinel values can be used
// with [errors.Is].
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == err.Code
}

// Sentinel errors, for use with [errors.Is].
var (
	ErrInvalidParameter    = &Error{Code: InvalidParameter}
	ErrInvalidOperation    = &Error{Code: InvalidOperation}
	ErrFileNotFound        = &Error{Code: FileNotFound}
	ErrUnsupportedFunction = &Error{Code: UnsupportedFunction}
)

// VersionError is returned when trying to use a feature in a PDF file which is
// not supported by the PDF version used.
type VersionError struct {
	Operation string
	Earliest  Version
}

func (err *VersionError) Error() string {
	return err.Operation + " requires PDF version " + err.Earliest.String() + " or later"
}

// Is makes VersionError match [ErrInvalidParameter].
func (err *VersionError) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == InvalidParameter
}

// CheckVersion returns a *VersionError if v is older than earliest.
func CheckVersion(v Version, operation string, earliest Version) error {
	if v < earliest {
		return &VersionError{Operation: operation, Earliest: earliest}
	}
	return nil
}

var (
	errStreamNotIndirect = errors.New("streams must be indirect objects")
	errUnknownReference  = errors.New("reference to unknown object")
	errUnsetObject       = errors.New("object allocated but never stored")
)
