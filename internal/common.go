// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal holds the error kind shared by every lcptools package.
//
// Each exported entry point (alphabet.Init*, core.New*, lps.New*,
// (*LPS).Deepen, (*LPS).Write) recovers internal panics at its boundary and
// returns one of these kinds rather than a bare error string, so callers can
// distinguish a bad argument from a corrupt file from a fatal allocation.
package internal

import (
	"fmt"
	"runtime"

	"github.com/dsnet/golib/errs"
)

// Kind classifies an Error as described in the design's error handling policy.
type Kind uint8

const (
	// InvalidArgument reports a bad encoding map, file, or argument.
	InvalidArgument Kind = iota
	// IoError reports a short read/write or malformed serialized core.
	IoError
	// AllocationError reports a failure to grow a bit buffer or table.
	AllocationError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case IoError:
		return "io error"
	case AllocationError:
		return "allocation error"
	default:
		return "unknown error"
	}
}

// Error is the wrapper type for errors specific to this library.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("lcptools: %s: %s", e.Kind, e.Msg) }

// Raise panics with an *Error of the given kind. Exported functions recover
// this via Recover; it must never escape a package boundary unrecovered.
func Raise(k Kind, format string, args ...interface{}) {
	errs.Panic(&Error{Kind: k, Msg: fmt.Sprintf(format, args...)})
}

// Assert panics with an *Error of kind k when cond is false.
func Assert(cond bool, k Kind, format string, args ...interface{}) {
	if !cond {
		Raise(k, format, args...)
	}
}

// Recover converts a panic carrying *Error (or a runtime.Error, which is
// re-panicked since it indicates a bug rather than an expected failure) into
// a returned error. Call as `defer internal.Recover(&err)` in every exported
// function that calls Raise/Assert internally.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *Error:
		*err = ex
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
