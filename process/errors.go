// Copyright 2017 The Gobrayton Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package process

import "github.com/cpmech/gosl/io"

// Kind discriminates the failure classes of a cycle computation
type Kind int

const (

	// Validation flags malformed or out-of-physical-range input values
	Validation Kind = iota + 1

	// Configuration flags a logically inconsistent process configuration
	Configuration

	// Numerical flags an iterative routine exceeding its iteration budget
	Numerical
)

// String returns the name of this kind
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Configuration:
		return "configuration"
	case Numerical:
		return "numerical"
	}
	return "unknown"
}

// Error is a typed error carrying the failing leg and its parameters.
// The solver never retries; errors propagate to the caller immediately.
type Error struct {
	Kind Kind   // failure class
	Leg  string // leg or component where the failure happened
	Msg  string // message with full context
}

// Error returns the error message
func (o *Error) Error() string {
	return io.Sf("%s error in %q: %s", o.Kind, o.Leg, o.Msg)
}

// Verr returns a new validation error
func Verr(leg, msg string, prm ...interface{}) *Error {
	return &Error{Kind: Validation, Leg: leg, Msg: io.Sf(msg, prm...)}
}

// Cerr returns a new configuration error
func Cerr(leg, msg string, prm ...interface{}) *Error {
	return &Error{Kind: Configuration, Leg: leg, Msg: io.Sf(msg, prm...)}
}

// Nerr returns a new numerical error
func Nerr(leg, msg string, prm ...interface{}) *Error {
	return &Error{Kind: Numerical, Leg: leg, Msg: io.Sf(msg, prm...)}
}

// KindOf returns the kind of a typed error, or 0 for any other error
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}
