//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package blisp

import (
	"fmt"
	"io"
)

// Err is a first-class error value. Errors are never thrown: a failing
// read, eval, or builtin call returns one instead, and it propagates
// automatically through list reduction and application.
type Err struct{ Msg string }

// MakeErr builds an *Err from a format string, the way every builtin in
// this dialect reports a failure.
func MakeErr(format string, args ...any) *Err {
	return &Err{Msg: fmt.Sprintf(format, args...)}
}

// IsEqual compares two errors by byte identity of their message.
func (e *Err) IsEqual(other Object) bool {
	oe, ok := other.(*Err)
	return ok && e.Msg == oe.Msg
}

// Clone returns an independent copy of e.
func (e *Err) Clone() Object { return &Err{Msg: e.Msg} }

// TypeName returns "Error".
func (*Err) TypeName() string { return "Error" }

func (e *Err) String() string { return "Error: " + e.Msg }

func (e *Err) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

// Error satisfies the Go error interface so an *Err can be passed through
// ordinary Go error-handling paths without an extra conversion step.
func (e *Err) Error() string { return e.Msg }

// IsErr reports whether obj is a runtime error value.
func IsErr(obj Object) bool {
	_, ok := obj.(*Err)
	return ok
}
