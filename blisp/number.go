//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package blisp

import (
	"io"
	"strconv"
)

// Number is a 64-bit signed integer value. The dialect has no floating
// point, rational, or big-integer representation (spec Non-goals).
type Number int64

// IsEqual compares two numbers by integer value.
func (n Number) IsEqual(other Object) bool {
	on, ok := other.(Number)
	return ok && n == on
}

// Clone returns n unchanged: numbers are immutable.
func (n Number) Clone() Object { return n }

// TypeName returns "Number".
func (Number) TypeName() string { return "Number" }

func (n Number) String() string { return strconv.FormatInt(int64(n), 10) }

func (n Number) Print(w io.Writer) (int, error) { return io.WriteString(w, n.String()) }

// IsZero reports whether n is the integer zero.
func (n Number) IsZero() bool { return n == 0 }

// IsTrue reports whether n counts as true in a boolean context (`||`,
// `&&`, `if`): zero is false, everything else is true.
func (n Number) IsTrue() bool { return n != 0 }

// Bool converts a Go bool into the Number 0 or 1 the comparison and
// logical builtins return.
func Bool(b bool) Number {
	if b {
		return 1
	}
	return 0
}
