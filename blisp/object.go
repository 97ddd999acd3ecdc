//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package blisp provides the value model and lexical environment of the
// lisp dialect: the tagged sum of runtime values (Number, Error, Symbol,
// String, active and quoted lists, and Function) together with the
// environment chain they are evaluated in.
package blisp

import (
	"io"
	"strings"
)

// Object is the generic value every result of reading or evaluating a form
// must satisfy.
type Object interface {
	// IsEqual compares two objects by the structural equality rules of
	// the `==`/`!=` builtins.
	IsEqual(Object) bool

	// Clone returns an independent deep copy of the object. Environment
	// lookups and partial application return clones so that a caller and
	// a callee never alias the same mutable value.
	Clone() Object

	// TypeName returns the type name used in error messages: one of
	// Function, Number, Error, String, Symbol, S-Expression, Q-Expression.
	TypeName() string

	String() string
	Print(w io.Writer) (int, error)
}

// Repr renders obj the way the printer would.
func Repr(obj Object) string {
	var sb strings.Builder
	_, _ = obj.Print(&sb)
	return sb.String()
}

// TypeNameOf returns the spec type name for obj, or "Unknown" for a nil
// interface value (which never occurs for well-formed values but guards
// against a defensive caller passing one).
func TypeNameOf(obj Object) string {
	if obj == nil {
		return "Unknown"
	}
	return obj.TypeName()
}
