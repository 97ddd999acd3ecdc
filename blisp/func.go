//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package blisp

import (
	"io"
	"reflect"
)

// Evaluator is the minimal surface the evaluator package exposes back to
// built-ins and to the application protocol. It is declared here, rather
// than in package eval, so that builtins packages can accept it without
// importing eval and creating an import cycle (eval itself must import
// the builtins packages to register them).
type Evaluator interface {
	// Eval reduces obj under env (§4.5).
	Eval(env Environment, obj Object) Object

	// Apply invokes fn with args, already-evaluated, under env (§4.4).
	Apply(env Environment, fn *Func, args *List) Object
}

// BuiltinFn is the signature every built-in operator implements. args
// holds the already-evaluated operands; ownership of args transfers to
// the builtin.
type BuiltinFn func(ev Evaluator, env Environment, args []Object) Object

// Func is the Function variant: either a reference to a built-in
// operator, or a user-defined closure carrying its parameter list, body,
// and captured environment.
//
// A builtin Func has Builtin set and Params/Body/Env nil. A user-defined
// Func has Builtin nil and always has a captured Env, whose parent
// pointer is meaningless outside of an application in progress.
type Func struct {
	Name    string // builtin name, used in its error messages; empty for user-defined
	Builtin BuiltinFn

	Params *List // quoted-list of symbols
	Body   *List // quoted-list
	Env    Environment
}

// NewBuiltin wraps fn as a Func value bound under name.
func NewBuiltin(name string, fn BuiltinFn) *Func {
	return &Func{Name: name, Builtin: fn}
}

// NewClosure builds a user-defined Func from a parameter list, a body,
// and a freshly captured (empty) environment.
func NewClosure(params, body *List, captured Environment) *Func {
	return &Func{Params: params, Body: body, Env: captured}
}

// IsBuiltin reports whether f wraps a built-in operator rather than a
// user-defined closure.
func (f *Func) IsBuiltin() bool { return f.Builtin != nil }

// TypeName returns "Function".
func (*Func) TypeName() string { return "Function" }

// IsEqual compares built-in functions by operator identity and
// user-defined functions by parameter-and-body equality. Functions of
// different shapes are never equal.
func (f *Func) IsEqual(other Object) bool {
	of, ok := other.(*Func)
	if !ok {
		return false
	}
	if f.IsBuiltin() || of.IsBuiltin() {
		if !f.IsBuiltin() || !of.IsBuiltin() {
			return false
		}
		return reflect.ValueOf(f.Builtin).Pointer() == reflect.ValueOf(of.Builtin).Pointer()
	}
	return f.Params.IsEqual(of.Params) && f.Body.IsEqual(of.Body)
}

// Clone copies a built-in Func by identity (the same operator reference
// is shared, never duplicated) and deep-copies a user-defined Func,
// including its captured environment.
func (f *Func) Clone() Object {
	if f.IsBuiltin() {
		return f
	}
	return &Func{
		Params: f.Params.Clone().(*List),
		Body:   f.Body.Clone().(*List),
		Env:    f.Env.Clone(),
	}
}

func (f *Func) String() string { return Repr(f) }

// Print renders a built-in as `<builtin>` and a user-defined function as
// `(\ <params> <body>)`.
func (f *Func) Print(w io.Writer) (int, error) {
	if f.IsBuiltin() {
		return io.WriteString(w, "<builtin>")
	}
	length, err := io.WriteString(w, `(\ `)
	if err != nil {
		return length, err
	}
	n, err := f.Params.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, " ")
	length += n
	if err != nil {
		return length, err
	}
	n, err = f.Body.Print(w)
	length += n
	if err != nil {
		return length, err
	}
	n, err = io.WriteString(w, ")")
	return length + n, err
}
