//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package builtins holds the argument-checking helpers every concrete
// operator package (list, arith, compare, equiv, bind, cond, ioprim,
// loader) builds its contract checks on, so each one reports the same
// arity/type-error wording instead of inventing its own phrasing.
package builtins

import (
	"t73f.de/r/blisp"
)

// CheckArity reports the exact-arity error unless args has exactly n
// elements.
func CheckArity(name string, args []blisp.Object, n int) *blisp.Err {
	if len(args) != n {
		return blisp.MakeErr("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, len(args), n)
	}
	return nil
}

// CheckMinArity reports the exact-arity error (using min as the expected
// count) unless args has at least min elements.
func CheckMinArity(name string, args []blisp.Object, min int) *blisp.Err {
	if len(args) < min {
		return blisp.MakeErr("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, len(args), min)
	}
	return nil
}

// GetNumber returns args[i] as a Number or the incorrect-type error.
func GetNumber(name string, args []blisp.Object, i int) (blisp.Number, *blisp.Err) {
	n, ok := args[i].(blisp.Number)
	if !ok {
		return 0, blisp.MakeErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected Number.", name, i, blisp.TypeNameOf(args[i]))
	}
	return n, nil
}

// GetString returns args[i] as a Str or the incorrect-type error.
func GetString(name string, args []blisp.Object, i int) (blisp.Str, *blisp.Err) {
	s, ok := args[i].(blisp.Str)
	if !ok {
		return blisp.Str{}, blisp.MakeErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected String.", name, i, blisp.TypeNameOf(args[i]))
	}
	return s, nil
}

// GetSymbol returns args[i] as a Symbol or the incorrect-type error.
func GetSymbol(name string, args []blisp.Object, i int) (blisp.Symbol, *blisp.Err) {
	s, ok := args[i].(blisp.Symbol)
	if !ok {
		return "", blisp.MakeErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected Symbol.", name, i, blisp.TypeNameOf(args[i]))
	}
	return s, nil
}

// GetList returns args[i] as a List (the dialect's "List" is always a
// Quoted-list) or the incorrect-type error.
func GetList(name string, args []blisp.Object, i int) (*blisp.List, *blisp.Err) {
	l, ok := args[i].(*blisp.List)
	if !ok || !l.Quoted {
		return nil, blisp.MakeErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected Q-Expression.", name, i, blisp.TypeNameOf(args[i]))
	}
	return l, nil
}

// GetFunc returns args[i] as a Func or the incorrect-type error.
func GetFunc(name string, args []blisp.Object, i int) (*blisp.Func, *blisp.Err) {
	f, ok := args[i].(*blisp.Func)
	if !ok {
		return nil, blisp.MakeErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected Function.", name, i, blisp.TypeNameOf(args[i]))
	}
	return f, nil
}

// RequireNonEmpty reports the "passed {}" error unless l has at least one
// item.
func RequireNonEmpty(name string, l *blisp.List, i int) *blisp.Err {
	if len(l.Items) == 0 {
		return blisp.MakeErr("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}
