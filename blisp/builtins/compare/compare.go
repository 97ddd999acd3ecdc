//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package compare implements the ordering and logical operators: >, <,
// >=, <=, ||, &&, !. || and && are strict rather than short-circuiting:
// by the time a builtin runs, both operands have already been evaluated
// as ordinary Active-list children, so there is nothing left to defer.
package compare

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

func binary(name string, args []blisp.Object, op func(a, b blisp.Number) blisp.Number) blisp.Object {
	if err := builtins.CheckArity(name, args, 2); err != nil {
		return err
	}
	a, err := builtins.GetNumber(name, args, 0)
	if err != nil {
		return err
	}
	b, err := builtins.GetNumber(name, args, 1)
	if err != nil {
		return err
	}
	return op(a, b)
}

// Gt implements `>`.
func Gt(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary(">", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a > b) })
}

// Lt implements `<`.
func Lt(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary("<", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a < b) })
}

// Ge implements `>=`.
func Ge(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary(">=", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a >= b) })
}

// Le implements `<=`.
func Le(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary("<=", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a <= b) })
}

// Or implements `||`, treating zero as false and non-zero as true.
func Or(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary("||", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a.IsTrue() || b.IsTrue()) })
}

// And implements `&&`, treating zero as false and non-zero as true.
func And(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return binary("&&", args, func(a, b blisp.Number) blisp.Number { return blisp.Bool(a.IsTrue() && b.IsTrue()) })
}

// Not implements `!`, the single-argument logical negation.
func Not(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("!", args, 1); err != nil {
		return err
	}
	n, err := builtins.GetNumber("!", args, 0)
	if err != nil {
		return err
	}
	return blisp.Bool(n.IsZero())
}

// Register binds the comparison and logical operators in env.
func Register(env blisp.Environment) {
	env.BindLocal(">", blisp.NewBuiltin(">", Gt))
	env.BindLocal("<", blisp.NewBuiltin("<", Lt))
	env.BindLocal(">=", blisp.NewBuiltin(">=", Ge))
	env.BindLocal("<=", blisp.NewBuiltin("<=", Le))
	env.BindLocal("||", blisp.NewBuiltin("||", Or))
	env.BindLocal("&&", blisp.NewBuiltin("&&", And))
	env.BindLocal("!", blisp.NewBuiltin("!", Not))
}
