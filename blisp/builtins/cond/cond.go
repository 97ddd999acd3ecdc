//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package cond implements the single control-flow builtin of §4.6: if.
package cond

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

// If implements `if N T F`.
func If(ev blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("if", args, 3); err != nil {
		return err
	}
	n, err := builtins.GetNumber("if", args, 0)
	if err != nil {
		return err
	}
	t, err := builtins.GetList("if", args, 1)
	if err != nil {
		return err
	}
	f, err := builtins.GetList("if", args, 2)
	if err != nil {
		return err
	}
	if n.IsTrue() {
		return ev.Eval(env, t.AsActive())
	}
	return ev.Eval(env, f.AsActive())
}

// Register binds `if` in env.
func Register(env blisp.Environment) {
	env.BindLocal("if", blisp.NewBuiltin("if", If))
}
