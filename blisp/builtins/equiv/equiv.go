//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package equiv implements the structural-equality operators of §4.6:
// == and !=. Both defer to each value's own IsEqual, which already
// implements the variant-by-variant recursion the contract describes.
package equiv

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

// Eq implements `==`.
func Eq(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("==", args, 2); err != nil {
		return err
	}
	return blisp.Bool(args[0].IsEqual(args[1]))
}

// Ne implements `!=`.
func Ne(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("!=", args, 2); err != nil {
		return err
	}
	return blisp.Bool(!args[0].IsEqual(args[1]))
}

// Register binds `==` and `!=` in env.
func Register(env blisp.Environment) {
	env.BindLocal("==", blisp.NewBuiltin("==", Eq))
	env.BindLocal("!=", blisp.NewBuiltin("!=", Ne))
}
