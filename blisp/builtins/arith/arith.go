//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package arith implements the arithmetic operators: +/add, -/sub,
// */mul, //div, %/mod, plus min/max. Each of the first five is registered
// under both its symbolic and word spelling, bound to the same Go
// function; min and max have only their word spelling.
package arith

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

func numbers(name string, args []blisp.Object) ([]blisp.Number, *blisp.Err) {
	out := make([]blisp.Number, len(args))
	for i := range args {
		n, err := builtins.GetNumber(name, args, i)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func fold(name string, args []blisp.Object, identity blisp.Number, unaryNegate bool, op func(a, b blisp.Number) (blisp.Number, *blisp.Err)) blisp.Object {
	if err := builtins.CheckMinArity(name, args, 1); err != nil {
		return err
	}
	ns, err := numbers(name, args)
	if err != nil {
		return err
	}
	if unaryNegate && len(ns) == 1 {
		return identity - ns[0]
	}
	total := ns[0]
	for _, n := range ns[1:] {
		var oerr *blisp.Err
		total, oerr = op(total, n)
		if oerr != nil {
			return oerr
		}
	}
	return total
}

// Add implements `+`/`add`.
func Add(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("+", args, 0, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) { return a + b, nil })
}

// Sub implements `-`/`sub`, negating a single argument.
func Sub(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("-", args, 0, true, func(a, b blisp.Number) (blisp.Number, *blisp.Err) { return a - b, nil })
}

// Mul implements `*`/`mul`.
func Mul(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("*", args, 1, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) { return a * b, nil })
}

// Div implements `/`/`div`.
func Div(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("/", args, 1, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) {
		if b.IsZero() {
			return 0, blisp.MakeErr("Division By Zero")
		}
		return a / b, nil
	})
}

// Mod implements `%`/`mod`.
func Mod(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("%", args, 1, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) {
		if b.IsZero() {
			return 0, blisp.MakeErr("Division By Zero")
		}
		return a % b, nil
	})
}

// Min implements `min`: the smallest of one or more Number arguments.
func Min(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("min", args, 0, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) {
		if b < a {
			return b, nil
		}
		return a, nil
	})
}

// Max implements `max`: the largest of one or more Number arguments.
func Max(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return fold("max", args, 0, false, func(a, b blisp.Number) (blisp.Number, *blisp.Err) {
		if b > a {
			return b, nil
		}
		return a, nil
	})
}

// Register binds the arithmetic operators, under both their symbolic and
// word spellings where the dialect gives them one, in env.
func Register(env blisp.Environment) {
	bind := func(names ...string) func(blisp.BuiltinFn) {
		return func(fn blisp.BuiltinFn) {
			for _, n := range names {
				env.BindLocal(n, blisp.NewBuiltin(n, fn))
			}
		}
	}
	bind("+", "add")(Add)
	bind("-", "sub")(Sub)
	bind("*", "mul")(Mul)
	bind("/", "div")(Div)
	bind("%", "mod")(Mod)
	bind("min")(Min)
	bind("max")(Max)
}
