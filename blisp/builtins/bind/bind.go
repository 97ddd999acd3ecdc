//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package bind implements the binding builtins: def, =, and the lambda
// constructor \.
package bind

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

func defLike(name string, assign func(env blisp.Environment, sym string, val blisp.Object)) blisp.BuiltinFn {
	return func(_ blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
		if err := builtins.CheckMinArity(name, args, 1); err != nil {
			return err
		}
		syms, err := builtins.GetList(name, args, 0)
		if err != nil {
			return err
		}
		for _, item := range syms.Items {
			if _, ok := item.(blisp.Symbol); !ok {
				return blisp.MakeErr("Function '%s' cannot define non-symbol. Received %s, Expected Symbol.", name, blisp.TypeNameOf(item))
			}
		}
		values := args[1:]
		if len(values) != len(syms.Items) {
			return blisp.MakeErr("Function '%s' passed too many arguments for symbols. Got %d, Expected %d.", name, len(values), len(syms.Items))
		}
		for i, item := range syms.Items {
			assign(env, string(item.(blisp.Symbol)), values[i])
		}
		return blisp.NewActive()
	}
}

// Def implements `def`, binding at the root environment.
func Def(ev blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
	return defLike("def", func(e blisp.Environment, sym string, val blisp.Object) {
		blisp.BindGlobal(e, sym, val)
	})(ev, env, args)
}

// Assign implements `=`, binding in the current environment.
func Assign(ev blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
	return defLike("=", func(e blisp.Environment, sym string, val blisp.Object) {
		e.BindLocal(sym, val)
	})(ev, env, args)
}

// Lambda implements `\`, constructing a user Function.
func Lambda(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity(`\`, args, 2); err != nil {
		return err
	}
	params, err := builtins.GetList(`\`, args, 0)
	if err != nil {
		return err
	}
	body, err := builtins.GetList(`\`, args, 1)
	if err != nil {
		return err
	}
	for _, item := range params.Items {
		if _, ok := item.(blisp.Symbol); !ok {
			return blisp.MakeErr("Cannot define non-symbol. Received %s, Expected Symbol.", blisp.TypeNameOf(item))
		}
	}
	return blisp.NewClosure(params.Clone().(*blisp.List), body.Clone().(*blisp.List), blisp.NewChild(nil))
}

// Register binds def, =, and \ in env.
func Register(env blisp.Environment) {
	env.BindLocal("def", blisp.NewBuiltin("def", Def))
	env.BindLocal("=", blisp.NewBuiltin("=", Assign))
	env.BindLocal(`\`, blisp.NewBuiltin(`\`, Lambda))
}
