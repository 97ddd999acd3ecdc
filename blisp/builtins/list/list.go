//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package list implements the Q-Expression primitives: list, head,
// tail, join, eval. Operations work on the slice-backed List directly
// rather than a cons chain, since this dialect has no pair type.
package list

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

// List returns a Quoted-list containing the arguments unchanged.
func List(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	return blisp.NewQuoted(args...)
}

// Head returns a List containing only L's first element.
func Head(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("head", args, 1); err != nil {
		return err
	}
	l, err := builtins.GetList("head", args, 0)
	if err != nil {
		return err
	}
	if err := builtins.RequireNonEmpty("head", l, 0); err != nil {
		return err
	}
	return blisp.NewQuoted(l.Items[0])
}

// Tail returns L with its first element removed.
func Tail(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("tail", args, 1); err != nil {
		return err
	}
	l, err := builtins.GetList("tail", args, 0)
	if err != nil {
		return err
	}
	if err := builtins.RequireNonEmpty("tail", l, 0); err != nil {
		return err
	}
	return blisp.NewQuoted(l.Items[1:]...)
}

// Join concatenates its List arguments into one List.
func Join(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckMinArity("join", args, 1); err != nil {
		return err
	}
	lists := make([]*blisp.List, len(args))
	for i := range args {
		l, err := builtins.GetList("join", args, i)
		if err != nil {
			return err
		}
		lists[i] = l
	}
	result := blisp.Join(lists...)
	result.Quoted = true
	return result
}

// Eval reinterprets L as an Active-list and reduces it in the current
// environment.
func Eval(ev blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("eval", args, 1); err != nil {
		return err
	}
	l, err := builtins.GetList("eval", args, 0)
	if err != nil {
		return err
	}
	return ev.Eval(env, l.AsActive())
}

// Register binds the list primitives under their names in env.
func Register(env blisp.Environment) {
	env.BindLocal("list", blisp.NewBuiltin("list", List))
	env.BindLocal("head", blisp.NewBuiltin("head", Head))
	env.BindLocal("tail", blisp.NewBuiltin("tail", Tail))
	env.BindLocal("join", blisp.NewBuiltin("join", Join))
	env.BindLocal("eval", blisp.NewBuiltin("eval", Eval))
}
