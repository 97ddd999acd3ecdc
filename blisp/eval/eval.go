//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package eval implements the Evaluator (§4.5) and the application
// protocol (§4.4). It is the only package that implements
// blisp.Evaluator; the builtins packages receive it through that
// interface so a built-in like `eval` or `if` can recurse back into
// evaluation without this package importing them.
package eval

import "t73f.de/r/blisp"

// Evaluator reduces values under an environment and applies Functions,
// satisfying blisp.Evaluator.
type Evaluator struct{}

// New returns an Evaluator. It carries no state: the root environment and
// every binding live entirely in blisp.Environment values.
func New() *Evaluator { return &Evaluator{} }

// Eval implements blisp.Evaluator.Eval (§4.5).
func (ev *Evaluator) Eval(env blisp.Environment, obj blisp.Object) blisp.Object {
	switch v := obj.(type) {
	case blisp.Symbol:
		return blisp.Lookup(env, string(v))
	case *blisp.List:
		if v.Quoted {
			return v
		}
		return ev.evalActive(env, v)
	default:
		return obj
	}
}

// evalActive reduces an Active-list per §4.5.1.
func (ev *Evaluator) evalActive(env blisp.Environment, list *blisp.List) blisp.Object {
	items := make([]blisp.Object, len(list.Items))
	for i, child := range list.Items {
		v := ev.Eval(env, child)
		if blisp.IsErr(v) {
			return v
		}
		items[i] = v
	}
	if len(items) == 0 {
		return blisp.NewActive()
	}
	if len(items) == 1 {
		return items[0]
	}
	head := items[0]
	fn, ok := head.(*blisp.Func)
	if !ok {
		return blisp.MakeErr("S-Expression starts with incorrect type. Got %s, Expected Function.", blisp.TypeNameOf(head))
	}
	return ev.Apply(env, fn, blisp.NewActive(items[1:]...))
}

// Apply implements blisp.Evaluator.Apply, the application protocol of
// §4.4.
func (ev *Evaluator) Apply(env blisp.Environment, fn *blisp.Func, args *blisp.List) blisp.Object {
	if fn.IsBuiltin() {
		return fn.Builtin(ev, env, args.Items)
	}
	return ev.applyClosure(env, fn, args.Items)
}

func (ev *Evaluator) applyClosure(env blisp.Environment, fn *blisp.Func, given []blisp.Object) blisp.Object {
	total := len(fn.Params.Items)
	totalGiven := len(given)

	params := append([]blisp.Object(nil), fn.Params.Items...)
	captured := fn.Env

	for len(given) > 0 {
		if len(params) == 0 {
			return blisp.MakeErr("Function passed too many arguments. Got %d, Expected %d.", totalGiven, total)
		}
		sym := params[0].(blisp.Symbol)
		params = params[1:]
		if sym.IsAmpersand() {
			if len(params) != 1 {
				return blisp.MakeErr("Function format invalid. Symbol '&' not followed by 1 or more symbols")
			}
			variadic := params[0].(blisp.Symbol)
			params = nil
			captured.BindLocal(string(variadic), blisp.NewQuoted(given...))
			given = nil
			break
		}
		captured.BindLocal(string(sym), given[0])
		given = given[1:]
	}

	if len(params) > 0 {
		if params[0].(blisp.Symbol).IsAmpersand() {
			if len(params) != 2 {
				return blisp.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			variadic := params[1].(blisp.Symbol)
			captured.BindLocal(string(variadic), blisp.NewQuoted())
			params = nil
		}
	}

	if len(params) == 0 {
		captured.SetParent(env)
		body := fn.Body.AsActive()
		return ev.Eval(captured, body)
	}

	partial := &blisp.Func{Params: blisp.NewQuoted(params...), Body: fn.Body, Env: captured}
	return partial.Clone()
}
