//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package loader implements `load` (§4.6) — the one built-in that
// crosses the Go-error boundary, since it reads a file from disk and
// parses it with blisp/bsyntax before handing control back to the
// Evaluator.
package loader

import (
	"fmt"
	"io"
	"os"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
	"t73f.de/r/blisp/reader"
)

// LoadFile reads path, parses every top-level form, evaluates each under
// env in order, and prints any Error a form yields to out. It returns an
// empty Active-list on success or the load-failure Error on a parse or
// read failure.
func LoadFile(ev blisp.Evaluator, env blisp.Environment, path string, out io.Writer) blisp.Object {
	data, err := os.ReadFile(path)
	if err != nil {
		return blisp.MakeErr("Could not load Library %s", err.Error())
	}
	values, err := reader.ReadProgram(string(data))
	if err != nil {
		return blisp.MakeErr("Could not load Library %s", err.Error())
	}
	for _, v := range values {
		result := ev.Eval(env, v)
		if e, ok := result.(*blisp.Err); ok {
			fmt.Fprintln(out, e.String())
		}
	}
	return blisp.NewActive()
}

// Load implements `load S`, the builtin form.
func Load(out io.Writer) blisp.BuiltinFn {
	return func(ev blisp.Evaluator, env blisp.Environment, args []blisp.Object) blisp.Object {
		if err := builtins.CheckArity("load", args, 1); err != nil {
			return err
		}
		s, err := builtins.GetString("load", args, 0)
		if err != nil {
			return err
		}
		return LoadFile(ev, env, s.Value(), out)
	}
}

// Register binds `load` in env, printing evaluation errors to os.Stdout.
func Register(env blisp.Environment) {
	env.BindLocal("load", blisp.NewBuiltin("load", Load(os.Stdout)))
}
