//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package ioprim implements the I/O and meta builtins of §4.6: print and
// error.
package ioprim

import (
	"fmt"
	"io"
	"os"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins"
)

// Print writes each argument, space-separated, followed by a newline, to
// out, and returns an empty Active-list.
func Print(out io.Writer) blisp.BuiltinFn {
	return func(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			a.Print(out)
		}
		fmt.Fprintln(out)
		return blisp.NewActive()
	}
}

// Error implements `error S`, turning a String into an Error value.
func Error(_ blisp.Evaluator, _ blisp.Environment, args []blisp.Object) blisp.Object {
	if err := builtins.CheckArity("error", args, 1); err != nil {
		return err
	}
	s, err := builtins.GetString("error", args, 0)
	if err != nil {
		return err
	}
	return blisp.MakeErr("%s", s.Value())
}

// Register binds print and error in env, printing to os.Stdout.
func Register(env blisp.Environment) {
	env.BindLocal("print", blisp.NewBuiltin("print", Print(os.Stdout)))
	env.BindLocal("error", blisp.NewBuiltin("error", Error))
}
