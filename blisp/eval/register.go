//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package eval

import (
	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins/arith"
	"t73f.de/r/blisp/builtins/bind"
	"t73f.de/r/blisp/builtins/compare"
	"t73f.de/r/blisp/builtins/cond"
	"t73f.de/r/blisp/builtins/equiv"
	"t73f.de/r/blisp/builtins/ioprim"
	list "t73f.de/r/blisp/builtins/list"
	"t73f.de/r/blisp/builtins/loader"
)

// NewRootEnvironment builds a root environment with every built-in
// operator of §4.6 registered under its name(s), ready to evaluate
// top-level forms against.
func NewRootEnvironment() blisp.Environment {
	root := blisp.NewRoot()
	list.Register(root)
	arith.Register(root)
	compare.Register(root)
	equiv.Register(root)
	bind.Register(root)
	cond.Register(root)
	ioprim.Register(root)
	loader.Register(root)
	return root
}
