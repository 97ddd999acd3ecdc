//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Package reader turns a bsyntax abstract syntax tree into blisp values,
// per the Reader component (§4.1). It never fails: a malformed number is
// not a parse error at this layer, it becomes an Error value carried
// inline, exactly as arithmetic or argument errors do.
package reader

import (
	"strconv"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/bsyntax"
)

// Read converts one syntax-tree node into a blisp value. A comment,
// regex-marker, or bare punctuation child is skipped by folding it out
// of the parent's item list before this is called on the parent; Read
// itself is only ever asked to convert nodes worth keeping.
func Read(node *bsyntax.Node) blisp.Object {
	switch node.Tag {
	case bsyntax.TagNumber:
		n, err := strconv.ParseInt(node.Contents, 10, 64)
		if err != nil {
			return blisp.MakeErr("Invalid Number")
		}
		return blisp.Number(n)
	case bsyntax.TagSymbol:
		return blisp.Symbol(node.Contents)
	case bsyntax.TagString:
		return blisp.MakeString(blisp.Unescape(node.Contents))
	case bsyntax.TagSExpr, bsyntax.TagRoot:
		return readSeq(node, false)
	case bsyntax.TagQExpr:
		return readSeq(node, true)
	default:
		// comment, punctuation, regex-marker: nothing sensible to
		// return, but Read must return some Object, so yield the
		// empty active list rather than risk a nil Object downstream.
		return blisp.NewActive()
	}
}

func readSeq(node *bsyntax.Node, quoted bool) *blisp.List {
	items := make([]blisp.Object, 0, len(node.Children))
	for _, child := range node.Children {
		if skip(child.Tag) {
			continue
		}
		items = append(items, Read(child))
	}
	if quoted {
		return blisp.NewQuoted(items...)
	}
	return blisp.NewActive(items...)
}

func skip(tag bsyntax.Tag) bool {
	switch tag {
	case bsyntax.TagComment, bsyntax.TagPunct, bsyntax.TagRegex:
		return true
	}
	return false
}

// ReadProgram parses source text and converts every top-level
// expression into a value, independently, in order — the reading the
// Loader needs (§4.6 `load`): each top-level form is evaluated on its
// own, so an Error in one does not prevent the next from running. A
// syntax error (unmatched delimiter, unterminated string) is reported
// through err; the Reader itself never fails once parsing succeeds.
func ReadProgram(source string) ([]blisp.Object, error) {
	root, err := bsyntax.Parse(source)
	if err != nil {
		return nil, err
	}
	values := make([]blisp.Object, 0, len(root.Children))
	for _, child := range root.Children {
		if skip(child.Tag) {
			continue
		}
		values = append(values, Read(child))
	}
	return values, nil
}

// ReadLine parses one line of input and converts it into a single value
// by treating the whole line as one Active-list of its top-level forms
// — the reading the interactive prompt needs (§6.2): entering
// `(add-mul 10) 20` evaluates as one application, not as two independent
// top-level results, matching the original source's treatment of a
// parsed program as a single S-Expression to reduce.
func ReadLine(source string) (blisp.Object, error) {
	root, err := bsyntax.Parse(source)
	if err != nil {
		return nil, err
	}
	return Read(root), nil
}
