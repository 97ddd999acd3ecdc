//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package arith_test

import (
	"testing"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins/arith"
)

func nums(ns ...int64) []blisp.Object {
	out := make([]blisp.Object, len(ns))
	for i, n := range ns {
		out[i] = blisp.Number(n)
	}
	return out
}

func TestAddFoldsLeft(t *testing.T) {
	got := arith.Add(nil, nil, nums(1, 2, 3))
	if !got.IsEqual(blisp.Number(6)) {
		t.Errorf("got %v, want 6", got)
	}
}

func TestSubUnaryNegates(t *testing.T) {
	got := arith.Sub(nil, nil, nums(5))
	if !got.IsEqual(blisp.Number(-5)) {
		t.Errorf("got %v, want -5", got)
	}
}

func TestSubBinary(t *testing.T) {
	got := arith.Sub(nil, nil, nums(10, 4))
	if !got.IsEqual(blisp.Number(6)) {
		t.Errorf("got %v, want 6", got)
	}
}

func TestDivByZero(t *testing.T) {
	got := arith.Div(nil, nil, nums(1, 0))
	e, ok := got.(*blisp.Err)
	if !ok || e.Msg != "Division By Zero" {
		t.Errorf("got %v", got)
	}
}

func TestModByZero(t *testing.T) {
	got := arith.Mod(nil, nil, nums(1, 0))
	e, ok := got.(*blisp.Err)
	if !ok || e.Msg != "Division By Zero" {
		t.Errorf("got %v", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := arith.Min(nil, nil, nums(3, 1, 2)); !got.IsEqual(blisp.Number(1)) {
		t.Errorf("min: got %v", got)
	}
	if got := arith.Max(nil, nil, nums(3, 1, 2)); !got.IsEqual(blisp.Number(3)) {
		t.Errorf("max: got %v", got)
	}
}

func TestAddTypeError(t *testing.T) {
	got := arith.Add(nil, nil, []blisp.Object{blisp.Number(1), blisp.MakeString("x")})
	e, ok := got.(*blisp.Err)
	want := "Function '+' passed incorrect type for argument 1. Got String, Expected Number."
	if !ok || e.Msg != want {
		t.Errorf("got %v, want %q", got, want)
	}
}
