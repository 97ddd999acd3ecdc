//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package blisp_test

import (
	"testing"

	"t73f.de/r/blisp"
)

func TestListPrint(t *testing.T) {
	tests := []struct {
		name string
		list *blisp.List
		want string
	}{
		{"empty active", blisp.NewActive(), "()"},
		{"empty quoted", blisp.NewQuoted(), "{}"},
		{"active", blisp.NewActive(blisp.Symbol("+"), blisp.Number(1), blisp.Number(2)), "(+ 1 2)"},
		{"quoted", blisp.NewQuoted(blisp.Number(1), blisp.Number(2), blisp.Number(3)), "{1 2 3}"},
	}
	for _, tc := range tests {
		if got := tc.list.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestListIsEqual(t *testing.T) {
	a := blisp.NewQuoted(blisp.Number(1), blisp.Number(2), blisp.Number(3))
	b := blisp.NewQuoted(blisp.Number(1), blisp.Number(2), blisp.Number(3))
	if !a.IsEqual(b) {
		t.Error("equal-content lists should be equal")
	}
	c := blisp.NewQuoted(blisp.Number(1), blisp.Number(2))
	if a.IsEqual(c) {
		t.Error("different-length lists should not be equal")
	}
	active := blisp.NewActive(blisp.Number(1), blisp.Number(2), blisp.Number(3))
	if a.IsEqual(active) {
		t.Error("an active list and a quoted list with the same items should not be equal")
	}
}

func TestListClone(t *testing.T) {
	inner := blisp.NewQuoted(blisp.Number(1))
	outer := blisp.NewQuoted(inner, blisp.Number(2))
	clone := outer.Clone().(*blisp.List)
	if !outer.IsEqual(clone) {
		t.Error("clone should be equal to the original")
	}
	clone.Items[0].(*blisp.List).Items[0] = blisp.Number(99)
	if outer.Items[0].(*blisp.List).Items[0].(blisp.Number) != 1 {
		t.Error("mutating a clone must not affect the original's nested list")
	}
}

func TestJoin(t *testing.T) {
	a := blisp.NewQuoted(blisp.Number(1), blisp.Number(2))
	b := blisp.NewQuoted(blisp.Number(3))
	got := blisp.Join(a, b)
	want := blisp.NewQuoted(blisp.Number(1), blisp.Number(2), blisp.Number(3))
	if !got.IsEqual(want) {
		t.Errorf("join: got %v, want %v", got, want)
	}
}

func TestAsActive(t *testing.T) {
	q := blisp.NewQuoted(blisp.Symbol("+"), blisp.Number(1), blisp.Number(2))
	a := q.AsActive()
	if a.Quoted {
		t.Error("AsActive result should not be quoted")
	}
	if q.String() != "{+ 1 2}" {
		t.Error("original list must not be mutated by AsActive")
	}
}
