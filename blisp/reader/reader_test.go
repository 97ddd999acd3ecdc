//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package reader_test

import (
	"testing"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/reader"
)

func TestReadProgramAtoms(t *testing.T) {
	values, err := reader.ReadProgram(`1 foo "bar" ; a comment`)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 values (comment skipped), got %d: %v", len(values), values)
	}
	if !values[0].IsEqual(blisp.Number(1)) {
		t.Errorf("values[0] = %v, want 1", values[0])
	}
	if !values[1].IsEqual(blisp.Symbol("foo")) {
		t.Errorf("values[1] = %v, want foo", values[1])
	}
	if !values[2].IsEqual(blisp.MakeString("bar")) {
		t.Errorf(`values[2] = %v, want "bar"`, values[2])
	}
}

func TestReadProgramNested(t *testing.T) {
	values, err := reader.ReadProgram(`(+ 1 {2 3})`)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(values))
	}
	active, ok := values[0].(*blisp.List)
	if !ok || active.Quoted {
		t.Fatalf("expected an active list, got %v", values[0])
	}
	if len(active.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(active.Items))
	}
	quoted, ok := active.Items[2].(*blisp.List)
	if !ok || !quoted.Quoted {
		t.Fatalf("third item should be a quoted list, got %v", active.Items[2])
	}
}

func TestReadInvalidNumber(t *testing.T) {
	values, err := reader.ReadProgram(`99999999999999999999999999999`)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := values[0].(*blisp.Err)
	if !ok {
		t.Fatalf("expected an Error value for overflow, got %v", values[0])
	}
	if e.Msg == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestReadSyntaxError(t *testing.T) {
	if _, err := reader.ReadProgram(`(+ 1 2`); err == nil {
		t.Error("expected a syntax error for an unclosed expression")
	}
}

func TestReadLineCombinesTopLevelForms(t *testing.T) {
	value, err := reader.ReadLine(`(\ {x} {x}) 5`)
	if err != nil {
		t.Fatal(err)
	}
	active, ok := value.(*blisp.List)
	if !ok || active.Quoted || len(active.Items) != 2 {
		t.Fatalf("expected a 2-item active list, got %v", value)
	}
}
