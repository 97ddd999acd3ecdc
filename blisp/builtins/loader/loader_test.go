//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins/loader"
	"t73f.de/r/blisp/eval"
)

func TestLoadFileEvaluatesEachFormAndPrintsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bl")
	src := "(def {x} 10)\n(bogus 1 2)\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := eval.New()
	env := eval.NewRootEnvironment()
	var buf bytes.Buffer
	result := loader.LoadFile(ev, env, path, &buf)
	if !result.IsEqual(blisp.NewActive()) {
		t.Errorf("load should return an empty active list, got %v", result)
	}
	if v, ok := env.Get("x"); !ok || !v.IsEqual(blisp.Number(10)) {
		t.Error("the first form should still have been evaluated")
	}
	if buf.Len() == 0 {
		t.Error("the unbound-symbol error from the second form should have been printed")
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	ev := eval.New()
	env := eval.NewRootEnvironment()
	var buf bytes.Buffer
	result := loader.LoadFile(ev, env, "/no/such/path.bl", &buf)
	e, ok := result.(*blisp.Err)
	if !ok {
		t.Fatalf("expected an Error, got %v", result)
	}
	if len(e.Msg) < len("Could not load Library ") || e.Msg[:len("Could not load Library ")] != "Could not load Library " {
		t.Errorf("got %q", e.Msg)
	}
}
