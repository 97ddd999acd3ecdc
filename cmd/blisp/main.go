//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

// Command blisp is the interactive prompt and batch-file runner for the
// dialect, implementing the CLI surface of §6.2/§6.3.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"t73f.de/r/blisp"
	"t73f.de/r/blisp/builtins/loader"
	"t73f.de/r/blisp/eval"
	"t73f.de/r/blisp/reader"
)

const (
	banner1 = "blisp version 0.1.0"
	banner2 = "Press Ctrl+C to Exit"
	prompt  = "λ> "
)

func main() {
	trace := flag.Bool("trace", false, "print `;e` evaluation traces before each result")
	flag.Parse()

	ev := eval.New()
	env := eval.NewRootEnvironment()

	if flag.NArg() == 0 {
		runREPL(ev, env, *trace)
		return
	}
	runBatch(ev, env, flag.Args())
}

func runBatch(ev blisp.Evaluator, env blisp.Environment, files []string) {
	for _, path := range files {
		result := loader.LoadFile(ev, env, path, os.Stdout)
		if e, ok := result.(*blisp.Err); ok {
			fmt.Println(e.String())
		}
	}
}

func runREPL(ev blisp.Evaluator, env blisp.Environment, trace bool) {
	fmt.Println(banner1)
	fmt.Println(banner2)

	scanner := bufio.NewScanner(os.Stdin)
	var wg sync.WaitGroup
	wg.Add(1)
	go replLoop(scanner, ev, env, trace, &wg)
	wg.Wait()
}

func replLoop(scanner *bufio.Scanner, ev blisp.Evaluator, env blisp.Environment, trace bool, wg *sync.WaitGroup) {
	defer func() {
		if val := recover(); val != nil {
			fmt.Printf(";panic recovered: %v\n\n%s\n", val, debug.Stack())
			go replLoop(scanner, ev, env, trace, wg)
			return
		}
		wg.Done()
	}()

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		evalLine(ev, env, scanner.Text(), trace, os.Stdout)
	}
}

// evalLine reads the whole line as one value (§6.2: a line is one
// program, reduced as a single Active-list — see reader.ReadLine),
// evaluates it, and prints the one result.
func evalLine(ev blisp.Evaluator, env blisp.Environment, line string, trace bool, out io.Writer) {
	value, err := reader.ReadLine(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if trace {
		fmt.Fprintf(out, ";e %s\n", value)
	}
	result := ev.Eval(env, value)
	fmt.Fprintln(out, result)
}
