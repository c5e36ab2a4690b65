/*
File    : lisp-mix/cmd/lispmix/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/eval"
	"github.com/akashmaji946/lisp-mix/internal/facade"
)

// executeFileWithRecovery evaluates source once against a fresh
// environment and prints the façade's rendering of the result (or
// error) to stdout, exiting non-zero on either an evaluation error or
// an unhandled panic (division/modulo by zero, car/cdr of an empty
// list).
func executeFileWithRecovery(source string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", rec)
			os.Exit(1)
		}
	}()

	v, err := eval.Evaluate(source, environment.New())
	if err != nil {
		os.Stdout.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if result := facade.Display(v); result != "" {
		os.Stdout.WriteString(result + "\n")
	}
}
