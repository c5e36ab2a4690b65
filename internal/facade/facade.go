/*
File    : lisp-mix/internal/facade/facade.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package facade collapses a (value.Value, error) result pair down to
// the single display string the CLI and the test suite both compare
// against — the same shape the scenarios in the evaluator's design
// notes are written against.
package facade

import (
	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/eval"
	"github.com/akashmaji946/lisp-mix/value"
)

// Run parses and evaluates source against a fresh environment and
// renders the result as a single string: a Void value renders as the
// empty string, an error renders as its message, everything else
// renders via its own Display.
func Run(source string) string {
	env := environment.New()
	return RunIn(source, env)
}

// RunIn evaluates source against an existing environment, letting a
// caller persist bindings across successive calls.
func RunIn(source string, env *environment.Environment) string {
	v, err := eval.Evaluate(source, env)
	if err != nil {
		return err.Error()
	}
	return Display(v)
}

// Display renders a single already-evaluated Value the way Run would
// have, for callers that already hold a Value (the REPL prints its
// evaluator's direct Eval result through this instead of re-running
// Evaluate).
func Display(v value.Value) string {
	if _, ok := v.(value.Void); ok {
		return ""
	}
	return v.Display()
}
