/*
File    : lisp-mix/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the expression tree the parser produces against an
// environment and produces a single result Value. Its core loop is a
// trampoline rather than a recursive descent: an if-branch continuation
// and a tail-position function application both rewrite the loop's
// current expression and environment in place instead of recursing, so
// a deeply tail-recursive program (see the sum-n scenario in
// evaluator_test.go) runs in
// constant Go stack depth.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/parser"
	"github.com/akashmaji946/lisp-mix/value"
)

// Evaluator holds the mutable pieces of interpreter state that live
// outside any single Environment: where print writes its output.
// Everything else (variable bindings, closures) lives in the
// Environment threaded through Eval.
type Evaluator struct {
	Writer io.Writer
}

// NewEvaluator returns an Evaluator that writes print output to stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{Writer: os.Stdout}
}

// SetWriter redirects print output, primarily for tests that want to
// capture it.
func (ev *Evaluator) SetWriter(w io.Writer) {
	ev.Writer = w
}

// Evaluate parses source and evaluates the resulting expression tree
// against env using a fresh Evaluator that writes to stdout. It is the
// package's single-shot convenience entry point; a REPL or multi-form
// driver should construct its own *Evaluator and *environment.Environment
// and call Eval directly so state persists across calls.
func Evaluate(source string, env *environment.Environment) (value.Value, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return NewEvaluator().Eval(tree, env)
}

// Eval is the trampoline. currentExpr/currentEnv are rebound in place
// (rather than recursed into) on two paths: the taken branch of an if,
// and a tail-position call to a Lambda — both inlined at the list head
// and resolved through a Symbol. Every other path returns directly or
// recurses structurally (argument evaluation, binary operands), which
// is safe because those are not tail positions.
func (ev *Evaluator) Eval(expr value.Value, env *environment.Environment) (value.Value, error) {
	currentExpr := expr
	currentEnv := env

	for {
		switch e := currentExpr.(type) {
		case value.Void, value.Integer, value.Float, value.Bool, value.String:
			return currentExpr, nil

		case *value.ListData:
			return e, nil

		case *value.Lambda:
			return e, nil

		case value.Symbol:
			v, err := ev.evalSymbol(e, currentEnv)
			if err != nil {
				return nil, err
			}
			return v, nil

		case value.Keyword:
			return nil, fmt.Errorf("eval error: keyword %q used outside of a list head", e.Name)

		case value.BinaryOp:
			return nil, fmt.Errorf("eval error: operator %q used outside of a list head", e.Op)

		case *value.List:
			if len(e.Elements) == 0 {
				return &value.List{}, nil
			}

			head := e.Elements[0]

			switch h := head.(type) {
			case value.BinaryOp:
				return ev.evalBinaryOp(h, e.Elements[1:], currentEnv)

			case value.Keyword:
				if h.Name == "if" {
					nextExpr, nextEnv, err := ev.evalIfTail(e.Elements[1:], currentEnv)
					if err != nil {
						return nil, err
					}
					currentExpr, currentEnv = nextExpr, nextEnv
					continue
				}
				v, err := ev.evalKeyword(h, e.Elements[1:], currentEnv)
				if err != nil {
					return nil, err
				}
				return v, nil

			case *value.Lambda:
				nextExpr, nextEnv, err := ev.prepareCall(h, e.Elements[1:], currentEnv)
				if err != nil {
					return nil, err
				}
				currentExpr, currentEnv = nextExpr, nextEnv
				continue

			case value.Symbol:
				resolved, ok := currentEnv.Get(h.Name)
				if !ok {
					return nil, fmt.Errorf("eval error: unbound function: %s", h.Name)
				}
				lambda, ok := resolved.(*value.Lambda)
				if !ok {
					return nil, fmt.Errorf("eval error: %s is not a function", h.Name)
				}
				nextExpr, nextEnv, err := ev.prepareCall(lambda, e.Elements[1:], currentEnv)
				if err != nil {
					return nil, err
				}
				currentExpr, currentEnv = nextExpr, nextEnv
				continue

			default:
				return ev.evalFallback(e, currentEnv)
			}

		default:
			return nil, fmt.Errorf("eval error: unhandled value kind %T", currentExpr)
		}
	}
}

// evalFallback handles a List whose head, after evaluation, turns out to
// be something other than a recognized dispatch target: every element
// is evaluated in order, Void results are dropped, and if the evaluated
// head is a Lambda the result is re-applied to the remaining evaluated
// arguments; otherwise the evaluated elements are returned wrapped back
// up as a List.
func (ev *Evaluator) evalFallback(list *value.List, env *environment.Environment) (value.Value, error) {
	evaluated := make([]value.Value, 0, len(list.Elements))
	for _, el := range list.Elements {
		v, err := ev.Eval(el, env)
		if err != nil {
			return nil, err
		}
		if _, isVoid := v.(value.Void); isVoid {
			continue
		}
		evaluated = append(evaluated, v)
	}

	if len(evaluated) == 0 {
		return &value.List{}, nil
	}

	if lambda, ok := evaluated[0].(*value.Lambda); ok {
		nextExpr, nextEnv, err := ev.prepareCall(lambda, wrapAsExprs(evaluated[1:]), env)
		if err != nil {
			return nil, err
		}
		return ev.Eval(nextExpr, nextEnv)
	}

	return &value.List{Elements: evaluated}, nil
}

// wrapAsExprs treats already-evaluated Values as expressions so they can
// be threaded back through prepareCall's argument-evaluation step. Since
// Eval on a self-evaluating Value (Integer, Bool, a Lambda, a ListData,
// ...) just returns it unchanged, re-evaluating here is a no-op for
// every Kind that can reach this path.
func wrapAsExprs(vals []value.Value) []value.Value {
	return vals
}
