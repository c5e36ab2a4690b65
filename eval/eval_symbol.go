/*
File    : lisp-mix/eval/eval_symbol.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// evalSymbol resolves a Symbol as a variable reference against env. The
// three literal names #t, #f, and #nil are recognized before any
// environment lookup is attempted, so a program can never shadow them
// by defining a variable with one of those names. This path is used
// only for a Symbol in argument/value position; a Symbol at a list's
// head position is resolved directly against env by the trampoline in
// evaluator.go instead, so that an unresolved function name reports
// "unbound function" rather than this function's "unbound symbol".
func (ev *Evaluator) evalSymbol(sym value.Symbol, env *environment.Environment) (value.Value, error) {
	switch sym.Name {
	case "#t":
		return value.Bool{Value: true}, nil
	case "#f":
		return value.Bool{Value: false}, nil
	case "#nil":
		return value.Void{}, nil
	}

	v, ok := env.Get(sym.Name)
	if !ok {
		return nil, fmt.Errorf("eval error: unbound symbol: %s", sym.Name)
	}
	return v, nil
}

// evalKeyword dispatches every reserved word other than if, which the
// trampoline in Eval handles inline so its taken branch can be a tail
// position.
func (ev *Evaluator) evalKeyword(kw value.Keyword, args []value.Value, env *environment.Environment) (value.Value, error) {
	switch kw.Name {
	case "define":
		return ev.evalDefine(args, env)
	case "lambda":
		return ev.evalLambda(args, env)
	case "begin":
		return ev.evalBegin(args, env)
	case "let":
		return ev.evalLet(args, env)
	case "list":
		return ev.evalList(args, env)
	case "print":
		return ev.evalPrint(args, env)
	case "range":
		return ev.evalRange(args, env)
	case "car":
		return ev.evalCar(args, env)
	case "cdr":
		return ev.evalCdr(args, env)
	case "length":
		return ev.evalLength(args, env)
	case "null?":
		return ev.evalIsNull(args, env)
	case "map":
		return ev.evalMap(args, env)
	case "filter":
		return ev.evalFilter(args, env)
	case "reduce":
		return ev.evalReduce(args, env)
	default:
		return nil, fmt.Errorf("eval error: unknown keyword %q", kw.Name)
	}
}
