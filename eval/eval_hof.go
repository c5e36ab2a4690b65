/*
File    : lisp-mix/eval/eval_hof.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// map, filter, and reduce all share a quirk inherited from the language
// they model: a list element is evaluated once to produce the ListData
// itself, and then evaluated AGAIN inside the loop body below before
// being passed to the lambda. An element of a ListData is a value Eval
// has already produced (a scalar, a ListData, a Lambda, ...), and Eval
// returns such a value unchanged, so the second Eval is a no-op in
// practice; the loops keep it so each element goes through the same
// steps as in the language being modeled.

// evalMap requires its lambda argument to take exactly one parameter.
func (ev *Evaluator) evalMap(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: map requires 2 arguments (function, list), got=%d", len(args))
	}
	lambda, err := ev.evalLambdaArg(args[0], env)
	if err != nil {
		return nil, err
	}
	if len(lambda.Params) != 1 {
		return nil, fmt.Errorf("eval error: map's function must take exactly 1 argument, got=%d", len(lambda.Params))
	}
	ld, err := ev.evalListData(args[1], env)
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, len(ld.Elements))
	for i, el := range ld.Elements {
		reEvaled, err := ev.Eval(el, env)
		if err != nil {
			return nil, err
		}
		v, err := ev.applyLambda(lambda, []value.Value{reEvaled})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &value.ListData{Elements: out}, nil
}

// evalFilter requires its lambda argument to take exactly one parameter
// and return a Bool.
func (ev *Evaluator) evalFilter(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: filter requires 2 arguments (predicate, list), got=%d", len(args))
	}
	lambda, err := ev.evalLambdaArg(args[0], env)
	if err != nil {
		return nil, err
	}
	if len(lambda.Params) != 1 {
		return nil, fmt.Errorf("eval error: filter's predicate must take exactly 1 argument, got=%d", len(lambda.Params))
	}
	ld, err := ev.evalListData(args[1], env)
	if err != nil {
		return nil, err
	}

	var out []value.Value
	for _, el := range ld.Elements {
		reEvaled, err := ev.Eval(el, env)
		if err != nil {
			return nil, err
		}
		v, err := ev.applyLambda(lambda, []value.Value{reEvaled})
		if err != nil {
			return nil, err
		}
		b, ok := v.(value.Bool)
		if !ok {
			return nil, fmt.Errorf("eval error: filter's predicate must return a bool, got %s", v.Kind())
		}
		if b.Value {
			out = append(out, reEvaled)
		}
	}
	return &value.ListData{Elements: out}, nil
}

// evalReduce requires its lambda argument to take exactly two
// parameters and the list to have at least two elements; the evaluated
// first element seeds the accumulator instead of the caller supplying
// an explicit seed value.
func (ev *Evaluator) evalReduce(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: reduce requires 2 arguments (function, list), got=%d", len(args))
	}
	lambda, err := ev.evalLambdaArg(args[0], env)
	if err != nil {
		return nil, err
	}
	if len(lambda.Params) != 2 {
		return nil, fmt.Errorf("eval error: reduce's function must take exactly 2 arguments, got=%d", len(lambda.Params))
	}
	ld, err := ev.evalListData(args[1], env)
	if err != nil {
		return nil, err
	}
	if len(ld.Elements) < 2 {
		return nil, fmt.Errorf("eval error: reduce requires a list of at least 2 elements, got=%d", len(ld.Elements))
	}

	acc, err := ev.Eval(ld.Elements[0], env)
	if err != nil {
		return nil, err
	}
	for _, el := range ld.Elements[1:] {
		reEvaled, err := ev.Eval(el, env)
		if err != nil {
			return nil, err
		}
		acc, err = ev.applyLambda(lambda, []value.Value{acc, reEvaled})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (ev *Evaluator) evalLambdaArg(expr value.Value, env *environment.Environment) (*value.Lambda, error) {
	v, err := ev.Eval(expr, env)
	if err != nil {
		return nil, err
	}
	lambda, ok := v.(*value.Lambda)
	if !ok {
		return nil, fmt.Errorf("eval error: expected a function, got %s", v.Kind())
	}
	return lambda, nil
}

// applyLambda runs lambda to completion (not as a tail call — the
// result is needed immediately by the caller's loop) against already
// evaluated argument values.
func (ev *Evaluator) applyLambda(lambda *value.Lambda, args []value.Value) (value.Value, error) {
	if len(args) != len(lambda.Params) {
		return nil, fmt.Errorf("eval error: wrong number of arguments, got=%d, want=%d", len(args), len(lambda.Params))
	}
	callEnv := environment.Extend(lambda.Env)
	for i, p := range lambda.Params {
		callEnv.Set(p, args[i])
	}
	return ev.Eval(lambda.Body, callEnv)
}
