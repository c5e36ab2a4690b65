/*
File    : lisp-mix/eval/eval_define.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// evalDefine implements both define shapes: (define name expr) binds
// the evaluated expr to name, and (define (name p1 ... pn) body) binds
// name to a Lambda built from the parameter list and body — a sugar
// for (define name (lambda (p1 ... pn) body)). In the function shape
// the Lambda is stored into env before evaluation completes, so a
// recursive call inside body that looks up name finds the Lambda it is
// itself part of; this works because env is a shared, mutable handle
// rather than a value copied into the Lambda.
func (ev *Evaluator) evalDefine(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: define requires 2 arguments, got=%d", len(args))
	}

	if sig, ok := args[0].(*value.List); ok {
		if len(sig.Elements) == 0 {
			return nil, fmt.Errorf("eval error: define function signature must name a function")
		}
		name, ok := sig.Elements[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("eval error: define function signature must start with a symbol")
		}
		params, err := symbolNames(sig.Elements[1:])
		if err != nil {
			return nil, err
		}
		lambda := &value.Lambda{Params: params, Body: args[1], Env: env}
		env.Set(name.Name, lambda)
		return value.Void{}, nil
	}

	name, ok := args[0].(value.Symbol)
	if !ok {
		return nil, fmt.Errorf("eval error: define's first argument must be a symbol or function signature")
	}

	v, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(name.Name, v)
	return value.Void{}, nil
}

// evalLambda builds an anonymous Lambda closing over env.
func (ev *Evaluator) evalLambda(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: lambda requires 2 arguments (params, body), got=%d", len(args))
	}
	paramList, ok := args[0].(*value.List)
	if !ok {
		return nil, fmt.Errorf("eval error: lambda's first argument must be a parameter list")
	}
	params, err := symbolNames(paramList.Elements)
	if err != nil {
		return nil, err
	}
	return &value.Lambda{Params: params, Body: args[1], Env: env}, nil
}

func symbolNames(exprs []value.Value) ([]string, error) {
	names := make([]string, len(exprs))
	for i, e := range exprs {
		s, ok := e.(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("eval error: expected a symbol in parameter list, got %s", e.Kind())
		}
		names[i] = s.Name
	}
	return names, nil
}

// evalBegin evaluates each argument in order inside a fresh environment
// extending env, discarding that environment on exit, and returns the
// last argument's value (Void for an empty body). Any binding a nested
// define creates is invisible once begin returns.
func (ev *Evaluator) evalBegin(args []value.Value, env *environment.Environment) (value.Value, error) {
	inner := environment.Extend(env)
	var result value.Value = value.Void{}
	for _, a := range args {
		v, err := ev.Eval(a, inner)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalLet implements (let ((name expr) ...) e1 ... em): every binding's
// expression is evaluated in the OUTER environment (env), not in the
// partially built let environment, so bindings never see each other —
// (let ((x 2) (y 3)) ...) always uses the outer x and y, not a
// left-to-right sequential one. The bindings are collected in a
// temporary environment and then merged into a fresh environment
// extending env, in which every body expression is evaluated in order;
// the last one's value is returned.
func (ev *Evaluator) evalLet(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("eval error: let requires a binding list and at least one body expression, got=%d", len(args))
	}

	bindingList, ok := args[0].(*value.List)
	if !ok {
		return nil, fmt.Errorf("eval error: let's first argument must be a binding list")
	}

	bindings := environment.New()
	for _, b := range bindingList.Elements {
		pair, ok := b.(*value.List)
		if !ok || len(pair.Elements) != 2 {
			return nil, fmt.Errorf("eval error: each let binding must be a (name expr) pair")
		}
		name, ok := pair.Elements[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("eval error: let binding name must be a symbol")
		}
		v, err := ev.Eval(pair.Elements[1], env)
		if err != nil {
			return nil, err
		}
		bindings.Set(name.Name, v)
	}

	letEnv := environment.Extend(env)
	letEnv.Merge(bindings)

	var result value.Value = value.Void{}
	for _, body := range args[1:] {
		v, err := ev.Eval(body, letEnv)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
