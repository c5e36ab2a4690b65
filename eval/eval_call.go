/*
File    : lisp-mix/eval/eval_call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// prepareCall evaluates argExprs in the caller's environment, binds them
// positionally to lambda's parameters in a fresh environment extending
// the lambda's captured environment, and returns the lambda's body as
// the next expression to evaluate in that new environment. The caller
// loops back into Eval with these instead of recursing, which is what
// makes tail calls constant-stack.
func (ev *Evaluator) prepareCall(lambda *value.Lambda, argExprs []value.Value, callerEnv *environment.Environment) (value.Value, *environment.Environment, error) {
	if len(argExprs) != len(lambda.Params) {
		return nil, nil, fmt.Errorf("eval error: wrong number of arguments, got=%d, want=%d", len(argExprs), len(lambda.Params))
	}

	args := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := ev.Eval(a, callerEnv)
		if err != nil {
			return nil, nil, err
		}
		args[i] = v
	}

	callEnv := environment.Extend(lambda.Env)
	for i, p := range lambda.Params {
		callEnv.Set(p, args[i])
	}

	return lambda.Body, callEnv, nil
}

// evalIfTail evaluates an if's condition and returns whichever branch is
// selected as the next (expr, env) pair for the caller's trampoline loop
// to continue with, rather than recursing into it directly.
func (ev *Evaluator) evalIfTail(args []value.Value, env *environment.Environment) (value.Value, *environment.Environment, error) {
	if len(args) != 3 {
		return nil, nil, fmt.Errorf("eval error: if requires 3 arguments (condition, then, else), got=%d", len(args))
	}

	cond, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, nil, err
	}

	b, ok := cond.(value.Bool)
	if !ok {
		return nil, nil, fmt.Errorf("eval error: if condition must be a bool")
	}

	if b.Value {
		return args[1], env, nil
	}
	return args[2], env, nil
}
