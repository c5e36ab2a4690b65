/*
File    : lisp-mix/eval/eval_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// evalList evaluates every argument and collects the results into a
// ListData — evaluated data, not a further application.
func (ev *Evaluator) evalList(args []value.Value, env *environment.Environment) (value.Value, error) {
	elems := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &value.ListData{Elements: elems}, nil
}

// evalRange builds a ListData of consecutive integers starting at
// start, stopping strictly before end, advancing by stride (default 1
// when omitted). A non-positive stride with start < end never
// terminates the loop below and is left unguarded — the grammar does not define its behavior, and
// the original implementation this language is modeled on has the same
// property.
func (ev *Evaluator) evalRange(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("eval error: range requires 2 or 3 arguments, got=%d", len(args))
	}

	start, err := ev.evalInt(args[0], env)
	if err != nil {
		return nil, err
	}
	end, err := ev.evalInt(args[1], env)
	if err != nil {
		return nil, err
	}
	stride := int64(1)
	if len(args) == 3 {
		stride, err = ev.evalInt(args[2], env)
		if err != nil {
			return nil, err
		}
	}

	var elems []value.Value
	for i := start; i < end; i += stride {
		elems = append(elems, value.Integer{Value: i})
	}
	return &value.ListData{Elements: elems}, nil
}

func (ev *Evaluator) evalInt(expr value.Value, env *environment.Environment) (int64, error) {
	v, err := ev.Eval(expr, env)
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Integer)
	if !ok {
		return 0, fmt.Errorf("eval error: expected an integer, got %s", v.Kind())
	}
	return n.Value, nil
}

// evalCar evaluates its single argument to a ListData and returns its
// first element. An empty list's first element is accessed the same
// way any other out-of-range Go slice index would be — this panics
// rather than returning an error, mirroring the host-language fault the
// original evaluator lets through unhandled.
func (ev *Evaluator) evalCar(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("eval error: car requires 1 argument, got=%d", len(args))
	}
	ld, err := ev.evalListData(args[0], env)
	if err != nil {
		return nil, err
	}
	return ld.Elements[0], nil
}

// evalCdr evaluates its single argument to a ListData and returns a new
// ListData of every element but the first. Like evalCar, an empty list
// is not guarded: it panics rather than returning an error.
func (ev *Evaluator) evalCdr(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("eval error: cdr requires 1 argument, got=%d", len(args))
	}
	ld, err := ev.evalListData(args[0], env)
	if err != nil {
		return nil, err
	}
	rest := make([]value.Value, len(ld.Elements)-1)
	copy(rest, ld.Elements[1:])
	return &value.ListData{Elements: rest}, nil
}

// evalLength accepts either a List or a ListData and returns its
// element count, since both are ordered slices under the hood and a
// quoted-looking code list is just as countable as a data list.
func (ev *Evaluator) evalLength(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("eval error: length requires 1 argument, got=%d", len(args))
	}
	v, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	switch l := v.(type) {
	case *value.ListData:
		return value.Integer{Value: int64(len(l.Elements))}, nil
	case *value.List:
		return value.Integer{Value: int64(len(l.Elements))}, nil
	default:
		return nil, fmt.Errorf("eval error: length expects a list, got %s", v.Kind())
	}
}

// evalIsNull accepts either a List or a ListData and reports whether it
// has no elements.
func (ev *Evaluator) evalIsNull(args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("eval error: null? requires 1 argument, got=%d", len(args))
	}
	v, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	switch l := v.(type) {
	case *value.ListData:
		return value.Bool{Value: len(l.Elements) == 0}, nil
	case *value.List:
		return value.Bool{Value: len(l.Elements) == 0}, nil
	default:
		return nil, fmt.Errorf("eval error: null? expects a list, got %s", v.Kind())
	}
}

func (ev *Evaluator) evalListData(expr value.Value, env *environment.Environment) (*value.ListData, error) {
	v, err := ev.Eval(expr, env)
	if err != nil {
		return nil, err
	}
	ld, ok := v.(*value.ListData)
	if !ok {
		return nil, fmt.Errorf("eval error: expected a list, got %s", v.Kind())
	}
	return ld, nil
}
