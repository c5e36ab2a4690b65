/*
File    : lisp-mix/eval/eval_binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"math"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// evalBinaryOp evaluates exactly two operand expressions and applies op
// to the results. The set of operand-type combinations each operator
// accepts is deliberately uneven (+ concatenates strings, the rest of
// the arithmetic operators do not; & and | only take bools; = is
// narrower than != and only accepts two ints or two strings) and is not
// derivable from a single generic rule, so it is enumerated per
// operator below.
func (ev *Evaluator) evalBinaryOp(op value.BinaryOp, args []value.Value, env *environment.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eval error: operator %q requires 2 operands, got=%d", op.Op, len(args))
	}

	lhs, err := ev.Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	rhs, err := ev.Eval(args[1], env)
	if err != nil {
		return nil, err
	}

	switch op.Op {
	case "+":
		return evalAdd(lhs, rhs)
	case "-":
		return evalArith(op.Op, lhs, rhs, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case "*":
		return evalArith(op.Op, lhs, rhs, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case "/":
		return evalArith(op.Op, lhs, rhs, func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b })
	case "%":
		return evalMod(lhs, rhs)
	case "<":
		return evalCompare(op.Op, lhs, rhs)
	case ">":
		return evalCompare(op.Op, lhs, rhs)
	case "=":
		return evalEquals(lhs, rhs)
	case "!=":
		return evalNotEquals(lhs, rhs)
	case "&":
		return evalBoolOp(op.Op, lhs, rhs, func(a, b bool) bool { return a && b })
	case "|":
		return evalBoolOp(op.Op, lhs, rhs, func(a, b bool) bool { return a || b })
	default:
		return nil, fmt.Errorf("eval error: unknown operator %q", op.Op)
	}
}

func invalidTypes(op string, lhs, rhs value.Value) error {
	return fmt.Errorf("eval error: invalid types for %s operator: %s %s", op, lhs.Kind(), rhs.Kind())
}

// evalAdd is the one arithmetic operator that also accepts two strings,
// concatenating them; every other arithmetic operator rejects strings
// outright.
func evalAdd(lhs, rhs value.Value) (value.Value, error) {
	switch l := lhs.(type) {
	case value.Integer:
		switch r := rhs.(type) {
		case value.Integer:
			return value.Integer{Value: l.Value + r.Value}, nil
		case value.Float:
			return value.Float{Value: float64(l.Value) + r.Value}, nil
		}
	case value.Float:
		switch r := rhs.(type) {
		case value.Integer:
			return value.Float{Value: l.Value + float64(r.Value)}, nil
		case value.Float:
			return value.Float{Value: l.Value + r.Value}, nil
		}
	case value.String:
		if r, ok := rhs.(value.String); ok {
			return value.String{Value: l.Value + r.Value}, nil
		}
	}
	return nil, invalidTypes("+", lhs, rhs)
}

// evalArith implements -, *, and / across the four numeric combinations
// (int/int, int/float, float/int, float/float), promoting a mixed pair
// to float. Strings are never accepted.
func evalArith(op string, lhs, rhs value.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (value.Value, error) {
	switch l := lhs.(type) {
	case value.Integer:
		switch r := rhs.(type) {
		case value.Integer:
			return value.Integer{Value: intOp(l.Value, r.Value)}, nil
		case value.Float:
			return value.Float{Value: floatOp(float64(l.Value), r.Value)}, nil
		}
	case value.Float:
		switch r := rhs.(type) {
		case value.Integer:
			return value.Float{Value: floatOp(l.Value, float64(r.Value))}, nil
		case value.Float:
			return value.Float{Value: floatOp(l.Value, r.Value)}, nil
		}
	}
	return nil, invalidTypes(op, lhs, rhs)
}

// evalMod implements % across the same four numeric combinations as
// evalArith, promoting a mixed int/float pair to float.
func evalMod(lhs, rhs value.Value) (value.Value, error) {
	return evalArith("%", lhs, rhs, func(a, b int64) int64 { return a % b }, math.Mod)
}

// evalCompare implements < and > across numeric combinations and, per
// the grammar's table, lexicographically across two strings.
func evalCompare(op string, lhs, rhs value.Value) (value.Value, error) {
	if l, ok := lhs.(value.String); ok {
		if r, ok := rhs.(value.String); ok {
			if op == "<" {
				return value.Bool{Value: l.Value < r.Value}, nil
			}
			return value.Bool{Value: l.Value > r.Value}, nil
		}
	}
	lf, lok := asFloat(lhs)
	rf, rok := asFloat(rhs)
	if !lok || !rok {
		return nil, invalidTypes(op, lhs, rhs)
	}
	if op == "<" {
		return value.Bool{Value: lf < rf}, nil
	}
	return value.Bool{Value: lf > rf}, nil
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n.Value), true
	case value.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// evalEquals restricts = to int/int or string/string comparisons, per
// the grammar's table; mixed-type or float comparisons are rejected
// rather than silently coerced.
func evalEquals(lhs, rhs value.Value) (value.Value, error) {
	if l, ok := lhs.(value.Integer); ok {
		if r, ok := rhs.(value.Integer); ok {
			return value.Bool{Value: l.Value == r.Value}, nil
		}
	}
	if l, ok := lhs.(value.String); ok {
		if r, ok := rhs.(value.String); ok {
			return value.Bool{Value: l.Value == r.Value}, nil
		}
	}
	return nil, invalidTypes("=", lhs, rhs)
}

// evalNotEquals is, unlike =, defined across every numeric combination
// (including mixed int/float and float/float) as well as string/string —
// it is not simply the negation of evalEquals, whose numeric side is
// deliberately narrower.
func evalNotEquals(lhs, rhs value.Value) (value.Value, error) {
	if l, ok := lhs.(value.String); ok {
		if r, ok := rhs.(value.String); ok {
			return value.Bool{Value: l.Value != r.Value}, nil
		}
	}
	lf, lok := asFloat(lhs)
	rf, rok := asFloat(rhs)
	if !lok || !rok {
		return nil, invalidTypes("!=", lhs, rhs)
	}
	return value.Bool{Value: lf != rf}, nil
}

// evalBoolOp implements & and |, both restricted to bool/bool operands.
func evalBoolOp(op string, lhs, rhs value.Value, combine func(a, b bool) bool) (value.Value, error) {
	l, lok := lhs.(value.Bool)
	r, rok := rhs.(value.Bool)
	if !lok || !rok {
		return nil, invalidTypes(op, lhs, rhs)
	}
	return value.Bool{Value: combine(l.Value, r.Value)}, nil
}
