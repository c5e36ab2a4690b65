/*
File    : lisp-mix/eval/eval_print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/value"
)

// evalPrint evaluates every argument in order, writes each one's
// Display() followed by a single space to the Evaluator's Writer, then
// a trailing newline once all arguments have been printed, and returns
// Void.
func (ev *Evaluator) evalPrint(args []value.Value, env *environment.Environment) (value.Value, error) {
	evaluated := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ev.Eval(a, env)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}
	for _, v := range evaluated {
		fmt.Fprintf(ev.Writer, "%s ", v.Display())
	}
	fmt.Fprintln(ev.Writer)
	return value.Void{}, nil
}
