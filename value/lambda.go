/*
File    : lisp-mix/value/lambda.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strings"

// Lambda is a first-class function value: an ordered parameter list, a
// single body expression (normally a *List), and the environment it
// closes over. A recursive function places its own Lambda into the very
// Env it captures — the Env field's shared, interior-mutable nature (see
// package environment) is what lets that work without a true cycle in
// the value graph: the Lambda refers to its Env by a shared handle, and
// the Env refers back to the Lambda through the same handle, but neither
// owns the other exclusively.
type Lambda struct {
	Params []string
	Body   Value
	Env    Env
}

func (*Lambda) Kind() Kind { return KindLambda }

// Display renders a Lambda for debugging. Its exact form is not part of
// the language's observable contract — nothing in the evaluator inspects
// it.
func (l *Lambda) Display() string {
	var b strings.Builder
	b.WriteString("Lambda(")
	b.WriteString(strings.Join(l.Params, " "))
	b.WriteString(") ")
	if l.Body != nil {
		b.WriteString(l.Body.Display())
	}
	return b.String()
}
