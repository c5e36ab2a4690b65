/*
File    : lisp-mix/value/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strings"

// List is unevaluated code: exactly what the parser produces. The
// evaluator dispatches on a List's head element to decide whether it is
// a binary operator application, a special form, a function call, or a
// computed application via the fallback path.
type List struct {
	Elements []Value
}

func (*List) Kind() Kind { return KindList }

func (l *List) Display() string {
	return displayElements(l.Elements)
}

// ListData is evaluated data: what list, range, cdr, map, and filter
// return. Unlike List, a ListData is self-evaluating — the evaluator
// returns it as-is rather than treating it as an application.
type ListData struct {
	Elements []Value
}

func (*ListData) Kind() Kind { return KindListData }

func (l *ListData) Display() string {
	return displayElements(l.Elements)
}

func displayElements(elems []Value) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, el := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(el.Display())
	}
	b.WriteByte(')')
	return b.String()
}
