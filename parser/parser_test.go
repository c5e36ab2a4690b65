/*
File    : lisp-mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lisp-mix/value"
)

func TestParse_SimpleApplication(t *testing.T) {
	tree, err := Parse("(+ 1 2)")
	require.NoError(t, err)

	require.Len(t, tree.Elements, 3)
	assert.Equal(t, value.BinaryOp{Op: "+"}, tree.Elements[0])
	assert.Equal(t, value.Integer{Value: 1}, tree.Elements[1])
	assert.Equal(t, value.Integer{Value: 2}, tree.Elements[2])
}

func TestParse_NestedLists(t *testing.T) {
	tree, err := Parse("(* pi (* r r))")
	require.NoError(t, err)

	require.Len(t, tree.Elements, 3)
	assert.Equal(t, value.BinaryOp{Op: "*"}, tree.Elements[0])
	assert.Equal(t, value.Symbol{Name: "pi"}, tree.Elements[1])

	inner, ok := tree.Elements[2].(*value.List)
	require.True(t, ok)
	assert.Equal(t, value.BinaryOp{Op: "*"}, inner.Elements[0])
	assert.Equal(t, value.Symbol{Name: "r"}, inner.Elements[1])
	assert.Equal(t, value.Symbol{Name: "r"}, inner.Elements[2])
}

func TestParse_KeywordClassification(t *testing.T) {
	tree, err := Parse("(if (null? l) 0 1)")
	require.NoError(t, err)

	assert.Equal(t, value.Keyword{Name: "if"}, tree.Elements[0])

	cond, ok := tree.Elements[1].(*value.List)
	require.True(t, ok)
	assert.Equal(t, value.Keyword{Name: "null?"}, cond.Elements[0])
	assert.Equal(t, value.Symbol{Name: "l"}, cond.Elements[1])
}

func TestParse_StringAndFloatLiterals(t *testing.T) {
	tree, err := Parse(`(list "Raleigh" 3.14)`)
	require.NoError(t, err)

	assert.Equal(t, value.Keyword{Name: "list"}, tree.Elements[0])
	assert.Equal(t, value.String{Value: "Raleigh"}, tree.Elements[1])
	assert.Equal(t, value.Float{Value: 3.14}, tree.Elements[2])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing opening paren", "+ 1 2)"},
		{"unclosed list", "(+ 1 2"},
		{"trailing input after top-level list", "(+ 1 2) (+ 3 4)"},
		{"unexpected close paren", "())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	const src = "(begin (define x 10) (+ x 1))"
	first, err := Parse(src)
	require.NoError(t, err)
	second, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
