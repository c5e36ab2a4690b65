/*
File    : lisp-mix/eval/eval_binary_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lisp-mix/environment"
)

func TestBinaryOp_Arithmetic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(+ 1 2)", "3"},
		{"(- 5 2)", "3"},
		{"(* 3 4)", "12"},
		{"(/ 10 3)", "3"},
		{"(% 10 3)", "1"},
		{"(% 21.0 20.0)", "1"},
		{"(% 10 3.0)", "1"},
		{"(% 10.0 3)", "1"},
		{"(+ 1 2.5)", "3.5"},
		{"(+ 2.5 1)", "3.5"},
		{"(* 2.0 2.0)", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			v, err := Evaluate(tt.source, environment.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Display())
		})
	}
}

func TestBinaryOp_Comparisons(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"(< 1 2)", "true"},
		{"(> 1 2)", "false"},
		{"(= 2 2)", "true"},
		{"(!= 2 3)", "true"},
		{`(= "a" "a")`, "true"},
		{`(!= "a" "b")`, "true"},
		{`(< "apple" "banana")`, "true"},
		{`(> "zebra" "apple")`, "true"},
		{"(!= 1 1.0)", "false"},
		{"(!= 1.5 2.5)", "true"},
		{"(& #t #f)", "false"},
		{"(| #t #f)", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			v, err := Evaluate(tt.source, environment.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Display())
		})
	}
}

func TestBinaryOp_StringConcatOnlyForPlus(t *testing.T) {
	v, err := Evaluate(`(+ "foo" "bar")`, environment.New())
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.Display())

	_, err = Evaluate(`(- "foo" "bar")`, environment.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid types")
}

func TestBinaryOp_EqualsRejectsMixedTypes(t *testing.T) {
	_, err := Evaluate(`(= 1 "1")`, environment.New())
	require.Error(t, err)

	_, err = Evaluate(`(= 1.0 1)`, environment.New())
	require.Error(t, err)
}

func TestBinaryOp_BoolOpsRejectNonBools(t *testing.T) {
	_, err := Evaluate("(& 1 2)", environment.New())
	require.Error(t, err)
}

func TestBinaryOp_DivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Evaluate("(/ 1 0)", environment.New())
	})
}
