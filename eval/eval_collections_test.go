/*
File    : lisp-mix/eval/eval_collections_test.go
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

func TestList_EvaluatesEachElement(t *testing.T) {
	v, err := Evaluate("(list (+ 1 1) (+ 2 2) 5)", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "(2 4 5)", v.Display())
}

func TestRange_DefaultStride(t *testing.T) {
	v, err := Evaluate("(range 0 5)", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "(0 1 2 3 4)", v.Display())
}

func TestRange_ExplicitStride(t *testing.T) {
	v, err := Evaluate("(range 0 10 3)", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "(0 3 6 9)", v.Display())
}

func TestRange_EmptyWhenStartNotBeforeEnd(t *testing.T) {
	v, err := Evaluate("(range 5 5)", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "()", v.Display())
}

func TestCarCdr_RoundTrip(t *testing.T) {
	env := environment.New()
	_, err := Evaluate("(define l (range 0 5))", env)
	require.NoError(t, err)

	head, err := Evaluate("(car l)", env)
	require.NoError(t, err)
	assert.Equal(t, "0", head.Display())

	tail, err := Evaluate("(cdr l)", env)
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3 4)", tail.Display())
}

func TestCar_EmptyListPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Evaluate("(car (range 0 0))", environment.New())
	})
}

func TestLength_AcceptsListDataAndList(t *testing.T) {
	v, err := Evaluate("(length (range 0 7))", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "7", v.Display())

	v, err = Evaluate("(length ())", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "0", v.Display())
}

func TestIsNull(t *testing.T) {
	v, err := Evaluate("(null? (range 0 0))", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "true", v.Display())

	v, err = Evaluate("(null? (range 0 1))", environment.New())
	require.NoError(t, err)
	assert.Equal(t, "false", v.Display())
}
