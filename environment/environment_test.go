/*
File    : lisp-mix/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lisp-mix/value"
)

func TestGetSet_Local(t *testing.T) {
	env := New()
	env.Set("x", value.Integer{Value: 10})

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Integer{Value: 10}, v)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestGet_WalksParentChain(t *testing.T) {
	root := New()
	root.Set("x", value.Integer{Value: 1})

	child := Extend(root)
	child.Set("y", value.Integer{Value: 2})

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Integer{Value: 1}, v)

	v, ok = child.Get("y")
	require.True(t, ok)
	assert.Equal(t, value.Integer{Value: 2}, v)

	_, ok = root.Get("y")
	assert.False(t, ok, "parent must not see child bindings")
}

func TestSet_ShadowsWithoutMutatingParent(t *testing.T) {
	root := New()
	root.Set("x", value.Integer{Value: 10})

	child := Extend(root)
	child.Set("x", value.Integer{Value: 20})

	v, _ := child.Get("x")
	assert.Equal(t, value.Integer{Value: 20}, v)

	v, _ = root.Get("x")
	assert.Equal(t, value.Integer{Value: 10}, v, "shadowing in child must not mutate parent binding")
}

func TestMerge_CopiesBindingsOnly(t *testing.T) {
	root := New()
	env := Extend(root)

	bindings := New()
	bindings.Set("a", value.Integer{Value: 10})
	bindings.Set("b", value.Integer{Value: 20})

	env.Merge(bindings)

	a, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Integer{Value: 10}, a)

	b, ok := env.Get("b")
	require.True(t, ok)
	assert.Equal(t, value.Integer{Value: 20}, b)

	_, ok = bindings.Get("c")
	assert.False(t, ok)
}

func TestRedefine_OverwritesInReceiverScope(t *testing.T) {
	env := New()
	env.Set("x", value.Integer{Value: 1})
	env.Set("x", value.Integer{Value: 2})

	v, _ := env.Get("x")
	assert.Equal(t, value.Integer{Value: 2}, v)
}
