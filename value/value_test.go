/*
File    : lisp-mix/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_Scalars(t *testing.T) {
	assert.Equal(t, "", Void{}.Display())
	assert.Equal(t, "42", Integer{Value: 42}.Display())
	assert.Equal(t, "-7", Integer{Value: -7}.Display())
	assert.Equal(t, "3.14", Float{Value: 3.14}.Display())
	assert.Equal(t, "true", Bool{Value: true}.Display())
	assert.Equal(t, "false", Bool{Value: false}.Display())
	assert.Equal(t, "Raleigh Durham", String{Value: "Raleigh Durham"}.Display())
	assert.Equal(t, "x", Symbol{Name: "x"}.Display())
	assert.Equal(t, "if", Keyword{Name: "if"}.Display())
	assert.Equal(t, "+", BinaryOp{Op: "+"}.Display())
}

func TestDisplay_Lists(t *testing.T) {
	l := &List{Elements: []Value{Integer{Value: 1}, Integer{Value: 2}, Integer{Value: 3}}}
	assert.Equal(t, "(1 2 3)", l.Display())

	ld := &ListData{Elements: []Value{Integer{Value: 0}, Integer{Value: 3}, Integer{Value: 6}}}
	assert.Equal(t, "(0 3 6)", ld.Display())

	empty := &ListData{}
	assert.Equal(t, "()", empty.Display())
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindVoid, Void{}.Kind())
	assert.Equal(t, KindInteger, Integer{}.Kind())
	assert.Equal(t, KindFloat, Float{}.Kind())
	assert.Equal(t, KindBool, Bool{}.Kind())
	assert.Equal(t, KindString, String{}.Kind())
	assert.Equal(t, KindSymbol, Symbol{}.Kind())
	assert.Equal(t, KindKeyword, Keyword{}.Kind())
	assert.Equal(t, KindBinaryOp, BinaryOp{}.Kind())
	assert.Equal(t, KindList, (&List{}).Kind())
	assert.Equal(t, KindListData, (&ListData{}).Kind())
	assert.Equal(t, KindLambda, (&Lambda{}).Kind())
}

func TestLambdaDisplay(t *testing.T) {
	l := &Lambda{
		Params: []string{"n"},
		Body:   &List{Elements: []Value{Symbol{Name: "*"}, Symbol{Name: "n"}, Symbol{Name: "n"}}},
	}
	assert.Equal(t, "Lambda(n) (* n n)", l.Display())
}
