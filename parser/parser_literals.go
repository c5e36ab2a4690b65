/*
File    : lisp-mix/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lisp-mix/value"
)

// parseInt converts an INT token's literal text into a value.Integer.
// The lexer only ever produces an INT token for text that already
// parsed successfully once, but we re-parse here rather than thread the
// parsed value through the token to keep Token a pure lexical artifact.
func parseInt(literal string) (value.Value, error) {
	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse error: invalid integer literal %q", literal)
	}
	return value.Integer{Value: n}, nil
}

// parseFloat converts a FLOAT token's literal text into a value.Float.
func parseFloat(literal string) (value.Value, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("parse error: invalid float literal %q", literal)
	}
	return value.Float{Value: f}, nil
}
