/*
File    : lisp-mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser assembles the lexer's flat token stream into a single
// nested *value.List — the expression tree the evaluator walks. Parsing
// never evaluates anything and never resolves a symbol; its only job is
// structural: match parens and classify each atom.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lisp-mix/lexer"
	"github.com/akashmaji946/lisp-mix/value"
)

// keywords is the fixed set of reserved words the grammar recognizes at
// list-head position. Any other symbol-shaped token is either a
// BinaryOp (see operators below) or an ordinary Symbol.
var keywords = map[string]bool{
	"define": true,
	"begin":  true,
	"let":    true,
	"list":   true,
	"print":  true,
	"lambda": true,
	"map":    true,
	"filter": true,
	"reduce": true,
	"range":  true,
	"car":    true,
	"cdr":    true,
	"length": true,
	"null?":  true,
	"if":     true,
}

// operators is the fixed set of binary operator symbols.
var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"<": true, ">": true, "=": true, "!=": true, "&": true, "|": true,
}

// parser holds the token stream and a read cursor over it.
type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes and parses source into the single top-level *value.List
// the grammar requires. Any remaining input after that list closes, or
// an unclosed list, or a stream that doesn't open with '(', is a parse
// error.
func Parse(source string) (*value.List, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}

	tok, ok := p.advance()
	if !ok || tok.Type != lexer.LPAREN {
		return nil, fmt.Errorf("parse error: expected `(`")
	}

	top, err := p.parseListBody()
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("parse error: unexpected trailing input")
	}

	return top, nil
}

// peek returns the next token without consuming it.
func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance consumes and returns the next token.
func (p *parser) advance() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseListBody consumes tokens following an already-consumed '(' until
// the matching ')', converting each element to a value.Value.
func (p *parser) parseListBody() (*value.List, error) {
	elements := make([]value.Value, 0)
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("parse error: unclosed list")
		}
		if tok.Type == lexer.RPAREN {
			p.pos++
			return &value.List{Elements: elements}, nil
		}

		el, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
}

// parseValue consumes one atom or sublist and converts it to a Value.
func (p *parser) parseValue() (value.Value, error) {
	tok, ok := p.advance()
	if !ok {
		return nil, fmt.Errorf("parse error: unclosed list")
	}

	switch tok.Type {
	case lexer.LPAREN:
		return p.parseListBody()
	case lexer.RPAREN:
		return nil, fmt.Errorf("parse error: unexpected `)`")
	case lexer.INT:
		return parseInt(tok.Literal)
	case lexer.FLOAT:
		return parseFloat(tok.Literal)
	case lexer.STRING:
		return value.String{Value: tok.Literal}, nil
	case lexer.SYMBOL:
		return classifySymbol(tok.Literal), nil
	default:
		return nil, fmt.Errorf("parse error: unexpected token %q", tok.Literal)
	}
}

// classifySymbol turns a SYMBOL token's text into a Keyword, BinaryOp,
// or plain Symbol, per the reserved-word and operator tables in §6 of
// the grammar.
func classifySymbol(text string) value.Value {
	if keywords[text] {
		return value.Keyword{Name: text}
	}
	if operators[text] {
		return value.BinaryOp{Op: text}
	}
	return value.Symbol{Name: text}
}
