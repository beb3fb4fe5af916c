// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc evaluates basic arithmetic expressions.
//
// The grammar is deliberately tiny - numbers, + - * /, unary minus, and
// parentheses. Input is checked against a character whitelist before parsing,
// and the evaluator itself is a hand-written recursive descent parser, so
// there is no path from user input to anything resembling code execution.
//
// Grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := number | '(' expr ')' | ('+' | '-') factor
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// allowedChars is the full set of characters an expression may contain.
const allowedChars = "0123456789+-*/.() "

// ErrDisallowedChar is returned when an expression contains anything outside
// the whitelist. Callers show the user a friendly message for this case.
var ErrDisallowedChar = errors.New("only basic math operations allowed")

// Allowed reports whether expr contains only whitelisted characters.
func Allowed(expr string) bool {
	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return false
		}
	}
	return true
}

// Evaluate parses and evaluates an arithmetic expression.
func Evaluate(expr string) (float64, error) {
	if !Allowed(expr) {
		return 0, ErrDisallowedChar
	}

	p := &parser{input: []rune(expr)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

// FormatResult renders a result the way a calculator should: integral values
// without a decimal point ("14"), everything else with minimal digits ("3.5").
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// =============================================================================
// PARSER
// =============================================================================

type parser struct {
	input []rune
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() (rune, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, errors.New("division by zero")
			}
			v /= rhs
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	r, ok := p.peek()
	if !ok {
		return 0, errors.New("unexpected end of expression")
	}

	switch {
	case r == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if r, ok := p.peek(); !ok || r != ')' {
			return 0, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil

	case r == '+':
		p.pos++
		return p.parseFactor()

	case r == '-':
		p.pos++
		v, err := p.parseFactor()
		return -v, err

	case unicode.IsDigit(r) || r == '.':
		return p.parseNumber()
	}

	return 0, fmt.Errorf("unexpected character %q at position %d", r, p.pos)
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	sawDigit := false
	sawDot := false
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		if unicode.IsDigit(r) {
			sawDigit = true
			p.pos++
			continue
		}
		if r == '.' {
			if sawDot {
				return 0, fmt.Errorf("malformed number at position %d", start)
			}
			sawDot = true
			p.pos++
			continue
		}
		break
	}
	if !sawDigit {
		return 0, fmt.Errorf("malformed number at position %d", start)
	}
	v, err := strconv.ParseFloat(string(p.input[start:p.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed number at position %d", start)
	}
	return v, nil
}
