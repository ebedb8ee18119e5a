// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// keywords maps the reserved identifiers to their Kind; matching is case-sensitive.
var keywords = map[string]Kind{
	"true":  True,
	"false": False,
	"or":    Or,
	"and":   And,
	"not":   Not,
}

// Keywords lists the reserved identifiers in lexical order.
func Keywords() (list []string) {
	list = maps.Keys(keywords)
	slices.Sort(list)

	return
}

// IsKeyword checks whether s is lexed as a keyword rather than an Identifier.
func IsKeyword(s string) (ok bool) {
	_, ok = keywords[s]
	return
}

// lexIdentifier consumes the longest identifier run, then classifies it.
func (l *Lexer) lexIdentifier() Token {
	l.acceptWhile(isIdentPart)

	text := l.lexeme()
	if kind, ok := keywords[text]; ok {
		return l.emit(kind)
	}

	return l.emitText(Identifier, text)
}

// lexInteger consumes the longest digit run as a signed 32-bit value.
func (l *Lexer) lexInteger() Token {
	l.acceptWhile(isDigit)

	val, err := strconv.ParseInt(l.lexeme(), 10, 32)
	if err != nil {
		// The run is digits only; a range error is the only possible failure.
		if errors.Is(err, strconv.ErrRange) {
			return l.emitError(ErrIntegerOverflow)
		}

		return l.emitError(err)
	}

	t := l.emit(Integer)
	t.Int = int32(val)

	return t
}

// lexString consumes a double-quoted literal.
//
// A backslash is always dropped & the rune following it is taken literally.
func (l *Lexer) lexString() Token {
	l.buffer = l.buffer[:0]
	l.cursor++ // Opening quote.

	for {
		r, ok := l.next()
		if !ok {
			return l.emitError(ErrUnterminatedString)
		}

		switch r {
		case '"':
			return l.emitText(StringLiteral, string(l.buffer))
		case '\\':
			if r, ok = l.next(); !ok {
				return l.emitError(ErrUnterminatedString)
			}
		}

		l.buffer = append(l.buffer, r)
	}
}

// lexSingleQuotedString consumes a single-quoted literal.
//
// Only `\\` & `\'` are escapes; any other backslash pair is kept verbatim.
func (l *Lexer) lexSingleQuotedString() Token {
	l.buffer = l.buffer[:0]
	l.cursor++ // Opening quote.

	for {
		r, ok := l.next()
		if !ok {
			return l.emitError(ErrUnterminatedString)
		}

		switch r {
		case '\'':
			return l.emitText(SingleQuotedStringLiteral, string(l.buffer))
		case '\\':
			if r, ok = l.next(); !ok {
				return l.emitError(ErrUnterminatedString)
			}
			if r != '\\' && r != '\'' {
				l.buffer = append(l.buffer, '\\')
			}
		}

		l.buffer = append(l.buffer, r)
	}
}
