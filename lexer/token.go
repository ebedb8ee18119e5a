// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

//go:generate stringer -type=Kind

type (
	// Kind identifies the class of a lexed Token.
	Kind int

	// Token holds the kind, position & value of a lexed expression unit.
	//
	// Tokens are returned by value; a caller owns its copy.
	Token struct {
		Err  error  // Set for Invalid tokens only.
		Text string // Identifier name or unescaped string literal content.
		Kind Kind   // The type of this Token.
		Pos  int    // The starting position, (in characters) of this Token.
		Int  int32  // Integer literal value.
	}
)

const (
	Eof Kind = iota // End of the input.
	OpenParen
	CloseParen
	Comma
	Plus
	Minus
	Mul
	Div
	True
	False
	Or
	And
	Not
	Identifier
	Integer
	StringLiteral
	SingleQuotedStringLiteral
	Invalid // Notify occurrence of a lexing error.
)

// Lexing errors.
var (
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	ErrUnterminatedString    = errors.New("unterminated string literal")
	ErrIntegerOverflow       = errors.New("integer literal overflow")

	// ErrPanicked is reported by Err when Lex recovers from a panic.
	ErrPanicked = errors.New("recovery from panic")
)

// diagnostics holds the messages reported to expression authors.
var diagnostics = map[error]string{
	ErrUnrecognizedCharacter: "Unrecognized character",
	ErrUnterminatedString:    "Unterminated string literal",
	ErrIntegerOverflow:       "Integer literal overflow",
}

// Bool returns the constant carried by True & False tokens.
func (t Token) Bool() bool { return t.Kind == True }

// Message returns the diagnostic for an Invalid token, "" otherwise.
func (t Token) Message() string {
	if t.Err == nil {
		return ""
	}
	if msg, ok := diagnostics[t.Err]; ok {
		return msg
	}

	return t.Err.Error()
}

// Value returns the token's payload.
//
// Integer yields an int32, True/False a bool, Identifier & the string literals their text,
// Invalid its diagnostic message; every other kind yields nil.
func (t Token) Value() interface{} {
	switch t.Kind {
	case Integer:
		return t.Int
	case True, False:
		return t.Bool()
	case Identifier, StringLiteral, SingleQuotedStringLiteral:
		return t.Text
	case Invalid:
		return t.Message()
	default:
		return nil
	}
}

// String is the `fmt.Stringer` implementation for Token.
func (t Token) String() string {
	if v := t.Value(); v != nil {
		return fmt.Sprintf("%s(%q)@%d", t.Kind, fmt.Sprint(v), t.Pos)
	}

	return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
}
