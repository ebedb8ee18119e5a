// SPDX-License-Identifier: MIT
package lexer

// REF: https://go.dev/talks/2011/lex.slide

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type (
	// Lexer scans an expression into Tokens.
	//
	// A Lexer is bound to the source it was created with & is not safe for concurrent use;
	// create one per source.
	Lexer struct {
		Debug  bool
		logger logrus.FieldLogger

		// c is a channel for communicating lexed Tokens, see Lex.
		c          chan Token
		bufferSize int

		// source is the input, decoded once so positions count characters.
		source []rune

		// cursor is the current scan position.
		cursor int
		// start is the position at which the current token began.
		start int

		// buffer accumulates unescaped string literal content.
		buffer []rune

		count    int
		invalids int

		// err holds the panic recovered by Lex; set before c is closed.
		err error
	}
)

// New creates a new Lexer for the source expression.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		logger:     logrus.New(),
		bufferSize: defBufferSize,

		source: []rune(source),
	}

	for _, opt := range opts {
		opt(l)
	}
	l.c = make(chan Token, l.bufferSize)

	return l
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Count obtains the number of non-Eof tokens scanned so far.
func (l *Lexer) Count() int { return l.count }

// Invalids obtains the number of Invalid tokens scanned so far.
func (l *Lexer) Invalids() int { return l.invalids }

// Offset obtains the current scan position.
func (l *Lexer) Offset() int { return l.cursor }

// Len obtains the length of the source, in characters.
func (l *Lexer) Len() int { return len(l.source) }

// NextToken scans & returns the next Token.
//
// Once the source is exhausted every call returns an Eof token positioned at the end of the
// source. Every other call advances the scan position by at least one character, Invalid tokens
// included.
func (l *Lexer) NextToken() (t Token) {
	t = l.scan()

	switch t.Kind {
	case Eof:
		return
	case Invalid:
		l.invalids++
	}
	l.count++

	if l.Debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.WithFields(logrus.Fields{
			"kind": t.Kind.String(),
			"pos":  t.Pos,
		}).Debug("lexer NextToken: ", string(l.source[t.Pos:l.cursor]))
	}

	return
}

// scan dispatches on the rune at the cursor.
func (l *Lexer) scan() Token {
	for {
		if l.cursor >= len(l.source) {
			return Token{Kind: Eof, Pos: len(l.source)}
		}

		l.start = l.cursor
		r := l.source[l.cursor]

		switch r {
		case '(':
			return l.single(OpenParen)
		case ')':
			return l.single(CloseParen)
		case ',':
			return l.single(Comma)
		case '+':
			return l.single(Plus)
		case '-':
			return l.single(Minus)
		case '*':
			return l.single(Mul)
		case '/':
			return l.single(Div)
		case '"':
			return l.lexString()
		case '\'':
			return l.lexSingleQuotedString()
		}

		switch {
		case isDigit(r):
			return l.lexInteger()
		case isIdentStart(r):
			return l.lexIdentifier()
		case isWhitespace(r):
			// Ignore white spaces, discard instead of emit.
			l.cursor++
		default:
			l.cursor++
			return l.emitError(ErrUnrecognizedCharacter)
		}
	}
}

// Lex publishes every Token up to & including Eof over the Lexer's channel, then closes it.
//
// Lex is meant to run in its own goroutine & must be called at most once; read the Tokens with
// Item. Cancelling ctx stops the scan & closes the channel early. A panic while scanning (e.g. from
// a logger hook) also closes the channel early & is reported by Err.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)
	defer func() {
		if r := recover(); r != nil {
			l.err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		t := l.NextToken()
		select {
		case <-ctx.Done():
			return
		case l.c <- t:
		}

		if t.Kind == Eof {
			return
		}
	}
}

// Item return a lexed Token published by Lex.
func (l *Lexer) Item() (t Token, ok bool) {
	t, ok = <-l.c
	return
}

// Err obtains the error that stopped Lex before Eof, other than cancellation.
//
// Read it after Item reports the channel as closed.
func (l *Lexer) Err() error { return l.err }

// next return the rune at the cursor & advance past it; ok is false at the end of the source.
func (l *Lexer) next() (r rune, ok bool) {
	if l.cursor >= len(l.source) {
		return
	}

	r, ok = l.source[l.cursor], true
	l.cursor++

	return
}

// acceptWhile consumes runes while condition is true.
func (l *Lexer) acceptWhile(fn ValidationFunction) {
	for l.cursor < len(l.source) && fn(l.source[l.cursor]) {
		l.cursor++
	}
}

// lexeme return the source runes consumed for the current token.
func (l *Lexer) lexeme() string { return string(l.source[l.start:l.cursor]) }

// single consumes a one-rune token.
func (l *Lexer) single(kind Kind) Token {
	l.cursor++
	return l.emit(kind)
}

// emit creates a payload-free Token starting at the current token start.
func (l *Lexer) emit(kind Kind) Token { return Token{Kind: kind, Pos: l.start} }

// emitText creates a Token carrying text.
func (l *Lexer) emitText(kind Kind, text string) Token {
	return Token{Kind: kind, Pos: l.start, Text: text}
}

// emitError creates an Invalid Token.
func (l *Lexer) emitError(err error) Token {
	return Token{Kind: Invalid, Pos: l.start, Err: err}
}
