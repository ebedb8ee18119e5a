// SPDX-License-Identifier: MIT
package exprlex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/exprlex/lexer"
	"gitlab.com/fisherprime/exprlex/metric"
)

type (
	// TokenList is a type wrapper for []lexer.Token.
	TokenList []lexer.Token
)

// Tokenization errors.
var (
	ErrInvalidSource = errors.New("invalid expression source")
	ErrMissingEOF    = errors.New("token stream closed before end of input")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// debugEnabled checks whether the package logger emits debug entries, guarding costly dumps.
func debugEnabled() bool {
	switch l := fLogger.(type) {
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	case interface{ IsLevelEnabled(logrus.Level) bool }:
		return l.IsLevelEnabled(logrus.DebugLevel)
	default:
		return false
	}
}

// Tokenize lexes input into a TokenList terminated by an Eof token.
//
// Lexing does not stop at an Invalid token; the full list is returned alongside an error wrapping
// ErrInvalidSource & the first Invalid token's cause.
//
// When the scan stops before Eof, the tokens received so far are returned & the error wraps the
// reason (ErrPanicked or the context's error) together with any Invalid token error already seen.
func Tokenize(ctx context.Context, input string, opts ...lexer.Option) (list TokenList, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]lexer.Option{lexer.WithLogger(fLogger)}, opts...)
	l := lexer.New(input, opts...)
	go l.Lex(ctx)

	metric.IncSource()
	defer func() { list.record() }()

	for {
		t, proceed := l.Item()
		if !proceed {
			// Closed without an Eof.
			cause := l.Err()
			if cause == nil {
				if cause = ctx.Err(); cause == nil {
					cause = ErrMissingEOF
				}
			}

			if err != nil {
				err = fmt.Errorf("%w: %w", cause, err)
			} else {
				err = cause
			}

			if debugEnabled() {
				fLogger.Debugf("source: %q \ntokens: %s", input, spew.Sdump(list))
			}
			return
		}
		list = append(list, t)

		switch t.Kind {
		case lexer.Eof:
			return
		case lexer.Invalid:
			metric.IncInvalid(t.Err.Error())
			if err == nil {
				err = fmt.Errorf("%w: %w at position %d", ErrInvalidSource, t.Err, t.Pos)
			}
		}
	}
}

// MustTokenize is like Tokenize but panics on an invalid source.
func MustTokenize(input string, opts ...lexer.Option) TokenList {
	list, err := Tokenize(context.Background(), input, opts...)
	if err != nil {
		panic(err)
	}

	return list
}

// Kinds lists the Kind of every Token in the TokenList.
func (list TokenList) Kinds() (kinds []lexer.Kind) {
	kinds = make([]lexer.Kind, len(list))
	for index := range list {
		kinds[index] = list[index].Kind
	}

	return
}

// Invalid lists the Invalid tokens in the TokenList.
func (list TokenList) Invalid() (invalid TokenList) {
	for index := range list {
		if list[index].Kind == lexer.Invalid {
			invalid = append(invalid, list[index])
		}
	}

	return
}

// String is the `fmt.Stringer` interface implementation for TokenList.
func (list TokenList) String() string {
	buffer := strings.Builder{}
	buffer.WriteString("[")
	for index := range list {
		if index > 0 {
			buffer.WriteString(" ")
		}
		buffer.WriteString(list[index].String())
	}
	buffer.WriteString("]")

	return buffer.String()
}

// record adds the TokenList's counts to the token metrics.
func (list TokenList) record() {
	counts := make(map[lexer.Kind]int)
	for index := range list {
		counts[list[index].Kind]++
	}

	for kind, n := range counts {
		metric.AddTokens(kind.String(), n)
	}
}
