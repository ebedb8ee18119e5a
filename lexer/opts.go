// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

const (
	// defBufferSize is the capacity of the channel used by Lex.
	defBufferSize = 10
)

// WithDebug configures the debug option.
//
// Debug tracing logs every scanned token & is off by default.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithBufferSize configures the capacity of the channel Lex publishes on.
func WithBufferSize(size int) Option {
	return func(l *Lexer) {
		if size >= 0 {
			l.bufferSize = size
		}
	}
}
