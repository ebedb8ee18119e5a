// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAll pulls tokens up to & including the first Eof.
func scanAll(l *Lexer) (list []Token) {
	for {
		t := l.NextToken()
		list = append(list, t)
		if t.Kind == Eof {
			return
		}
	}
}

func BenchmarkLexer_NextToken(b *testing.B) {
	src := `not (a_1 + 42) * 'it\'s' / "x\"y", false`

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		l := New(src)
		for l.NextToken().Kind != Eof {
		}
	}
}

func BenchmarkLexer_Lex(b *testing.B) {
	src := "2,3,4))"

	logger := logrus.New()
	ctx := context.Background()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		l := New(src, WithLogger(logger))
		b.StartTimer()

		go l.Lex(ctx)

		for {
			if item, proceed := l.Item(); !proceed || item.Kind == Eof {
				break
			}
		}
	}
}

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  []Token{{Kind: Eof}},
		},
		{
			name:  "punctuation",
			input: "(),+-*/",
			want: []Token{
				{Kind: OpenParen, Pos: 0},
				{Kind: CloseParen, Pos: 1},
				{Kind: Comma, Pos: 2},
				{Kind: Plus, Pos: 3},
				{Kind: Minus, Pos: 4},
				{Kind: Mul, Pos: 5},
				{Kind: Div, Pos: 6},
				{Kind: Eof, Pos: 7},
			},
		},
		{
			name:  "end to end",
			input: "a + (b * 2)",
			want: []Token{
				{Kind: Identifier, Pos: 0, Text: "a"},
				{Kind: Plus, Pos: 2},
				{Kind: OpenParen, Pos: 4},
				{Kind: Identifier, Pos: 5, Text: "b"},
				{Kind: Mul, Pos: 7},
				{Kind: Integer, Pos: 9, Int: 2},
				{Kind: CloseParen, Pos: 10},
				{Kind: Eof, Pos: 11},
			},
		},
		{
			name:  "leading whitespace",
			input: "  \t 42",
			want: []Token{
				{Kind: Integer, Pos: 4, Int: 42},
				{Kind: Eof, Pos: 6},
			},
		},
		{
			name:  "keywords",
			input: "not true or false and",
			want: []Token{
				{Kind: Not, Pos: 0},
				{Kind: True, Pos: 4},
				{Kind: Or, Pos: 9},
				{Kind: False, Pos: 12},
				{Kind: And, Pos: 18},
				{Kind: Eof, Pos: 21},
			},
		},
		{
			name:  "function call",
			input: "f(x, 'y')",
			want: []Token{
				{Kind: Identifier, Pos: 0, Text: "f"},
				{Kind: OpenParen, Pos: 1},
				{Kind: Identifier, Pos: 2, Text: "x"},
				{Kind: Comma, Pos: 3},
				{Kind: SingleQuotedStringLiteral, Pos: 5, Text: "y"},
				{Kind: CloseParen, Pos: 8},
				{Kind: Eof, Pos: 9},
			},
		},
		{
			name:  "integer then identifier",
			input: "12abc",
			want: []Token{
				{Kind: Integer, Pos: 0, Int: 12},
				{Kind: Identifier, Pos: 2, Text: "abc"},
				{Kind: Eof, Pos: 5},
			},
		},
		{
			name:  "unrecognized character",
			input: "a#b",
			want: []Token{
				{Kind: Identifier, Pos: 0, Text: "a"},
				{Kind: Invalid, Pos: 1, Err: ErrUnrecognizedCharacter},
				{Kind: Identifier, Pos: 2, Text: "b"},
				{Kind: Eof, Pos: 3},
			},
		},
		{
			name:  "non-ASCII letter",
			input: "é",
			want: []Token{
				{Kind: Invalid, Pos: 0, Err: ErrUnrecognizedCharacter},
				{Kind: Eof, Pos: 1},
			},
		},
		{
			name:  "positions count characters",
			input: `"héllo" x`,
			want: []Token{
				{Kind: StringLiteral, Pos: 0, Text: "héllo"},
				{Kind: Identifier, Pos: 8, Text: "x"},
				{Kind: Eof, Pos: 9},
			},
		},
		{
			name:  "unicode space",
			input: "\u00a0x",
			want: []Token{
				{Kind: Identifier, Pos: 1, Text: "x"},
				{Kind: Eof, Pos: 2},
			},
		},
		{
			name:  "unterminated string consumes the rest",
			input: `"abc + 1`,
			want: []Token{
				{Kind: Invalid, Pos: 0, Err: ErrUnterminatedString},
				{Kind: Eof, Pos: 8},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(New(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lexer.NextToken() = %s, want %s", spew.Sdump(got), spew.Sdump(tt.want))
			}
		})
	}
}

func TestLexer_NextToken_idempotentEOF(t *testing.T) {
	for _, input := range []string{"", "a", "  ", `"open`, "1 + 2"} {
		l := New(input)
		first := scanAll(l)
		eof := first[len(first)-1]

		assert.Equal(t, len([]rune(input)), eof.Pos, "Eof position for %q", input)
		for index := 0; index < 3; index++ {
			assert.Equal(t, eof, l.NextToken(), "repeated Eof for %q", input)
		}
		assert.Equal(t, l.Len(), l.Offset())
	}
}

func TestLexer_NextToken_progress(t *testing.T) {
	inputs := []string{"#", "@@@", "a$b%c", `"x\`, `'y\`, "99999999999 ?", "\x00\x01", "日本"}

	for _, input := range inputs {
		l := New(input)
		for calls := 0; ; calls++ {
			require.LessOrEqual(t, calls, l.Len(), "no progress scanning %q", input)

			before := l.Offset()
			tok := l.NextToken()
			if tok.Kind == Eof {
				break
			}
			assert.Greater(t, l.Offset(), before, "cursor stalled on %q at %d", input, before)
		}
	}
}

func TestLexer_counters(t *testing.T) {
	l := New("a # 'b")
	scanAll(l)
	l.NextToken()

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 2, l.Invalids())
}

func TestLexer_Lex(t *testing.T) {
	l := New("x or 1", WithBufferSize(0))
	go l.Lex(context.Background())

	var kinds []Kind
	for {
		item, ok := l.Item()
		if !ok {
			break
		}
		kinds = append(kinds, item.Kind)
	}

	assert.Equal(t, []Kind{Identifier, Or, Integer, Eof}, kinds)
}

func TestLexer_Lex_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New("a b c")
	l.Lex(ctx)

	_, ok := l.Item()
	assert.False(t, ok, "channel should be closed without tokens")
}

func TestLexer_debugLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	l := New("a 1", WithLogger(logger), WithDebug(true))
	scanAll(l)

	require.Len(t, hook.AllEntries(), 2)
	entry := hook.LastEntry()
	assert.Equal(t, "Integer", entry.Data["kind"])
	assert.Equal(t, 2, entry.Data["pos"])
	assert.Equal(t, logger, l.Logger())

	hook.Reset()
	scanAll(New("a 1", WithLogger(logger)))
	assert.Empty(t, hook.AllEntries(), "tracing is off by default")
}

// panicHook panics on the first entry it sees.
type panicHook struct{}

func (panicHook) Levels() []logrus.Level { return logrus.AllLevels }

func (panicHook) Fire(*logrus.Entry) error { panic("hook") }

func TestLexer_Lex_recoversPanic(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.AddHook(panicHook{})

	l := New("a b", WithLogger(logger), WithDebug(true))
	assert.NotPanics(t, func() { l.Lex(context.Background()) })

	_, ok := l.Item()
	assert.False(t, ok, "channel should be closed after the panic")
	assert.ErrorIs(t, l.Err(), ErrPanicked)
	assert.Contains(t, l.Err().Error(), "hook")

	assert.NoError(t, New("a").Err())
}
