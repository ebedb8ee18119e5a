// SPDX-License-Identifier: MIT
package lexer

import "unicode"

// ValidationFunction type for functions that validate rune identities
type ValidationFunction func(rune) bool

// Lookup tables; cheaper than chained comparisons & keep the predicates inlinable.
var (
	digits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}

	identStart = func() (table [256]bool) {
		for r := 'a'; r <= 'z'; r++ {
			table[r] = true
		}
		for r := 'A'; r <= 'Z'; r++ {
			table[r] = true
		}
		table['_'] = true

		return
	}()

	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\n': true,
		'\v': true,
		'\f': true,
		'\r': true,
	}
)

// isDigit return true for an ASCII decimal digit.
func isDigit(r rune) bool { return uint(r) < 256 && digits[r] }

// isIdentStart return true for an ASCII letter or underscore.
func isIdentStart(r rune) bool { return uint(r) < 256 && identStart[r] }

// isIdentPart return true for runes allowed after the first identifier rune.
func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }

// isWhitespace return true for ASCII whitespace & the Unicode space separators.
func isWhitespace(r rune) bool {
	if uint(r) < 256 && whitespace[r] {
		return true
	}

	return r > 127 && unicode.IsSpace(r)
}
