// Package jpwidth folds fullwidth (zenkaku) characters to their ASCII
// (hankaku) variants for numeral processing.
//
// Japanese text routinely carries numbers in fullwidth form (１２３．４５),
// often mixed with ASCII. The numeral grammar in this module is defined over
// ASCII, so inputs are folded first:
//
//   - ０-９ fold to 0-9
//   - ＋ － ． ， Ｅ ｅ fold to their ASCII counterparts
//   - the ideographic space U+3000 folds to a plain space
//
// Folding follows the Unicode East Asian Width mapping via
// golang.org/x/text/width. Runes without a narrow variant pass through
// unchanged.
//
// All functions are safe for concurrent use.
package jpwidth

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Narrow returns the narrow variant of r, or r itself when no narrow
// variant exists.
func Narrow(r rune) rune {
	if n := width.LookupRune(r).Narrow(); n != 0 {
		return n
	}
	return r
}

// NarrowString returns s with every rune replaced by its narrow variant.
// Pure-ASCII strings are returned unchanged without allocation.
func NarrowString(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	return width.Narrow.String(s)
}

// DigitValue returns the numeric value of an ASCII or fullwidth decimal
// digit. The second result is false when r is not such a digit.
func DigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '０' && r <= '９':
		return int(r - '０'), true
	}
	return 0, false
}

// IsDigit reports whether r is an ASCII or fullwidth decimal digit.
func IsDigit(r rune) bool {
	_, ok := DigitValue(r)
	return ok
}
