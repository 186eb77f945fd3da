// Package daiji converts numbers to the formal kanji numerals (daiji) used
// on Japanese legal and financial documents, where 12345 is written
// 壱万弐千参百四拾五.
//
// The package provides conversion in both directions:
//
//   - Convert and ConvertString render Go numbers or numeral strings with
//     the default formal tables.
//   - Converter carries replaceable glyph and unit tables for other styles
//     (old daiji, everyday kanji) and rendering policies.
//   - Parse reads daiji or everyday kanji numerals back into an int64.
//   - ReplaceNumerals rewrites every integer numeral inside running text.
//
// Numeral strings may carry grouping commas, a decimal point, an E-notation
// exponent and fullwidth characters; see the numeral package for the exact
// grammar. Fractional parts are truncated, never rounded: kanji numerals
// have no fractional notation. A truncation that leaves no integer digit
// yields 零 without a sign.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Parse accepts unit notation (壱千弐百参拾四), not positional digit
//     strings (一二三四).
//   - Parse covers group units through 京 (10^16); larger named units
//     exceed int64 and are rejected.
//   - ReplaceNumerals leaves decimal-pointed numerals unchanged and treats
//     signs as surrounding text.
package daiji

import (
	"errors"

	"github.com/68B09/DaijiConverter/numeral"
)

var (
	// ErrConfig reports an unusable table or policy given to New.
	ErrConfig = errors.New("invalid configuration")

	// ErrUnitOverflow reports a number too large for the large unit table.
	ErrUnitOverflow = errors.New("number exceeds the large unit table")

	// ErrParse reports text that is not a well-formed kanji numeral.
	ErrParse = errors.New("invalid kanji numeral")
)

// defaultConverter backs the package-level functions.
var defaultConverter = MustNew()

// Convert renders v with the default formal tables. Floats are truncated
// toward zero, so -3.99 becomes -参.
func Convert[T numeral.Real](v T) (string, error) {
	return defaultConverter.ConvertString(numeral.FormatReal(v))
}

// ConvertString renders a numeral string with the default formal tables.
func ConvertString(s string) (string, error) {
	return defaultConverter.ConvertString(s)
}

// ReplaceNumerals rewrites every integer numeral in text with the default
// formal tables.
func ReplaceNumerals(text string) string {
	return defaultConverter.ReplaceNumerals(text)
}
