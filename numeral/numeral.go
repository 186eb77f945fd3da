// Package numeral normalizes decimal and exponential numeral strings into a
// canonical sign, integer, fraction decomposition.
//
// The decomposition is purely lexical: exponents are applied by moving digit
// characters across the decimal point, so numbers of any magnitude survive
// without overflow or precision loss. "120.3045E4" becomes integer digits
// "1203045" with an empty fraction.
//
// Two layers are provided:
//
//   - Normalize parses a numeral string (optional sign, grouping commas and
//     spaces, decimal point, E-notation exponent, fullwidth or ASCII digits)
//     into a Decomposition.
//   - Decomposition is an immutable value; WithoutFraction and WithoutInteger
//     derive truncated values, String reassembles a plain decimal.
//
// FormatReal bridges Go's built-in numeric types into the same pipeline.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The exponent literal must fit in an int; the digit shift it triggers is
//     unbounded, but "1E99999999999999999999" is rejected as malformed.
//   - Grouping commas and spaces are removed wherever they appear, without
//     validating three-digit grouping.
package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax reports a malformed numeral string. Errors returned by Normalize
// and Make wrap it and carry the offending fragment in their message.
var ErrSyntax = errors.New("invalid numeral syntax")

// Decomposition is the canonical form of a numeral: a sign, integer digits
// with no leading zero, and fraction digits with no trailing zero. A
// Decomposition with no digits on either side is zero and never negative.
//
// The zero value is the canonical zero.
type Decomposition struct {
	minus bool
	ipart string
	fpart string
}

// Make builds a Decomposition from raw digit strings, stripping redundant
// zeros. Both strings must contain ASCII digits only; anything else returns
// an error wrapping ErrSyntax. When stripping leaves no digits the result is
// zero and minus is discarded.
func Make(minus bool, integerDigits, fractionDigits string) (Decomposition, error) {
	if err := checkDigits(integerDigits); err != nil {
		return Decomposition{}, err
	}
	if err := checkDigits(fractionDigits); err != nil {
		return Decomposition{}, err
	}
	return compose(minus, trimLeadingZeros(integerDigits), trimTrailingZeros(fractionDigits)), nil
}

// compose builds a Decomposition from already-normalized digit strings,
// clearing the sign on zero.
func compose(minus bool, ipart, fpart string) Decomposition {
	if ipart == "" && fpart == "" {
		return Decomposition{}
	}
	return Decomposition{minus: minus, ipart: ipart, fpart: fpart}
}

// IsZero reports whether d has no digits on either side of the point.
func (d Decomposition) IsZero() bool {
	return d.ipart == "" && d.fpart == ""
}

// IsMinus reports whether d is negative. Zero is never negative.
func (d Decomposition) IsMinus() bool {
	return d.minus
}

// IntegerDigits returns the digits before the decimal point without leading
// zeros. Empty means no integer part.
func (d Decomposition) IntegerDigits() string {
	return d.ipart
}

// FractionDigits returns the digits after the decimal point without trailing
// zeros. Empty means no fractional part.
func (d Decomposition) FractionDigits() string {
	return d.fpart
}

// WithoutFraction returns d truncated toward zero to an integer.
// When no integer digits remain the result is zero with the sign cleared.
func (d Decomposition) WithoutFraction() Decomposition {
	if d.fpart == "" {
		return d
	}
	return compose(d.minus, d.ipart, "")
}

// WithoutInteger returns the fractional part of d.
// When no fraction digits remain the result is zero with the sign cleared.
func (d Decomposition) WithoutInteger() Decomposition {
	if d.ipart == "" {
		return d
	}
	return compose(d.minus, "", d.fpart)
}

// String reassembles the canonical plain-decimal form: "0" for zero, a "-"
// prefix for negatives, "0.fff" when only fraction digits exist.
func (d Decomposition) String() string {
	if d.IsZero() {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(d.ipart) + len(d.fpart) + 3)
	if d.minus {
		b.WriteByte('-')
	}
	if d.ipart == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(d.ipart)
	}
	if d.fpart != "" {
		b.WriteByte('.')
		b.WriteString(d.fpart)
	}
	return b.String()
}

// checkDigits verifies s contains ASCII digits only.
func checkDigits(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("numeral: unexpected character %q: %w", r, ErrSyntax)
		}
	}
	return nil
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	return s[:i]
}
