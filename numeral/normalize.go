package numeral

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/68B09/DaijiConverter/internal/jpwidth"
)

// Normalize parses a numeral string into its canonical Decomposition.
//
// Accepted shape, after fullwidth characters are folded to ASCII and
// grouping commas and whitespace are removed:
//
//	[+-]digits[.digits][E[+-]digits]
//
// The leading sign decides the result sign; any further leading signs are
// stripped without effect. Case is ignored, so "e" notation works. The
// exponent moves digits across the decimal point one place at a time,
// synthesizing zeros as needed, so the result is exact at any magnitude.
//
// A value whose digits are all zero normalizes to the canonical zero; its
// sign and exponent are discarded. Anything outside the shape above returns
// an error wrapping ErrSyntax.
func Normalize(s string) (Decomposition, error) {
	s = jpwidth.NarrowString(s)
	s = stripSeparators(s)
	if s == "" {
		return Decomposition{}, fmt.Errorf("numeral: empty input: %w", ErrSyntax)
	}
	s = strings.ToUpper(s)

	minus := false
	switch s[0] {
	case '-':
		minus = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	for len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	mantissa, expField, hasExp := strings.Cut(s, "E")
	exp := 0
	if hasExp {
		var err error
		exp, err = strconv.Atoi(expField)
		if err != nil {
			return Decomposition{}, fmt.Errorf("numeral: bad exponent %q: %w", expField, ErrSyntax)
		}
	}

	ipart, fpart, _ := strings.Cut(mantissa, ".")
	if ipart == "" && fpart == "" {
		return Decomposition{}, fmt.Errorf("numeral: no digits: %w", ErrSyntax)
	}
	if err := checkDigits(ipart); err != nil {
		return Decomposition{}, err
	}
	if err := checkDigits(fpart); err != nil {
		return Decomposition{}, err
	}

	ipart = trimLeadingZeros(ipart)
	fpart = trimTrailingZeros(fpart)
	if ipart == "" && fpart == "" {
		// All digits zero: the exponent cannot change the value.
		return Decomposition{}, nil
	}

	ip, fp := shiftPoint([]byte(ipart), []byte(fpart), exp)
	return compose(minus, trimLeadingZeros(string(ip)), trimTrailingZeros(string(fp))), nil
}

// stripSeparators removes grouping commas and whitespace anywhere in s.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// shiftPoint applies a base-10 exponent to the digit strings by moving the
// decimal point exp places, one digit per place, synthesizing '0' once a
// side runs out. The splices below are the batch form of that walk; digit
// order is preserved in both directions.
func shiftPoint(ip, fp []byte, exp int) ([]byte, []byte) {
	switch {
	case exp > 0:
		if exp <= len(fp) {
			ip = append(ip, fp[:exp]...)
			fp = fp[exp:]
		} else {
			n := exp - len(fp)
			ip = append(ip, fp...)
			ip = append(ip, bytes.Repeat([]byte{'0'}, n)...)
			fp = nil
		}
	case exp < 0:
		n := -exp
		var moved []byte
		if n <= len(ip) {
			moved = make([]byte, 0, n+len(fp))
			moved = append(moved, ip[len(ip)-n:]...)
			ip = ip[:len(ip)-n]
		} else {
			moved = make([]byte, 0, n+len(fp))
			moved = append(moved, bytes.Repeat([]byte{'0'}, n-len(ip))...)
			moved = append(moved, ip...)
			ip = nil
		}
		fp = append(moved, fp...)
	}
	return ip, fp
}
