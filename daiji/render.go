// Rendering of normalized decompositions as kanji numerals.
package daiji

import (
	"fmt"
	"strings"

	"github.com/68B09/DaijiConverter/numeral"
)

const growRender = 16 // estimated bytes beyond the digit glyphs themselves

// ConvertString renders a numeral string as kanji. The string is normalized
// first, so grouping commas, exponents and fullwidth digits are accepted;
// fractional digits are truncated.
func (c *Converter) ConvertString(s string) (string, error) {
	d, err := numeral.Normalize(s)
	if err != nil {
		return "", err
	}
	return c.Render(d)
}

// ConvertInt64 renders an int64 as kanji.
func (c *Converter) ConvertInt64(v int64) (string, error) {
	return c.ConvertString(numeral.FormatReal(v))
}

// ConvertUint64 renders a uint64 as kanji.
func (c *Converter) ConvertUint64(v uint64) (string, error) {
	return c.ConvertString(numeral.FormatReal(v))
}

// ConvertFloat64 renders a float64 as kanji, truncating toward zero.
// NaN and infinities return an error.
func (c *Converter) ConvertFloat64(v float64) (string, error) {
	return c.ConvertString(numeral.FormatReal(v))
}

// Render renders a normalized decomposition. The fractional part is
// dropped; when no integer digit remains the result is the bare zero glyph.
// Negative numbers keep a leading "-".
//
// Digits are walked in four-digit groups. Inside a group each non-zero
// digit emits its glyph and positional unit, except that the glyph for 1
// is omitted before 千, 百 and 拾 when AppendOneBeforeSmallUnits is off.
// A group that emitted anything is closed with its group unit (万, 億, …);
// a group past the end of the table follows the overflow policy.
func (c *Converter) Render(d numeral.Decomposition) (string, error) {
	d = d.WithoutFraction()
	if d.IsZero() {
		return c.glyphs[0], nil
	}

	digits := d.IntegerDigits()

	var b strings.Builder
	b.Grow(growRender + 3*len(digits))
	if d.IsMinus() {
		b.WriteByte('-')
	}

	group := (len(digits) - 1) / groupSize
	pos := (groupSize - len(digits)%groupSize) % groupSize
	emitted := false

	for i := 0; i < len(digits); i++ {
		digit := int(digits[i] - '0')
		if digit != 0 {
			if pos == groupSize-1 {
				// Ones place: the digit glyph always appears.
				b.WriteString(c.glyphs[digit])
				emitted = true
			} else {
				if digit != 1 || c.appendOne {
					b.WriteString(c.glyphs[digit])
				}
				if unit := c.posUnits[pos]; unit != "" {
					b.WriteString(unit)
					emitted = true
				}
			}
		}
		if pos == groupSize-1 {
			if emitted {
				if group < len(c.largeUnits) {
					b.WriteString(c.largeUnits[group])
				} else if c.overflow == OverflowFail {
					return "", fmt.Errorf("daiji: no unit name for the 10^%d group: %w", group*groupSize, ErrUnitOverflow)
				}
			}
			emitted = false
			group--
			pos = 0
		} else {
			pos++
		}
	}

	return b.String(), nil
}
