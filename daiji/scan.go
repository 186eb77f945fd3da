// In-text numeral replacement.
package daiji

import (
	"strings"

	"github.com/68B09/DaijiConverter/internal/jpwidth"
)

// ReplaceNumerals rewrites every plain integer numeral in text as kanji,
// leaving all other text in place. A numeral is a run of ASCII or fullwidth
// digits; grouping commas between digits belong to the run.
//
// Runs touching a decimal point (3.14, v1.2) are left unchanged, as are
// runs the converter cannot render under its overflow policy. Signs count
// as surrounding text. Runs are converted by value, so leading zeros
// vanish: 007 becomes 七.
func (c *Converter) ReplaceNumerals(text string) string {
	runes := []rune(text)

	var b strings.Builder
	b.Grow(len(text) + len(text)/2) // kanji output is wider than ASCII digits

	for i := 0; i < len(runes); {
		if !jpwidth.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		end := i + 1
		for end < len(runes) {
			if jpwidth.IsDigit(runes[end]) {
				end++
				continue
			}
			if isGroupComma(runes[end]) && end+1 < len(runes) && jpwidth.IsDigit(runes[end+1]) {
				end += 2
				continue
			}
			break
		}

		run := string(runes[i:end])
		if partOfDecimal(runes, i, end) {
			b.WriteString(run)
		} else if out, err := c.ConvertString(run); err == nil {
			b.WriteString(out)
		} else {
			b.WriteString(run)
		}
		i = end
	}

	return b.String()
}

// partOfDecimal reports whether the digit run [start, end) is glued to a
// decimal point, as in 3.14 or v1.2.
func partOfDecimal(runes []rune, start, end int) bool {
	if start > 0 && isDecimalPoint(runes[start-1]) {
		return true
	}
	return end < len(runes) && isDecimalPoint(runes[end]) &&
		end+1 < len(runes) && jpwidth.IsDigit(runes[end+1])
}

func isDecimalPoint(r rune) bool { return r == '.' || r == '．' }

func isGroupComma(r rune) bool { return r == ',' || r == '，' }
