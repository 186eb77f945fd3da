// Kanji-to-number parsing for daiji and everyday numerals.
package daiji

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/68B09/DaijiConverter/internal/jpwidth"
)

// digitValues maps every accepted digit glyph to its value: everyday,
// modern daiji and old daiji forms, including the 壹貳參 variants found in
// older documents. Built at package level to avoid per-call allocation.
var digitValues = map[rune]int64{
	'〇': 0, '零': 0,
	'一': 1, '壱': 1, '壹': 1, '弌': 1,
	'二': 2, '弐': 2, '貳': 2, '貮': 2,
	'三': 3, '参': 3, '參': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陸': 6,
	'七': 7, '漆': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

// positionalValues maps in-group unit glyphs to their multiplier.
var positionalValues = map[rune]int64{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100, '陌': 100,
	'千': 1_000, '仟': 1_000, '阡': 1_000,
}

// groupValues maps four-digit group unit glyphs to their multiplier.
// 京 is the last named unit that fits in an int64.
var groupValues = map[rune]int64{
	'万': 10_000, '萬': 10_000,
	'億': 100_000_000,
	'兆': 1_000_000_000_000,
	'京': 10_000_000_000_000_000,
}

// Parse converts a kanji numeral to an int64. Every digit style is
// accepted and may be mixed, so 壱万二千 parses like 一万二千. Fullwidth
// punctuation is folded and whitespace is ignored; a leading - makes the
// result negative.
//
// The numeral must use unit notation with units in strictly descending
// order: 千 before 百 inside a group, 億 before 万 across groups. The zero
// glyphs 零 and 〇 are accepted only as the whole numeral. Values beyond
// int64, and group units beyond 京, return an error. All errors wrap
// ErrParse.
func Parse(s string) (int64, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return jpwidth.Narrow(r)
	}, s)
	if s == "" {
		return 0, fmt.Errorf("daiji: empty input: %w", ErrParse)
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
		if s == "" {
			return 0, fmt.Errorf("daiji: empty input after sign: %w", ErrParse)
		}
	}

	if s == "零" || s == "〇" {
		return 0, nil
	}

	var (
		total   int64 // fully closed groups
		group   int64 // 0-9999 accumulator for the group under construction
		pending int64 // digit awaiting its unit
		lastPos int64 // last positional multiplier seen in this group, 0 for none
		lastBig int64 // last group multiplier closed, 0 for none
	)

	for _, r := range s {
		if v, ok := digitValues[r]; ok {
			if v == 0 {
				return 0, fmt.Errorf("daiji: %q inside a compound numeral: %w", r, ErrParse)
			}
			if pending != 0 {
				return 0, fmt.Errorf("daiji: adjacent digits at %q: %w", r, ErrParse)
			}
			pending = v
			continue
		}

		if m, ok := positionalValues[r]; ok {
			if lastPos != 0 && m >= lastPos {
				return 0, fmt.Errorf("daiji: unit %q out of order: %w", r, ErrParse)
			}
			lastPos = m
			if pending == 0 {
				// Bare unit: 千 reads as one thousand.
				pending = 1
			}
			group += pending * m
			pending = 0
			continue
		}

		if m, ok := groupValues[r]; ok {
			if lastBig != 0 && m >= lastBig {
				return 0, fmt.Errorf("daiji: unit %q out of order: %w", r, ErrParse)
			}
			lastBig = m
			group += pending
			pending = 0
			if group == 0 {
				// Bare unit: 万 reads as ten thousand.
				group = 1
			}
			if group > math.MaxInt64/m {
				return 0, fmt.Errorf("daiji: out of range: %w", ErrParse)
			}
			product := group * m
			if total > math.MaxInt64-product {
				return 0, fmt.Errorf("daiji: out of range: %w", ErrParse)
			}
			total += product
			group = 0
			lastPos = 0
			continue
		}

		return 0, fmt.Errorf("daiji: unknown character %q: %w", r, ErrParse)
	}

	tail := group + pending
	if total > math.MaxInt64-tail {
		return 0, fmt.Errorf("daiji: out of range: %w", ErrParse)
	}
	total += tail
	if negative {
		total = -total
	}
	return total, nil
}
