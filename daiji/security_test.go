package daiji

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies the package functions and a shared
// Converter are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	shared := MustNew(
		WithDigitGlyphs(CommonDigits),
		WithPositionalUnits(CommonPositionalUnits),
		WithAppendOneBeforeSmallUnits(false),
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			ConvertString("12345")
			ConvertString("-0.9")
			Convert(123456789)
			shared.ConvertString("120.3045E4")
			shared.ConvertInt64(-42)
			Parse("壱万弐千参百四拾五")
			Parse("九百弐拾京")
			ReplaceNumerals("値段は1,234円です")
			shared.ReplaceNumerals("12個と34個")
		}()
	}

	wg.Wait()
}

// TestConvertExtremes verifies conversion degrades gracefully at the edges
// of the representable range.
func TestConvertExtremes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"max int64", "9223372036854775807", false},
		{"min int64", "-9223372036854775808", false},
		{"max uint64", "18446744073709551615", false},
		{"seventy two nines", strings.Repeat("9", 72), false},
		{"seventy three digits", "1" + strings.Repeat("0", 72), true},
		{"huge exponent", "1E10000", true},
		{"huge negative exponent", "1E-10000", false},
		{"thousand digit fraction", "0." + strings.Repeat("7", 1000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ConvertString(%q) panicked: %v", tt.input, r)
				}
			}()
			_, err := ConvertString(tt.input)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("ConvertString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestParseHostile verifies Parse handles hostile input gracefully.
func TestParseHostile(t *testing.T) {
	hostile := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		strings.Repeat("九", 10000),
		strings.Repeat("京", 100),
		strings.Repeat("壱万", 500),
		"壱" + strings.Repeat("\x00", 10) + "万",
		"－－壱",
	}

	for _, input := range hostile {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", input, r)
				}
			}()
			_, _ = Parse(input)
		})
	}
}

// TestReplaceNumeralsHostile verifies text replacement survives hostile
// input without panicking.
func TestReplaceNumeralsHostile(t *testing.T) {
	hostile := []string{
		"\xff\xfe12\xfd",
		string([]byte{0x00, '1', 0x00}),
		strings.Repeat("1,", 10000),
		strings.Repeat("9", 100000),
		"．．１２．．",
	}

	for _, input := range hostile {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ReplaceNumerals(%q) panicked: %v", input, r)
				}
			}()
			_ = ReplaceNumerals(input)
		})
	}
}
