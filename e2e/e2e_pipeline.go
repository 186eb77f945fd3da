//go:build ignore

// e2e_pipeline exercises the numeral, daiji and jpwidth packages in a single
// run and writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/68B09/DaijiConverter/daiji"
	"github.com/68B09/DaijiConverter/internal/jpwidth"
	"github.com/68B09/DaijiConverter/numeral"
)

// ---------- constants ----------

const (
	logPath       = "data/e2e_pipeline.log"
	packageCount  = 3
	maxDetailLen  = 200
	concWorkers   = 8
	concIter      = 100
	separator     = "=========================================================="
	suiteCount    = 9
	goldenDir     = "data/golden"
	truncMaxRunes = 80
)

// ---------- test corpus ----------

const textInvoice = `請求金額は 12,800 円、消費税 1,280 円、合計 14,080 円です。`

const textInvoiceDaiji = `請求金額は 壱万弐千八百 円、消費税 壱千弐百八拾 円、合計 壱万四千八拾 円です。`

const textVersioned = `第3章の図2.5を参照。バージョン1.2.3は変更なし。`

const textVersionedDaiji = `第参章の図2.5を参照。バージョン1.2.3は変更なし。`

const textFullwidth = `全角の１２３４５と半角の12345は同じ値です。`

// ---------- types ----------

type testResult struct {
	name     string
	suite    string
	passed   bool
	duration time.Duration
	detail   string
}

type suiteReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(suite, name string, start time.Time) testResult {
	return testResult{name: name, suite: suite, passed: true, duration: time.Since(start)}
}

func fail(suite, name, detail string, start time.Time) testResult {
	return testResult{name: name, suite: suite, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(suite, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(suite, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func hasASCIIDigit(s string) bool {
	return strings.IndexAny(s, "0123456789") >= 0
}

func plainDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ---------- test suites ----------

func testNumeral() []testResult {
	const suite = "numeral"
	var results []testResult

	results = append(results, safeRun(suite, "normalize_exponent", func() testResult {
		start := time.Now()
		d, err := numeral.Normalize("120.3045E4")
		if err != nil {
			return fail(suite, "normalize_exponent", fmt.Sprintf("Normalize error: %v", err), start)
		}
		if got := d.String(); got != "1203045" {
			return fail(suite, "normalize_exponent", fmt.Sprintf("String()=%q, want \"1203045\"", got), start)
		}
		return pass(suite, "normalize_exponent", start)
	}))

	results = append(results, safeRun(suite, "normalize_fullwidth", func() testResult {
		start := time.Now()
		d, err := numeral.Normalize("１２３")
		if err != nil {
			return fail(suite, "normalize_fullwidth", fmt.Sprintf("Normalize error: %v", err), start)
		}
		if got := d.String(); got != "123" {
			return fail(suite, "normalize_fullwidth", fmt.Sprintf("String()=%q, want \"123\"", got), start)
		}
		return pass(suite, "normalize_fullwidth", start)
	}))

	results = append(results, safeRun(suite, "minus_zero_drops_sign", func() testResult {
		start := time.Now()
		d, err := numeral.Normalize("-0.00")
		if err != nil {
			return fail(suite, "minus_zero_drops_sign", fmt.Sprintf("Normalize error: %v", err), start)
		}
		if !d.IsZero() || d.IsMinus() {
			return fail(suite, "minus_zero_drops_sign",
				fmt.Sprintf("IsZero=%v IsMinus=%v, want true false", d.IsZero(), d.IsMinus()), start)
		}
		return pass(suite, "minus_zero_drops_sign", start)
	}))

	results = append(results, safeRun(suite, "reject_malformed", func() testResult {
		start := time.Now()
		for _, in := range []string{"", "12..3", "abc", "1E", "--"} {
			_, err := numeral.Normalize(in)
			if err == nil {
				return fail(suite, "reject_malformed", fmt.Sprintf("Normalize(%q) accepted", in), start)
			}
			if !errors.Is(err, numeral.ErrSyntax) {
				return fail(suite, "reject_malformed", fmt.Sprintf("Normalize(%q) error %v does not wrap ErrSyntax", in, err), start)
			}
		}
		return pass(suite, "reject_malformed", start)
	}))

	results = append(results, safeRun(suite, "canonical_round_trip", func() testResult {
		start := time.Now()
		for _, in := range []string{"42", "-3.14", "0.5", "1E3", "0070"} {
			d1, err := numeral.Normalize(in)
			if err != nil {
				return fail(suite, "canonical_round_trip", fmt.Sprintf("Normalize(%q) error: %v", in, err), start)
			}
			d2, err := numeral.Normalize(d1.String())
			if err != nil {
				return fail(suite, "canonical_round_trip", fmt.Sprintf("Normalize(%q) error: %v", d1.String(), err), start)
			}
			if d1 != d2 {
				return fail(suite, "canonical_round_trip",
					fmt.Sprintf("Normalize(%q) round trip changed: %q vs %q", in, d1.String(), d2.String()), start)
			}
		}
		return pass(suite, "canonical_round_trip", start)
	}))

	results = append(results, safeRun(suite, "format_real_exact", func() testResult {
		start := time.Now()
		if got := numeral.FormatReal(int64(-9007)); got != "-9007" {
			return fail(suite, "format_real_exact", fmt.Sprintf("FormatReal(-9007)=%q", got), start)
		}
		if got := numeral.FormatReal(uint16(65535)); got != "65535" {
			return fail(suite, "format_real_exact", fmt.Sprintf("FormatReal(65535)=%q", got), start)
		}
		return pass(suite, "format_real_exact", start)
	}))

	return results
}

func testConvert() []testResult {
	const suite = "daiji"
	var results []testResult

	results = append(results, safeRun(suite, "convert_int", func() testResult {
		start := time.Now()
		got, err := daiji.Convert(int64(12345))
		if err != nil {
			return fail(suite, "convert_int", fmt.Sprintf("Convert error: %v", err), start)
		}
		if got != "壱万弐千参百四拾五" {
			return fail(suite, "convert_int", fmt.Sprintf("Convert(12345)=%q", got), start)
		}
		return pass(suite, "convert_int", start)
	}))

	results = append(results, safeRun(suite, "convert_string_exponent", func() testResult {
		start := time.Now()
		got, err := daiji.ConvertString("120.3045E4")
		if err != nil {
			return fail(suite, "convert_string_exponent", fmt.Sprintf("ConvertString error: %v", err), start)
		}
		if got != "壱百弐拾万参千四拾五" {
			return fail(suite, "convert_string_exponent", fmt.Sprintf("ConvertString(\"120.3045E4\")=%q", got), start)
		}
		return pass(suite, "convert_string_exponent", start)
	}))

	results = append(results, safeRun(suite, "negative_sign_kept", func() testResult {
		start := time.Now()
		got, err := daiji.Convert(int64(-2025))
		if err != nil {
			return fail(suite, "negative_sign_kept", fmt.Sprintf("Convert error: %v", err), start)
		}
		if got != "-弐千弐拾五" {
			return fail(suite, "negative_sign_kept", fmt.Sprintf("Convert(-2025)=%q", got), start)
		}
		return pass(suite, "negative_sign_kept", start)
	}))

	results = append(results, safeRun(suite, "fraction_truncated", func() testResult {
		start := time.Now()
		got, err := daiji.ConvertString("3.99")
		if err != nil {
			return fail(suite, "fraction_truncated", fmt.Sprintf("ConvertString error: %v", err), start)
		}
		if got != "参" {
			return fail(suite, "fraction_truncated", fmt.Sprintf("ConvertString(\"3.99\")=%q, want \"参\"", got), start)
		}
		return pass(suite, "fraction_truncated", start)
	}))

	results = append(results, safeRun(suite, "malformed_is_syntax_error", func() testResult {
		start := time.Now()
		_, err := daiji.ConvertString("12..3")
		if !errors.Is(err, numeral.ErrSyntax) {
			return fail(suite, "malformed_is_syntax_error", fmt.Sprintf("error %v does not wrap ErrSyntax", err), start)
		}
		return pass(suite, "malformed_is_syntax_error", start)
	}))

	results = append(results, safeRun(suite, "overflow_is_unit_error", func() testResult {
		start := time.Now()
		_, err := daiji.ConvertString("1E72")
		if !errors.Is(err, daiji.ErrUnitOverflow) {
			return fail(suite, "overflow_is_unit_error", fmt.Sprintf("error %v does not wrap ErrUnitOverflow", err), start)
		}
		return pass(suite, "overflow_is_unit_error", start)
	}))

	return results
}

func testStyles() []testResult {
	const suite = "styles"
	var results []testResult

	results = append(results, safeRun(suite, "old_style", func() testResult {
		start := time.Now()
		c := daiji.MustNew(
			daiji.WithDigitGlyphs(daiji.OldDaijiDigits),
			daiji.WithPositionalUnits(daiji.OldDaijiPositionalUnits),
			daiji.WithLargeUnits(daiji.OldDaijiLargeUnits),
		)
		got, err := c.ConvertString("12345")
		if err != nil {
			return fail(suite, "old_style", fmt.Sprintf("ConvertString error: %v", err), start)
		}
		if got != "壱萬弐仟参佰肆拾伍" {
			return fail(suite, "old_style", fmt.Sprintf("ConvertString(\"12345\")=%q", got), start)
		}
		return pass(suite, "old_style", start)
	}))

	results = append(results, safeRun(suite, "common_style", func() testResult {
		start := time.Now()
		c := daiji.MustNew(
			daiji.WithDigitGlyphs(daiji.CommonDigits),
			daiji.WithPositionalUnits(daiji.CommonPositionalUnits),
			daiji.WithAppendOneBeforeSmallUnits(false),
		)
		got, err := c.ConvertString("12345")
		if err != nil {
			return fail(suite, "common_style", fmt.Sprintf("ConvertString error: %v", err), start)
		}
		if got != "一万二千三百四十五" {
			return fail(suite, "common_style", fmt.Sprintf("ConvertString(\"12345\")=%q", got), start)
		}
		return pass(suite, "common_style", start)
	}))

	results = append(results, safeRun(suite, "bare_one_units", func() testResult {
		start := time.Now()
		c := daiji.MustNew(daiji.WithAppendOneBeforeSmallUnits(false))
		cases := []struct {
			input, want string
		}{
			{"1000", "千"},
			{"11", "拾壱"},
		}
		for _, tc := range cases {
			got, err := c.ConvertString(tc.input)
			if err != nil {
				return fail(suite, "bare_one_units", fmt.Sprintf("ConvertString(%q) error: %v", tc.input, err), start)
			}
			if got != tc.want {
				return fail(suite, "bare_one_units", fmt.Sprintf("ConvertString(%q)=%q, want %q", tc.input, got, tc.want), start)
			}
		}
		return pass(suite, "bare_one_units", start)
	}))

	return results
}

func testParse() []testResult {
	const suite = "parse"
	var results []testResult

	results = append(results, safeRun(suite, "parse_basic", func() testResult {
		start := time.Now()
		cases := []struct {
			input string
			want  int64
		}{
			{"零", 0},
			{"百", 100},
			{"壱万弐千参百四拾五", 12345},
			{"九百弐拾京", 9200000000000000000},
		}
		for _, tc := range cases {
			got, err := daiji.Parse(tc.input)
			if err != nil {
				return fail(suite, "parse_basic", fmt.Sprintf("Parse(%q) error: %v", tc.input, err), start)
			}
			if got != tc.want {
				return fail(suite, "parse_basic", fmt.Sprintf("Parse(%q)=%d, want %d", tc.input, got, tc.want), start)
			}
		}
		return pass(suite, "parse_basic", start)
	}))

	results = append(results, safeRun(suite, "parse_variant_glyphs", func() testResult {
		start := time.Now()
		got, err := daiji.Parse("壹萬貳仟參佰肆拾伍")
		if err != nil {
			return fail(suite, "parse_variant_glyphs", fmt.Sprintf("Parse error: %v", err), start)
		}
		if got != 12345 {
			return fail(suite, "parse_variant_glyphs", fmt.Sprintf("Parse=%d, want 12345", got), start)
		}
		return pass(suite, "parse_variant_glyphs", start)
	}))

	results = append(results, safeRun(suite, "parse_negative", func() testResult {
		start := time.Now()
		got, err := daiji.Parse("-壱億")
		if err != nil {
			return fail(suite, "parse_negative", fmt.Sprintf("Parse error: %v", err), start)
		}
		if got != -100000000 {
			return fail(suite, "parse_negative", fmt.Sprintf("Parse=%d, want -100000000", got), start)
		}
		return pass(suite, "parse_negative", start)
	}))

	results = append(results, safeRun(suite, "parse_interior_space", func() testResult {
		start := time.Now()
		got, err := daiji.Parse("壱億 弐千万")
		if err != nil {
			return fail(suite, "parse_interior_space", fmt.Sprintf("Parse error: %v", err), start)
		}
		if got != 120000000 {
			return fail(suite, "parse_interior_space", fmt.Sprintf("Parse=%d, want 120000000", got), start)
		}
		return pass(suite, "parse_interior_space", start)
	}))

	results = append(results, safeRun(suite, "parse_errors", func() testResult {
		start := time.Now()
		for _, in := range []string{"", "壱壱", "拾百", "abc", "零壱"} {
			_, err := daiji.Parse(in)
			if err == nil {
				return fail(suite, "parse_errors", fmt.Sprintf("Parse(%q) accepted", in), start)
			}
			if !errors.Is(err, daiji.ErrParse) {
				return fail(suite, "parse_errors", fmt.Sprintf("Parse(%q) error %v does not wrap ErrParse", in, err), start)
			}
		}
		return pass(suite, "parse_errors", start)
	}))

	results = append(results, safeRun(suite, "parse_round_trip", func() testResult {
		start := time.Now()
		for _, n := range []int64{0, 1, 7, 10, 100, 1001, 12345, 100000001, 9223372036854775807} {
			text, err := daiji.Convert(n)
			if err != nil {
				return fail(suite, "parse_round_trip", fmt.Sprintf("Convert(%d) error: %v", n, err), start)
			}
			back, err := daiji.Parse(text)
			if err != nil {
				return fail(suite, "parse_round_trip", fmt.Sprintf("Parse(Convert(%d)) error: %v", n, err), start)
			}
			if back != n {
				return fail(suite, "parse_round_trip", fmt.Sprintf("Parse(Convert(%d))=%d", n, back), start)
			}
		}
		return pass(suite, "parse_round_trip", start)
	}))

	return results
}

func testReplace() []testResult {
	const suite = "replace"
	var results []testResult

	results = append(results, safeRun(suite, "invoice_text", func() testResult {
		start := time.Now()
		got := daiji.ReplaceNumerals(textInvoice)
		if got != textInvoiceDaiji {
			return fail(suite, "invoice_text",
				fmt.Sprintf("expect: %s\nactual: %s", truncate(textInvoiceDaiji, truncMaxRunes), truncate(got, truncMaxRunes)), start)
		}
		return pass(suite, "invoice_text", start)
	}))

	results = append(results, safeRun(suite, "decimals_untouched", func() testResult {
		start := time.Now()
		got := daiji.ReplaceNumerals(textVersioned)
		if got != textVersionedDaiji {
			return fail(suite, "decimals_untouched",
				fmt.Sprintf("expect: %s\nactual: %s", truncate(textVersionedDaiji, truncMaxRunes), truncate(got, truncMaxRunes)), start)
		}
		return pass(suite, "decimals_untouched", start)
	}))

	results = append(results, safeRun(suite, "fullwidth_runs", func() testResult {
		start := time.Now()
		got := daiji.ReplaceNumerals(textFullwidth)
		want := "全角の壱万弐千参百四拾五と半角の壱万弐千参百四拾五は同じ値です。"
		if got != want {
			return fail(suite, "fullwidth_runs",
				fmt.Sprintf("expect: %s\nactual: %s", truncate(want, truncMaxRunes), truncate(got, truncMaxRunes)), start)
		}
		return pass(suite, "fullwidth_runs", start)
	}))

	results = append(results, safeRun(suite, "idempotent", func() testResult {
		start := time.Now()
		once := daiji.ReplaceNumerals(textInvoice)
		if hasASCIIDigit(once) {
			return fail(suite, "idempotent", fmt.Sprintf("digits remain after replacement: %s", truncate(once, truncMaxRunes)), start)
		}
		if twice := daiji.ReplaceNumerals(once); twice != once {
			return fail(suite, "idempotent", "second replacement changed the text", start)
		}
		return pass(suite, "idempotent", start)
	}))

	results = append(results, safeRun(suite, "oversized_run_untouched", func() testResult {
		start := time.Now()
		run := strings.Repeat("9", 80)
		got := daiji.ReplaceNumerals("計" + run + "円")
		if got != "計"+run+"円" {
			return fail(suite, "oversized_run_untouched", fmt.Sprintf("got %s", truncate(got, truncMaxRunes)), start)
		}
		return pass(suite, "oversized_run_untouched", start)
	}))

	return results
}

func testWidth() []testResult {
	const suite = "jpwidth"
	var results []testResult

	results = append(results, safeRun(suite, "narrow_string", func() testResult {
		start := time.Now()
		if got := jpwidth.NarrowString("１２３ＡＢ－"); got != "123AB-" {
			return fail(suite, "narrow_string", fmt.Sprintf("NarrowString=%q, want \"123AB-\"", got), start)
		}
		return pass(suite, "narrow_string", start)
	}))

	results = append(results, safeRun(suite, "digit_value", func() testResult {
		start := time.Now()
		if v, ok := jpwidth.DigitValue('７'); !ok || v != 7 {
			return fail(suite, "digit_value", fmt.Sprintf("DigitValue('７')=%d,%v", v, ok), start)
		}
		if _, ok := jpwidth.DigitValue('七'); ok {
			return fail(suite, "digit_value", "DigitValue('七') reported a digit", start)
		}
		return pass(suite, "digit_value", start)
	}))

	results = append(results, safeRun(suite, "kanji_passthrough", func() testResult {
		start := time.Now()
		if got := jpwidth.NarrowString("漢字"); got != "漢字" {
			return fail(suite, "kanji_passthrough", fmt.Sprintf("NarrowString(\"漢字\")=%q", got), start)
		}
		return pass(suite, "kanji_passthrough", start)
	}))

	return results
}

func testPipeline() []testResult {
	const suite = "pipeline"
	var results []testResult

	results = append(results, safeRun(suite, "format_convert_parse", func() testResult {
		start := time.Now()
		for _, n := range []int64{5, 42, 2026, 120000000, 9223372036854775807} {
			s := numeral.FormatReal(n)
			text, err := daiji.ConvertString(s)
			if err != nil {
				return fail(suite, "format_convert_parse", fmt.Sprintf("ConvertString(%q) error: %v", s, err), start)
			}
			back, err := daiji.Parse(text)
			if err != nil {
				return fail(suite, "format_convert_parse", fmt.Sprintf("Parse(%q) error: %v", text, err), start)
			}
			if back != n {
				return fail(suite, "format_convert_parse", fmt.Sprintf("%d came back as %d via %q", n, back, text), start)
			}
		}
		return pass(suite, "format_convert_parse", start)
	}))

	results = append(results, safeRun(suite, "fullwidth_grouped_input", func() testResult {
		start := time.Now()
		got, err := daiji.ConvertString("１２，３４５")
		if err != nil {
			return fail(suite, "fullwidth_grouped_input", fmt.Sprintf("ConvertString error: %v", err), start)
		}
		if got != "壱万弐千参百四拾五" {
			return fail(suite, "fullwidth_grouped_input", fmt.Sprintf("got %q", got), start)
		}
		return pass(suite, "fullwidth_grouped_input", start)
	}))

	results = append(results, safeRun(suite, "decomposition_render", func() testResult {
		start := time.Now()
		d, err := numeral.Make(true, "42", "195")
		if err != nil {
			return fail(suite, "decomposition_render", fmt.Sprintf("Make error: %v", err), start)
		}
		got, err := daiji.MustNew().Render(d)
		if err != nil {
			return fail(suite, "decomposition_render", fmt.Sprintf("Render error: %v", err), start)
		}
		if got != "-四拾弐" {
			return fail(suite, "decomposition_render", fmt.Sprintf("Render=%q, want \"-四拾弐\"", got), start)
		}
		return pass(suite, "decomposition_render", start)
	}))

	results = append(results, safeRun(suite, "converter_kind_methods", func() testResult {
		start := time.Now()
		c := daiji.MustNew()
		got, err := c.ConvertUint64(18446744073709551615)
		if err != nil {
			return fail(suite, "converter_kind_methods", fmt.Sprintf("ConvertUint64 error: %v", err), start)
		}
		if !strings.HasPrefix(got, "壱千八百四拾四京") {
			return fail(suite, "converter_kind_methods", fmt.Sprintf("ConvertUint64(max)=%s", truncate(got, truncMaxRunes)), start)
		}
		got, err = c.ConvertFloat64(1e16)
		if err != nil {
			return fail(suite, "converter_kind_methods", fmt.Sprintf("ConvertFloat64 error: %v", err), start)
		}
		if got != "壱京" {
			return fail(suite, "converter_kind_methods", fmt.Sprintf("ConvertFloat64(1e16)=%q, want \"壱京\"", got), start)
		}
		return pass(suite, "converter_kind_methods", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const suite = "concurrent"
	var results []testResult

	results = append(results, safeRun(suite, "all_packages_8_goroutines_x100", func() testResult {
		start := time.Now()
		shared := daiji.MustNew(
			daiji.WithDigitGlyphs(daiji.CommonDigits),
			daiji.WithPositionalUnits(daiji.CommonPositionalUnits),
			daiji.WithAppendOneBeforeSmallUnits(false),
		)
		var panics atomic.Int64
		var wg sync.WaitGroup

		for w := 0; w < concWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for it := 0; it < concIter; it++ {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						_, _ = daiji.Convert(int64(12345))
						_, _ = daiji.ConvertString("120.3045E4")
						_, _ = daiji.Parse("九百弐拾京")
						_ = daiji.ReplaceNumerals(textInvoice)
						_, _ = shared.ConvertString("１２，３４５")
						_, _ = shared.ConvertUint64(18446744073709551615)
						_, _ = numeral.Normalize("-0.00")
						_ = numeral.FormatReal(int64(-9007))
						_ = jpwidth.NarrowString(textFullwidth)
					}()
				}
			}()
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(suite, "all_packages_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(suite, "all_packages_8_goroutines_x100", start)
	}))

	return results
}

// ---------- corpus helpers ----------

// goldenCase represents one entry from a golden JSON test file.
type goldenCase struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Daiji  string `json:"daiji"`
	Common string `json:"common"`
}

// loadGoldenCases reads all golden JSON files under goldenDir.
func loadGoldenCases() ([]goldenCase, error) {
	files, err := filepath.Glob(filepath.Join(goldenDir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no golden files found in %s", goldenDir)
	}

	var cases []goldenCase
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		var entries []goldenCase
		if err := json.Unmarshal(raw, &entries); err != nil {
			continue // skip non-array golden files
		}
		cases = append(cases, entries...)
	}
	return cases, nil
}

func testCorpus() []testResult {
	const suite = "corpus"
	var results []testResult

	cases, err := loadGoldenCases()
	if err != nil {
		results = append(results, fail(suite, "load_golden_cases", fmt.Sprintf("error: %v", err), time.Now()))
		return results
	}

	results = append(results, safeRun(suite, "load_golden_cases", func() testResult {
		start := time.Now()
		if len(cases) == 0 {
			return fail(suite, "load_golden_cases", "no cases found", start)
		}
		log.Printf("  corpus: %d golden cases", len(cases))
		return pass(suite, "load_golden_cases", start)
	}))

	results = append(results, safeRun(suite, "default_style_matches", func() testResult {
		start := time.Now()
		for _, c := range cases {
			got, err := daiji.ConvertString(c.Input)
			if err != nil {
				return fail(suite, "default_style_matches", fmt.Sprintf("%s: ConvertString(%q) error: %v", c.Name, c.Input, err), start)
			}
			if got != c.Daiji {
				return fail(suite, "default_style_matches",
					fmt.Sprintf("%s: ConvertString(%q)=%q, want %q", c.Name, c.Input, got, c.Daiji), start)
			}
		}
		return pass(suite, "default_style_matches", start)
	}))

	results = append(results, safeRun(suite, "common_style_matches", func() testResult {
		start := time.Now()
		common := daiji.MustNew(
			daiji.WithDigitGlyphs(daiji.CommonDigits),
			daiji.WithPositionalUnits(daiji.CommonPositionalUnits),
			daiji.WithAppendOneBeforeSmallUnits(false),
		)
		for _, c := range cases {
			got, err := common.ConvertString(c.Input)
			if err != nil {
				return fail(suite, "common_style_matches", fmt.Sprintf("%s: ConvertString(%q) error: %v", c.Name, c.Input, err), start)
			}
			if got != c.Common {
				return fail(suite, "common_style_matches",
					fmt.Sprintf("%s: ConvertString(%q)=%q, want %q", c.Name, c.Input, got, c.Common), start)
			}
		}
		return pass(suite, "common_style_matches", start)
	}))

	results = append(results, safeRun(suite, "parse_self_consistent", func() testResult {
		start := time.Now()
		c := daiji.MustNew()
		parsed := 0
		for _, gc := range cases {
			back, err := daiji.Parse(gc.Daiji)
			if err != nil {
				continue // units beyond 京 do not parse
			}
			parsed++
			again, err := c.ConvertInt64(back)
			if err != nil {
				return fail(suite, "parse_self_consistent", fmt.Sprintf("%s: ConvertInt64(%d) error: %v", gc.Name, back, err), start)
			}
			if again != gc.Daiji {
				return fail(suite, "parse_self_consistent",
					fmt.Sprintf("%s: %q parsed to %d, re-rendered as %q", gc.Name, gc.Daiji, back, again), start)
			}
		}
		if parsed == 0 {
			return fail(suite, "parse_self_consistent", "no golden output parsed back", start)
		}
		return pass(suite, "parse_self_consistent", start)
	}))

	results = append(results, safeRun(suite, "replace_plain_integer_inputs", func() testResult {
		start := time.Now()
		checked := 0
		for _, c := range cases {
			if !plainDigits(c.Input) {
				continue
			}
			checked++
			if got := daiji.ReplaceNumerals(c.Input); got != c.Daiji {
				return fail(suite, "replace_plain_integer_inputs",
					fmt.Sprintf("%s: ReplaceNumerals(%q)=%q, want %q", c.Name, c.Input, got, c.Daiji), start)
			}
		}
		if checked == 0 {
			return fail(suite, "replace_plain_integer_inputs", "no plain integer inputs in corpus", start)
		}
		return pass(suite, "replace_plain_integer_inputs", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testNumeral,
		testConvert,
		testStyles,
		testParse,
		testReplace,
		testWidth,
		testPipeline,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []suiteReport {
	order := make(map[string]int)
	var reports []suiteReport

	for _, r := range results {
		idx, exists := order[r.suite]
		if !exists {
			idx = len(reports)
			order[r.suite] = idx
			reports = append(reports, suiteReport{name: r.suite})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  DaijiConverter E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Packages: %d\n", packageCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-suite sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.suite != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.suite, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for _, line := range strings.Split(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.suite, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d packages, %d suites)", packageCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
