package numeral

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minus   bool
		ipart   string
		fpart   string
		want    string
		wantErr bool
	}{
		{"plain integer", false, "12345", "", "12345", false},
		{"integer and fraction", false, "12", "345", "12.345", false},
		{"negative", true, "7", "", "-7", false},
		{"fraction only", true, "", "5", "-0.5", false},
		{"leading zeros stripped", false, "000120", "", "120", false},
		{"trailing zeros stripped", false, "1", "230400", "1.2304", false},
		{"all zeros is zero", false, "000", "000", "0", false},
		{"minus zero loses sign", true, "0", "00", "0", false},
		{"empty is zero", false, "", "", "0", false},
		{"letter in integer", false, "12a", "", "", true},
		{"sign in digits", false, "-12", "", "", true},
		{"point in fraction", false, "1", "2.3", "", true},
		{"fullwidth digit rejected", false, "１２", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Make(tt.minus, tt.ipart, tt.fpart)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Make(%v, %q, %q) = %v, want error", tt.minus, tt.ipart, tt.fpart, d)
				}
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Make(%v, %q, %q) error = %v, want ErrSyntax", tt.minus, tt.ipart, tt.fpart, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Make(%v, %q, %q) error: %v", tt.minus, tt.ipart, tt.fpart, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("Make(%v, %q, %q).String() = %q, want %q", tt.minus, tt.ipart, tt.fpart, got, tt.want)
			}
		})
	}
}

func TestZeroValueIsZero(t *testing.T) {
	t.Parallel()

	var d Decomposition
	if !d.IsZero() || d.IsMinus() || d.IntegerDigits() != "" || d.FractionDigits() != "" {
		t.Errorf("zero value = %+v, want canonical zero", d)
	}
	if got := d.String(); got != "0" {
		t.Errorf("zero value String() = %q, want %q", got, "0")
	}
}

func TestWithoutFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"drops fraction", "12.345", "12"},
		{"keeps sign", "-12.345", "-12"},
		{"fraction only becomes unsigned zero", "-0.9", "0"},
		{"integer unchanged", "12345", "12345"},
		{"zero unchanged", "0", "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.input, err)
			}
			if got := d.WithoutFraction().String(); got != tt.want {
				t.Errorf("Normalize(%q).WithoutFraction() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithoutInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"drops integer", "12.345", "0.345"},
		{"keeps sign", "-12.345", "-0.345"},
		{"integer only becomes unsigned zero", "-12", "0"},
		{"fraction unchanged", "0.25", "0.25"},
		{"zero unchanged", "0", "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.input, err)
			}
			if got := d.WithoutInteger().String(); got != tt.want {
				t.Errorf("Normalize(%q).WithoutInteger() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatRealIntegers(t *testing.T) {
	t.Parallel()

	if got := FormatReal(int64(math.MinInt64)); got != "-9223372036854775808" {
		t.Errorf("FormatReal(MinInt64) = %q", got)
	}
	if got := FormatReal(uint64(math.MaxUint64)); got != "18446744073709551615" {
		t.Errorf("FormatReal(MaxUint64) = %q", got)
	}
	if got := FormatReal(int8(-128)); got != "-128" {
		t.Errorf("FormatReal(int8(-128)) = %q", got)
	}
	if got := FormatReal(uint(42)); got != "42" {
		t.Errorf("FormatReal(uint(42)) = %q", got)
	}
	if got := FormatReal(0); got != "0" {
		t.Errorf("FormatReal(0) = %q", got)
	}
}

func TestFormatRealFloats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		v       float64
		wantInt string
	}{
		{"zero", 0, "0"},
		{"small fraction", 0.5, "0"},
		{"truncates toward zero", 3.99, "3"},
		{"negative truncates toward zero", -3.99, "-3"},
		{"large", 1.5e10, "15000000000"},
		{"negative fraction only", -0.25, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Normalize(FormatReal(tt.v))
			if err != nil {
				t.Fatalf("Normalize(FormatReal(%v)) error: %v (formatted %q)", tt.v, err, FormatReal(tt.v))
			}
			if got := d.WithoutFraction().String(); got != tt.wantInt {
				t.Errorf("FormatReal(%v) integer part = %q, want %q", tt.v, got, tt.wantInt)
			}
		})
	}
}

func TestFormatRealNonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Normalize(FormatReal(v)); err == nil {
			t.Errorf("Normalize(FormatReal(%v)) succeeded, want error", v)
		}
	}
}

func ExampleNormalize_scientific() {
	d, _ := Normalize("120.3045E4")
	fmt.Println(d)
	// Output: 1203045
}

func ExampleDecomposition_WithoutFraction_negative() {
	d, _ := Normalize("-12.345")
	fmt.Println(d.WithoutFraction())
	// Output: -12
}
