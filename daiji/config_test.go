package daiji

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	a := assert.New(t)

	c, err := New()
	a.NoError(err)
	a.Equal(DaijiDigits, c.DigitGlyphs())
	a.Equal(DaijiPositionalUnits, c.PositionalUnits())
	a.Equal(DaijiLargeUnits, c.LargeUnits())
	a.True(c.AppendOneBeforeSmallUnits())
	a.Equal(OverflowFail, c.OverflowPolicy())
	a.Equal(72, c.MaxIntegerDigits())
}

func TestNewValidation(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		opts []Option
		err  string
	}{
		{[]Option{WithDigitGlyphs([]string{"〇", "一"})}, "daiji: need 10 digit glyphs, got 2: invalid configuration"},
		{[]Option{WithDigitGlyphs(nil)}, "daiji: need 10 digit glyphs, got 0: invalid configuration"},
		{[]Option{WithPositionalUnits([]string{"千"})}, "daiji: need 4 positional units, got 1: invalid configuration"},
		{[]Option{WithLargeUnits([]string{})}, "daiji: need at least one large unit entry: invalid configuration"},
		{[]Option{WithOverflowPolicy(OverflowPolicy(7))}, "daiji: unknown overflow policy 7: invalid configuration"},
		{[]Option{WithOverflowPolicy(-1)}, "daiji: unknown overflow policy -1: invalid configuration"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c, err := New(test.opts...)
			a.Nil(c)
			a.EqualError(err, test.err)
			a.ErrorIs(err, ErrConfig)
			a.Panics(func() {
				MustNew(test.opts...)
			})
		})
	}
}

func TestNewCopiesTables(t *testing.T) {
	a := assert.New(t)

	glyphs := append([]string(nil), CommonDigits...)
	units := append([]string(nil), DaijiLargeUnits...)
	c, err := New(WithDigitGlyphs(glyphs), WithLargeUnits(units))
	a.NoError(err)

	glyphs[5] = "x"
	units[1] = "y"
	out, err := c.ConvertString("50000")
	a.NoError(err)
	a.Equal("五万", out)

	// Getter results are copies too.
	c.DigitGlyphs()[5] = "z"
	c.LargeUnits()[1] = "z"
	out, err = c.ConvertString("50000")
	a.NoError(err)
	a.Equal("五万", out)
}

func TestNewExtraEntriesIgnored(t *testing.T) {
	a := assert.New(t)

	glyphs := append(append([]string(nil), DaijiDigits...), "蛇足", "余分")
	units := append(append([]string(nil), DaijiPositionalUnits...), "無用")
	c, err := New(WithDigitGlyphs(glyphs), WithPositionalUnits(units))
	a.NoError(err)
	a.Len(c.DigitGlyphs(), 10)
	a.Len(c.PositionalUnits(), 4)

	out, err := c.ConvertString("12345")
	a.NoError(err)
	a.Equal("壱万弐千参百四拾五", out)
}

func TestWithLargeUnitsExtendsRange(t *testing.T) {
	a := assert.New(t)

	units := append(append([]string(nil), DaijiLargeUnits...), "大数の先")
	c, err := New(WithLargeUnits(units))
	a.NoError(err)
	a.Equal(76, c.MaxIntegerDigits())

	out, err := c.ConvertString("1E72")
	a.NoError(err)
	a.Equal("壱大数の先", out)
}

func TestOverflowPolicyString(t *testing.T) {
	a := assert.New(t)

	a.Equal("fail", OverflowFail.String())
	a.Equal("omit-unit", OverflowOmitUnit.String())
	a.Equal("OverflowPolicy(9)", OverflowPolicy(9).String())
	a.Equal("OverflowPolicy(-3)", OverflowPolicy(-3).String())
}
