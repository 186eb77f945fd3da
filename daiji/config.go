package daiji

import (
	"fmt"
	"slices"
)

const (
	groupSize  = 4  // digits per named group
	glyphCount = 10 // digit glyphs per table
)

// OverflowPolicy selects what happens when a number needs a four-digit
// group beyond the end of the large unit table.
type OverflowPolicy int

const (
	// OverflowFail rejects the number with ErrUnitOverflow.
	OverflowFail OverflowPolicy = iota

	// OverflowOmitUnit renders the group's digits and drops the missing
	// unit name.
	OverflowOmitUnit
)

var overflowPolicyNames = [...]string{
	OverflowFail:     "fail",
	OverflowOmitUnit: "omit-unit",
}

// String returns a short name for the policy.
func (p OverflowPolicy) String() string {
	if p >= 0 && int(p) < len(overflowPolicyNames) {
		return overflowPolicyNames[p]
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// Converter renders numbers as kanji numerals with a fixed table set.
// A Converter is immutable once built and safe for concurrent use by
// multiple goroutines.
type Converter struct {
	glyphs     [glyphCount]string
	posUnits   [groupSize]string
	largeUnits []string
	appendOne  bool
	overflow   OverflowPolicy
}

// config collects option values before validation.
type config struct {
	glyphs     []string
	posUnits   []string
	largeUnits []string
	appendOne  bool
	overflow   OverflowPolicy
}

// Option configures a Converter under construction.
type Option func(*config)

// WithDigitGlyphs replaces the digit glyphs, ordered zero through nine.
// Entries past the tenth are ignored.
func WithDigitGlyphs(glyphs []string) Option {
	return func(c *config) { c.glyphs = glyphs }
}

// WithPositionalUnits replaces the in-group unit names, ordered thousand,
// hundred, ten, ones. The ones entry is conventionally empty. Entries past
// the fourth are ignored.
func WithPositionalUnits(units []string) Option {
	return func(c *config) { c.posUnits = units }
}

// WithLargeUnits replaces the group unit names; entry i names 10^(4i) and
// entry 0 should be empty. A longer table extends the convertible range by
// four digits per entry.
func WithLargeUnits(units []string) Option {
	return func(c *config) { c.largeUnits = units }
}

// WithAppendOneBeforeSmallUnits controls whether 1 keeps its digit glyph
// before the thousand, hundred and ten units. Formal documents write 壱千
// (on by default); everyday style writes 千. The ones place and the digits
// before group units like 万 always keep their glyph.
func WithAppendOneBeforeSmallUnits(on bool) Option {
	return func(c *config) { c.appendOne = on }
}

// WithOverflowPolicy selects the behavior when a number outgrows the large
// unit table. The default is OverflowFail.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(c *config) { c.overflow = p }
}

// New builds a Converter with the formal daiji defaults, then applies opts
// in order. The tables must hold at least ten digit glyphs, four positional
// units and one large unit entry; violations return an error wrapping
// ErrConfig. Tables are copied, so later changes to the slices passed in do
// not affect the Converter.
func New(opts ...Option) (*Converter, error) {
	cfg := config{
		glyphs:     DaijiDigits,
		posUnits:   DaijiPositionalUnits,
		largeUnits: DaijiLargeUnits,
		appendOne:  true,
		overflow:   OverflowFail,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.glyphs) < glyphCount {
		return nil, fmt.Errorf("daiji: need %d digit glyphs, got %d: %w", glyphCount, len(cfg.glyphs), ErrConfig)
	}
	if len(cfg.posUnits) < groupSize {
		return nil, fmt.Errorf("daiji: need %d positional units, got %d: %w", groupSize, len(cfg.posUnits), ErrConfig)
	}
	if len(cfg.largeUnits) == 0 {
		return nil, fmt.Errorf("daiji: need at least one large unit entry: %w", ErrConfig)
	}
	switch cfg.overflow {
	case OverflowFail, OverflowOmitUnit:
	default:
		return nil, fmt.Errorf("daiji: unknown overflow policy %d: %w", int(cfg.overflow), ErrConfig)
	}

	c := &Converter{
		largeUnits: slices.Clone(cfg.largeUnits),
		appendOne:  cfg.appendOne,
		overflow:   cfg.overflow,
	}
	copy(c.glyphs[:], cfg.glyphs)
	copy(c.posUnits[:], cfg.posUnits)
	return c, nil
}

// MustNew is like New but panics on invalid configuration. Use for
// package-level converters built from known-good tables.
func MustNew(opts ...Option) *Converter {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DigitGlyphs returns a copy of the digit glyphs in use.
func (c *Converter) DigitGlyphs() []string {
	return slices.Clone(c.glyphs[:])
}

// PositionalUnits returns a copy of the in-group unit names in use.
func (c *Converter) PositionalUnits() []string {
	return slices.Clone(c.posUnits[:])
}

// LargeUnits returns a copy of the group unit names in use.
func (c *Converter) LargeUnits() []string {
	return slices.Clone(c.largeUnits)
}

// AppendOneBeforeSmallUnits reports whether 1 keeps its glyph before the
// thousand, hundred and ten units.
func (c *Converter) AppendOneBeforeSmallUnits() bool {
	return c.appendOne
}

// OverflowPolicy returns the configured overflow behavior.
func (c *Converter) OverflowPolicy() OverflowPolicy {
	return c.overflow
}

// MaxIntegerDigits returns the longest integer digit count the large unit
// table can name.
func (c *Converter) MaxIntegerDigits() int {
	return len(c.largeUnits) * groupSize
}
