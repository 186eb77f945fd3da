// Glyph and unit tables for kanji numeral rendering.
package daiji

// Digit glyph sets indexed by digit value. The zero glyph is emitted only
// when the whole number is zero.
var (
	// DaijiDigits are the modern formal digits used on legal and financial
	// documents. 壱弐参 resist stroke alteration; four through nine have no
	// modern daiji form and keep the everyday glyphs.
	DaijiDigits = []string{"零", "壱", "弐", "参", "四", "五", "六", "七", "八", "九"}

	// OldDaijiDigits are the pre-reform formal digits with a distinct
	// glyph for every value, still seen on banknotes and in registries.
	OldDaijiDigits = []string{"零", "壱", "弐", "参", "肆", "伍", "陸", "漆", "捌", "玖"}

	// CommonDigits are the everyday kanji digits.
	CommonDigits = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
)

// Unit names for the thousand, hundred and ten positions inside a
// four-digit group. The ones position has no unit name.
var (
	DaijiPositionalUnits    = []string{"千", "百", "拾", ""}
	OldDaijiPositionalUnits = []string{"仟", "佰", "拾", ""}
	CommonPositionalUnits   = []string{"千", "百", "十", ""}
)

// Group unit names: entry i names 10^(4i). Entry 0 is the unitless lowest
// group and stays empty.
var (
	// DaijiLargeUnits runs through 無量大数 (10^68), covering integers of
	// up to 72 digits.
	DaijiLargeUnits = []string{
		"", "万", "億", "兆", "京", "垓", "𥝱", "穣", "溝", "澗",
		"正", "載", "極", "恒河沙", "阿僧祇", "那由他", "不可思議", "無量大数",
	}

	// OldDaijiLargeUnits substitutes the pre-reform 萬 for 万.
	OldDaijiLargeUnits = []string{
		"", "萬", "億", "兆", "京", "垓", "𥝱", "穣", "溝", "澗",
		"正", "載", "極", "恒河沙", "阿僧祇", "那由他", "不可思議", "無量大数",
	}
)
