package numeral

import "strconv"

// Real is the set of built-in numeric types accepted by FormatReal. The set
// is closed: named types convert to one of these first.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// floatPrec is the digit count after the point for float formatting. With
// the leading digit this gives 35 significant digits, beyond what any
// float64 can distinguish, so no precision is lost.
const floatPrec = 34

// FormatReal renders v as a numeral string accepted by Normalize. Integer
// types format exactly in decimal; float types format in E notation with 35
// significant digits. Non-finite floats format as "NaN" or "±Inf", which
// Normalize rejects.
func FormatReal[T Real](v T) string {
	switch n := any(v).(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case uintptr:
		return strconv.FormatUint(uint64(n), 10)
	case float32:
		return strconv.FormatFloat(float64(n), 'E', floatPrec, 64)
	case float64:
		return strconv.FormatFloat(n, 'E', floatPrec, 64)
	}
	// Unreachable: Real admits no other type.
	return ""
}
