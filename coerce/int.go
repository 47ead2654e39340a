package coerce

import (
	"math"
	"strconv"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// GetInt coerces v to an integer, returning nil for null input.
//
// Accepted input is an integer, a string that is the canonical decimal
// rendering of an integer ("42", "-7"; not "042", "+7" or " 7"), or a float
// with no fractional part. Honours Positive/Negative and ZeroToNull.
func GetInt(v value.Value, opts ...Option) (*int64, error) {
	if v.IsNull() {
		return nil, nil
	}

	o := newOptions(opts)
	n, err := toInt(v, o.sign)
	if err != nil {
		return nil, err
	}

	if o.zeroToNull && n == 0 {
		return nil, nil
	}
	return &n, nil
}

// RequireInt coerces v to an integer and fails on null input.
// With NonZero, a coerced zero is rejected as well.
func RequireInt(v value.Value, opts ...Option) (int64, error) {
	o := newOptions(opts)

	expected := "integer"
	if o.nonZero {
		expected = "non-zero integer"
	}
	if v.IsNull() {
		return 0, filtererr.NewWrongType(expected, v)
	}

	n, err := toInt(v, o.sign)
	if err != nil {
		return 0, err
	}
	if o.nonZero && n == 0 {
		return 0, filtererr.NewWrongType(expected, v)
	}
	return n, nil
}

// RequireIntZeroToNull coerces v to an integer, fails on null input, and
// returns nil when the coerced integer is zero.
func RequireIntZeroToNull(v value.Value, opts ...Option) (*int64, error) {
	if v.IsNull() {
		return nil, filtererr.NewWrongType("integer", v)
	}

	o := newOptions(opts)
	n, err := toInt(v, o.sign)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil
	}
	return &n, nil
}

func toInt(v value.Value, sign Sign) (int64, error) {
	n, ok := intOf(v)
	if !ok {
		return 0, filtererr.NewWrongType("integer", v)
	}

	if !sign.allows(n >= 0) {
		return 0, filtererr.NewWrongType(signed(sign, "integer"), v)
	}
	return n, nil
}

func intOf(v value.Value) (int64, bool) {
	switch v.Kind() {
	case value.KindInt:
		n, _ := v.AsInt()
		return n, true
	case value.KindString:
		s, _ := v.AsString()
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || strconv.FormatInt(n, 10) != s {
			return 0, false
		}
		return n, true
	case value.KindFloat:
		f, _ := v.AsFloat()
		// 2^63 is exactly representable; anything at or above it overflows int64.
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		n := int64(f)
		if float64(n) != f {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func signed(sign Sign, typ string) string {
	if sign == SignNegative {
		return "negative " + typ
	}
	return "positive " + typ
}
