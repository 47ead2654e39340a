package coerce

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

const numericSpace = " \t\n\r\v\f"

// Decimal numbers with optional sign, fraction and exponent. Hex floats and
// the Inf/NaN words that strconv would accept are excluded.
var numericString = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// GetFloat returns nil for null input and otherwise behaves like RequireFloat.
func GetFloat(v value.Value, opts ...Option) (*float64, error) {
	if v.IsNull() {
		return nil, nil
	}

	f, err := RequireFloat(v, opts...)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// RequireFloat coerces integers, floats and numeric strings to a float.
// Numeric strings must parse completely; surrounding ASCII whitespace is
// allowed. Honours Positive/Negative.
func RequireFloat(v value.Value, opts ...Option) (float64, error) {
	f, ok := floatOf(v)
	if !ok {
		return 0, filtererr.NewWrongType("float", v)
	}

	o := newOptions(opts)
	if !o.sign.allows(f >= 0) {
		return 0, filtererr.NewWrongType(signed(o.sign, "float"), v)
	}
	return f, nil
}

func floatOf(v value.Value) (float64, bool) {
	switch v.Kind() {
	case value.KindInt:
		n, _ := v.AsInt()
		return float64(n), true
	case value.KindFloat:
		return v.AsFloat()
	case value.KindString:
		s, _ := v.AsString()
		if !numericString.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.Trim(s, numericSpace), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
