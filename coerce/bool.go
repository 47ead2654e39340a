package coerce

import (
	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// GetBool returns nil for null input and otherwise behaves like RequireBool.
func GetBool(v value.Value) (*bool, error) {
	if v.IsNull() {
		return nil, nil
	}

	b, err := RequireBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// RequireBool accepts native booleans only. Strings such as "true" or "1"
// are rejected.
func RequireBool(v value.Value) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}
	return false, filtererr.NewWrongType("boolean", v)
}

// GetBoolByValues maps the sentinels trueValue and falseValue to true and
// false. Native booleans pass through unchanged. Sentinels are matched
// strictly, so value.Int(1) does not match value.String("1"). Null input that
// matches neither sentinel yields nil.
func GetBoolByValues(v, trueValue, falseValue value.Value) (*bool, error) {
	if b, ok := v.AsBool(); ok {
		return &b, nil
	}

	if !v.Equal(trueValue) && !v.Equal(falseValue) {
		if v.IsNull() {
			return nil, nil
		}
		return nil, filtererr.NewWrongType("boolean by values", v)
	}

	b := v.Equal(trueValue)
	return &b, nil
}

// RequireBoolByValues is GetBoolByValues without the null passthrough.
func RequireBoolByValues(v, trueValue, falseValue value.Value) (bool, error) {
	if b, ok := v.AsBool(); ok {
		return b, nil
	}

	if !v.Equal(trueValue) && !v.Equal(falseValue) {
		return false, filtererr.NewWrongType("boolean by values", v)
	}
	return v.Equal(trueValue), nil
}
