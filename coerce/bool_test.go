package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/datafilter/value"
)

func TestRequireBool(t *testing.T) {
	got, err := RequireBool(value.Bool(true))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = RequireBool(value.Bool(false))
	require.NoError(t, err)
	assert.False(t, got)

	for _, input := range []value.Value{
		value.Null(),
		value.String("true"),
		value.String("1"),
		value.Int(1),
		value.Int(0),
		value.Float(1),
	} {
		_, err := RequireBool(input)
		requireWrongType(t, err, "boolean")
	}
}

func TestGetBool(t *testing.T) {
	got, err := GetBool(value.Null())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetBool(value.Bool(false))
	require.NoError(t, err)
	assert.Equal(t, ptr(false), got)

	got, err = GetBool(value.String("false"))
	requireWrongType(t, err, "boolean")
	assert.Nil(t, got)
}

func TestBoolByValues(t *testing.T) {
	yes, no := value.String("Y"), value.String("N")

	tests := []struct {
		name     string
		input    value.Value
		expected *bool
		failure  string
	}{
		{name: "true sentinel", input: value.String("Y"), expected: ptr(true)},
		{name: "false sentinel", input: value.String("N"), expected: ptr(false)},
		{name: "native true", input: value.Bool(true), expected: ptr(true)},
		{name: "native false", input: value.Bool(false), expected: ptr(false)},
		{name: "unknown string", input: value.String("X"), failure: "boolean by values"},
		{name: "case sensitive", input: value.String("y"), failure: "boolean by values"},
		{name: "other kind", input: value.Int(1), failure: "boolean by values"},
		{name: "null", input: value.Null(), expected: nil, failure: "boolean by values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetBoolByValues(tt.input, yes, no)
			if tt.failure != "" && !tt.input.IsNull() {
				requireWrongType(t, err, tt.failure)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}

			required, err := RequireBoolByValues(tt.input, yes, no)
			if tt.failure != "" {
				requireWrongType(t, err, tt.failure)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tt.expected, required)
		})
	}
}

func TestBoolByValuesStrictMatching(t *testing.T) {
	got, err := RequireBoolByValues(value.Int(1), value.Int(1), value.Int(0))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = RequireBoolByValues(value.Int(0), value.Int(1), value.Int(0))
	require.NoError(t, err)
	assert.False(t, got)

	_, err = RequireBoolByValues(value.String("1"), value.Int(1), value.Int(0))
	requireWrongType(t, err, "boolean by values")

	_, err = RequireBoolByValues(value.Float(1), value.Int(1), value.Int(0))
	requireWrongType(t, err, "boolean by values")
}

func TestBoolByValuesNativePassthroughIgnoresSentinels(t *testing.T) {
	got, err := RequireBoolByValues(value.Bool(true), value.Bool(false), value.Bool(true))
	require.NoError(t, err)
	assert.True(t, got)
}
