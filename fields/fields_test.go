package fields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

func abc() value.Fields {
	return value.Fields{
		{Name: "a", Value: value.Int(1)},
		{Name: "b", Value: value.Int(2)},
		{Name: "c", Value: value.Int(3)},
	}
}

func TestSearchUnknownSingle(t *testing.T) {
	err := SearchUnknown(abc(), "a", "b")
	require.Error(t, err)

	var unknown *filtererr.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "c", unknown.Name)
	assert.True(t, value.Int(3).Equal(unknown.Value))
	assert.Equal(t, "integer", unknown.Type)
	assert.Nil(t, unknown.Previous)
	assert.ErrorIs(t, err, filtererr.ErrUnknownField)
}

func TestSearchUnknownNone(t *testing.T) {
	assert.NoError(t, SearchUnknown(abc(), "a", "b", "c"))
	assert.NoError(t, SearchUnknown(abc(), "c", "b", "a", "extra"))
	assert.NoError(t, SearchUnknown(nil))
	assert.NoError(t, SearchUnknown(value.Fields{}, "a"))
}

func TestSearchUnknownChainOrder(t *testing.T) {
	data := value.Fields{
		{Name: "a", Value: value.Int(1)},
		{Name: "x", Value: value.Int(2)},
		{Name: "y", Value: value.Int(3)},
	}

	err := SearchUnknown(data, "a")

	var outer *filtererr.UnknownFieldError
	require.ErrorAs(t, err, &outer)
	assert.Equal(t, "y", outer.Name)

	var inner *filtererr.UnknownFieldError
	require.ErrorAs(t, outer.Previous, &inner)
	assert.Equal(t, "x", inner.Name)
	assert.Nil(t, inner.Previous)

	assert.ErrorIs(t, err, &filtererr.UnknownFieldError{Name: "x"})
	assert.Same(t, inner, errors.Unwrap(outer))

	chain := outer.Chain()
	require.Len(t, chain, 2)
	assert.Equal(t, "x", chain[0].Name)
	assert.Equal(t, "y", chain[1].Name)
}

func TestSearchUnknownRepeatedName(t *testing.T) {
	data := value.Fields{
		{Name: "x", Value: value.Int(1)},
		{Name: "x", Value: value.Int(2)},
	}

	err := SearchUnknown(data)

	var unknown *filtererr.UnknownFieldError
	require.ErrorAs(t, err, &unknown)

	chain := unknown.Chain()
	require.Len(t, chain, 2)
	assert.True(t, value.Int(1).Equal(chain[0].Value))
	assert.True(t, value.Int(2).Equal(chain[1].Value))
}

func TestSearchUnknownEveryFieldUnknown(t *testing.T) {
	err := SearchUnknown(abc())

	var outer *filtererr.UnknownFieldError
	require.ErrorAs(t, err, &outer)

	names := make([]string, 0, 3)
	for _, e := range outer.Chain() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestSearchUnknownDoesNotMutate(t *testing.T) {
	data := abc()
	before := append(value.Fields(nil), data...)

	_ = SearchUnknown(data, "a")
	assert.Equal(t, before, data)
}

func TestSearchUnknownWithDecodedInput(t *testing.T) {
	data, err := value.DecodeJSON([]byte(`{"name": "x", "zzz": true, "aaa": null}`))
	require.NoError(t, err)

	err = SearchUnknown(data, "name")

	var outer *filtererr.UnknownFieldError
	require.ErrorAs(t, err, &outer)
	assert.Equal(t, "aaa", outer.Name)
	assert.Equal(t, "null", outer.Type)
	assert.Equal(t, "unknown field named aaa typed null with value: null", outer.Error())

	var inner *filtererr.UnknownFieldError
	require.ErrorAs(t, outer.Previous, &inner)
	assert.Equal(t, "zzz", inner.Name)
	assert.Equal(t, "boolean", inner.Type)
}

func TestUnknown(t *testing.T) {
	assert.Equal(t, []string{"b", "c"}, Unknown(abc(), "a"))
	assert.Empty(t, Unknown(abc(), "a", "b", "c"))
	assert.Nil(t, Unknown(nil, "a"))
}
