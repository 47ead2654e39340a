package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/datafilter/filtererr"
)

// requireWrongType asserts err is a *filtererr.WrongTypeError with the given description.
func requireWrongType(t *testing.T, err error, expected string) *filtererr.WrongTypeError {
	t.Helper()

	var wt *filtererr.WrongTypeError
	require.ErrorAs(t, err, &wt)
	assert.Equal(t, expected, wt.Expected)
	return wt
}

func ptr[T any](v T) *T {
	return &v
}
