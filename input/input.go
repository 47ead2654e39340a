package input

import (
	"fmt"
	"time"

	"github.com/zero-day-ai/datafilter/coerce"
	"github.com/zero-day-ai/datafilter/value"
)

// FieldError wraps a coercion failure with the name of the field it came from.
type FieldError struct {
	// Field is the input field name.
	Field string

	// Err is the underlying coercion error.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

// Unwrap returns the coercion error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func lookup(m value.Fields, key string) value.Value {
	v, _ := m.Get(key)
	return v
}

func wrap[T any](key string, result T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, &FieldError{Field: key, Err: err}
	}
	return result, nil
}

// GetString extracts an optional string field.
func GetString(m value.Fields, key string, opts ...coerce.Option) (*string, error) {
	s, err := coerce.GetString(lookup(m, key), opts...)
	return wrap(key, s, err)
}

// RequireString extracts a mandatory string field.
func RequireString(m value.Fields, key string, opts ...coerce.Option) (string, error) {
	s, err := coerce.RequireString(lookup(m, key), opts...)
	return wrap(key, s, err)
}

// GetInt extracts an optional integer field.
func GetInt(m value.Fields, key string, opts ...coerce.Option) (*int64, error) {
	n, err := coerce.GetInt(lookup(m, key), opts...)
	return wrap(key, n, err)
}

// RequireInt extracts a mandatory integer field.
func RequireInt(m value.Fields, key string, opts ...coerce.Option) (int64, error) {
	n, err := coerce.RequireInt(lookup(m, key), opts...)
	return wrap(key, n, err)
}

// GetFloat64 extracts an optional float field.
func GetFloat64(m value.Fields, key string, opts ...coerce.Option) (*float64, error) {
	f, err := coerce.GetFloat(lookup(m, key), opts...)
	return wrap(key, f, err)
}

// RequireFloat64 extracts a mandatory float field.
func RequireFloat64(m value.Fields, key string, opts ...coerce.Option) (float64, error) {
	f, err := coerce.RequireFloat(lookup(m, key), opts...)
	return wrap(key, f, err)
}

// GetBool extracts an optional native boolean field.
func GetBool(m value.Fields, key string) (*bool, error) {
	b, err := coerce.GetBool(lookup(m, key))
	return wrap(key, b, err)
}

// RequireBool extracts a mandatory native boolean field.
func RequireBool(m value.Fields, key string) (bool, error) {
	b, err := coerce.RequireBool(lookup(m, key))
	return wrap(key, b, err)
}

// GetTime extracts an optional date-time field. Empty strings, "0" and the
// integer 0 count as absent.
func GetTime(m value.Fields, key string, opts ...coerce.Option) (*time.Time, error) {
	t, err := coerce.GetDateTime(lookup(m, key), opts...)
	return wrap(key, t, err)
}

// RequireTime extracts a mandatory date-time field.
func RequireTime(m value.Fields, key string, opts ...coerce.Option) (time.Time, error) {
	t, err := coerce.RequireDateTime(lookup(m, key), opts...)
	return wrap(key, t, err)
}
