package coerce

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// spaces and tabs, including the no-break space
var blankRun = regexp.MustCompile(`[ \t\x{00A0}]+`)

// FilterString collapses every run of spaces and tabs into a single space and
// trims leading and trailing Unicode whitespace.
func FilterString(s string) string {
	return strings.TrimFunc(blankRun.ReplaceAllString(s, " "), unicode.IsSpace)
}

// GetString returns nil for null input, otherwise the string payload.
// Honours Filter and EmptyToNull; non-string input is rejected.
func GetString(v value.Value, opts ...Option) (*string, error) {
	if v.IsNull() {
		return nil, nil
	}

	s, ok := v.AsString()
	if !ok {
		return nil, filtererr.NewWrongType("string or null", v)
	}

	o := newOptions(opts)
	if o.filter {
		s = FilterString(s)
	}
	if o.emptyToNull && s == "" {
		return nil, nil
	}
	return &s, nil
}

// RequireString returns the string payload, rejecting null and non-string
// input with the "string" description. Honours Filter and NotEmpty; an empty
// result under NotEmpty fails with the "not empty string" description.
func RequireString(v value.Value, opts ...Option) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", filtererr.NewWrongType("string", v)
	}

	o := newOptions(opts)
	if o.filter {
		s = FilterString(s)
	}
	if o.notEmpty && s == "" {
		return "", filtererr.NewWrongType("not empty string", v)
	}
	return s, nil
}

// GetStringEmptyToNull is GetString with EmptyToNull.
//
// Deprecated: use GetString with EmptyToNull.
func GetStringEmptyToNull(v value.Value, opts ...Option) (*string, error) {
	return GetString(v, append(opts, EmptyToNull())...)
}

// RequireNotEmptyString is RequireString with NotEmpty.
//
// Deprecated: use RequireString with NotEmpty.
func RequireNotEmptyString(v value.Value, opts ...Option) (string, error) {
	return RequireString(v, append(opts, NotEmpty())...)
}

// RequireStringEmptyToNull rejects null and non-string input like
// RequireString, then maps an empty result to nil.
//
// Deprecated: use GetString with EmptyToNull, or RequireString with NotEmpty.
func RequireStringEmptyToNull(v value.Value, opts ...Option) (*string, error) {
	s, err := RequireString(v, opts...)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}
