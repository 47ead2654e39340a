package coerce

import "time"

// Sign is a tri-state sign constraint for numeric coercion.
type Sign int

const (
	// SignAny accepts both signs.
	SignAny Sign = iota
	// SignNonNegative requires result >= 0.
	SignNonNegative
	// SignNegative requires result < 0.
	SignNegative
)

// allows reports whether nonNegative satisfies the constraint.
func (s Sign) allows(nonNegative bool) bool {
	switch s {
	case SignNonNegative:
		return nonNegative
	case SignNegative:
		return !nonNegative
	default:
		return true
	}
}

// Option configures a single coercion call. Each function only reads the
// options relevant to its target type and ignores the rest.
type Option func(*options)

type options struct {
	sign        Sign
	zeroToNull  bool
	nonZero     bool
	filter      bool
	emptyToNull bool
	notEmpty    bool
	format      string
	location    *time.Location
	now         func() time.Time
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSign sets the sign constraint for integer and float coercion.
func WithSign(s Sign) Option {
	return func(o *options) {
		o.sign = s
	}
}

// Positive requires a non-negative integer or float.
func Positive() Option {
	return WithSign(SignNonNegative)
}

// Negative requires a negative integer or float.
func Negative() Option {
	return WithSign(SignNegative)
}

// ZeroToNull makes GetInt return nil for a coerced zero.
func ZeroToNull() Option {
	return func(o *options) {
		o.zeroToNull = true
	}
}

// NonZero makes RequireInt reject a coerced zero.
func NonZero() Option {
	return func(o *options) {
		o.nonZero = true
	}
}

// Filter collapses runs of spaces and tabs and trims string input.
// See FilterString.
func Filter() Option {
	return func(o *options) {
		o.filter = true
	}
}

// EmptyToNull makes GetString return nil for an empty (post-filter) string.
func EmptyToNull() Option {
	return func(o *options) {
		o.emptyToNull = true
	}
}

// NotEmpty makes RequireString reject an empty (post-filter) string.
func NotEmpty() Option {
	return func(o *options) {
		o.notEmpty = true
	}
}

// WithFormat parses date-time strings strictly against a Go time layout.
// Integer epoch input is rejected when a format is set.
func WithFormat(layout string) Option {
	return func(o *options) {
		o.format = layout
	}
}

// InLocation parses date-times without an explicit zone in loc and converts
// every result into loc. A nil loc is ignored.
func InLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithClock replaces time.Now as the source of the current time for the
// relative date-time keywords.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
