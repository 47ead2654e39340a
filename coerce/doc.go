// Package coerce converts dynamically-typed input values into typed Go values,
// rejecting anything that does not match.
//
// Every target type has a nullable Get* variant, which returns nil for null
// input without running any conversion, and a required Require* variant,
// which treats null as a failure. Failures are always
// *filtererr.WrongTypeError values describing the expected type and the value
// that was received.
//
// # Usage
//
//	fields, err := value.DecodeJSON(body)
//	if err != nil {
//	    return err
//	}
//
//	raw, _ := fields.Get("age")
//	age, err := coerce.RequireInt(raw, coerce.Positive())
//
//	raw, _ = fields.Get("nickname")
//	nick, err := coerce.GetString(raw, coerce.Filter(), coerce.EmptyToNull())
//
// # Accepted Input
//
//   - Int: integers, canonical decimal strings ("12", "-3"), floats without a fraction
//   - Float: integers, floats, fully numeric strings
//   - Bool: native booleans, or caller-supplied sentinels with the ByValues variants
//   - String: strings only
//   - DateTime: date-time strings, Unix seconds (when no format is given)
//   - UUID: uuid strings and uuid.UUID objects
//
// # Options
//
// Options are passed per call. Each function reads the options that apply to
// it: Positive, Negative and WithSign for numbers; ZeroToNull and NonZero for
// integers; Filter, EmptyToNull and NotEmpty for strings; WithFormat,
// InLocation and WithClock for date-times.
//
// All functions are pure and safe for concurrent use.
package coerce
