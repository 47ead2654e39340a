// Package datafilter validates untrusted input at the boundary of an application.
//
// Input decoded from JSON, YAML, form data or protobuf Structs arrives as
// loosely typed values. The packages in this module turn those values into
// typed Go values or reject them with structured errors.
//
// # Packages
//
//   - value: the dynamic value type (null, bool, int, float, string, object)
//     and ordered field mappings, with decoders for JSON, YAML and protobuf input
//   - coerce: Get*/Require* coercion into integers, floats, booleans, strings,
//     date-times and UUIDs, with per-call options
//   - fields: detection of unexpected input fields
//   - input: keyed helpers that coerce a named field and report its name on
//     failure
//   - filtererr: the WrongTypeError and UnknownFieldError types
//
// # Getting Started
//
//	data, err := value.DecodeJSON(body)
//	if err != nil {
//		return err
//	}
//
//	if err := fields.SearchUnknown(data, "id", "email", "limit"); err != nil {
//		return err
//	}
//
//	raw, _ := data.Get("limit")
//	limit, err := coerce.GetInt(raw, coerce.Positive(), coerce.ZeroToNull())
//	if err != nil {
//		return err
//	}
//
// # Error Handling
//
// Coercion failures are *filtererr.WrongTypeError values; unknown fields are
// reported as a chain of *filtererr.UnknownFieldError values. Both work with
// errors.Is and errors.As:
//
//	if errors.Is(err, filtererr.ErrWrongType) {
//		// reject the request
//	}
//
// Both types implement slog.LogValuer, so logging them with log/slog emits
// structured attributes instead of a flat message.
//
// # Thread Safety
//
// Every function is pure: no shared state, no I/O. All of them are safe for
// concurrent use.
package datafilter
