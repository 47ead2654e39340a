// Package input provides keyed helpers for coercing values out of decoded
// input fields.
//
// Each helper looks up key in the fields, runs the matching coerce function
// and, on failure, wraps the *filtererr.WrongTypeError with the field name. A
// missing key is treated as null, so Get* helpers return nil and Require*
// helpers fail.
//
// # Usage
//
// Extract values from a decoded configuration document:
//
//	config, err := value.DecodeYAML(raw)
//	if err != nil {
//		return err
//	}
//
//	host, err := input.RequireString(config, "host", coerce.Filter())
//	if err != nil {
//		return err
//	}
//	port, err := input.RequireInt(config, "port", coerce.Positive())
//	if err != nil {
//		return err
//	}
//
// Errors name the offending field:
//
//	field port: expected value typed positive integer but received integer with value: -1
package input
