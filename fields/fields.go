// Package fields detects input fields that a caller does not expect.
package fields

import (
	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// Unknown returns the names in data that are not listed in known, in data order.
func Unknown(data value.Fields, known ...string) []string {
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	var unknown []string
	for _, field := range data {
		if _, ok := knownSet[field.Name]; !ok {
			unknown = append(unknown, field.Name)
		}
	}
	return unknown
}

// SearchUnknown reports every field of data that is not listed in known.
//
// One *filtererr.UnknownFieldError is built per unknown field, in data order,
// each chained to the previous one through Previous. The last one is returned,
// so the first unknown field ends up as the innermost cause. A name repeated
// in data is reported once per occurrence, with that occurrence's value.
// Returns nil when every field is known.
func SearchUnknown(data value.Fields, known ...string) error {
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	var err *filtererr.UnknownFieldError
	for _, field := range data {
		if _, ok := knownSet[field.Name]; ok {
			continue
		}

		var previous error
		if err != nil {
			previous = err
		}
		err = filtererr.NewUnknownField(field.Name, field.Value, previous)
	}
	if err == nil {
		return nil
	}
	return err
}
