// Package filtererr provides the structured errors returned by the coercion
// helpers and the unknown-field scanner.
//
// Both error types carry an optional Previous error forming a singly-linked
// cause chain, exposed through Unwrap so errors.Is and errors.As walk it.
package filtererr

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/zero-day-ai/datafilter/value"
)

// MaxValueLength is the number of characters of a rendered value kept in
// error messages before it is cut and suffixed with an ellipsis.
const MaxValueLength = 200

// Sentinel errors matched by the structured types through errors.Is.
var (
	// ErrWrongType matches every *WrongTypeError.
	ErrWrongType = errors.New("wrong type")

	// ErrUnknownField matches every *UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")
)

// WrongTypeError reports a value that could not be coerced into the expected
// type or did not satisfy a constraint.
type WrongTypeError struct {
	// Expected describes the target type or constraint, e.g. "positive integer".
	Expected string

	// Received is the type tag of Value.
	Received string

	// Value is the offending input.
	Value value.Value

	// Previous is the error that preceded this one, if any.
	Previous error
}

// NewWrongType creates a WrongTypeError for v.
//
// Example:
//
//	err := filtererr.NewWrongType("integer", value.String("1.5"))
func NewWrongType(expected string, v value.Value) *WrongTypeError {
	return &WrongTypeError{
		Expected: expected,
		Received: v.TypeName(),
		Value:    v,
	}
}

// WithPrevious sets the preceding error and returns the same instance.
func (e *WrongTypeError) WithPrevious(err error) *WrongTypeError {
	e.Previous = err
	return e
}

// Error implements the error interface.
func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("expected value typed %s but received %s with value: %s",
		e.Expected, e.Received, Truncate(e.Value.String()))
}

// Unwrap returns the previous error.
func (e *WrongTypeError) Unwrap() error {
	return e.Previous
}

// Is matches ErrWrongType, and another *WrongTypeError with the same Expected
// description.
func (e *WrongTypeError) Is(target error) bool {
	if target == ErrWrongType {
		return true
	}
	t, ok := target.(*WrongTypeError)
	return ok && t.Expected == e.Expected
}

// LogValue implements slog.LogValuer.
func (e *WrongTypeError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("expected", e.Expected),
		slog.String("received", e.Received),
		slog.String("value", Truncate(e.Value.String())),
	)
}

// UnknownFieldError reports an input field that is not in the known set.
type UnknownFieldError struct {
	// Name is the field name.
	Name string

	// Value is the value supplied for the field.
	Value value.Value

	// Type is the type tag of Value.
	Type string

	// Previous is the error for the previously discovered unknown field.
	Previous error
}

// NewUnknownField creates an UnknownFieldError chained to previous (which may be nil).
func NewUnknownField(name string, v value.Value, previous error) *UnknownFieldError {
	return &UnknownFieldError{
		Name:     name,
		Value:    v,
		Type:     v.TypeName(),
		Previous: previous,
	}
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field named %s typed %s with value: %s",
		e.Name, e.Type, Truncate(e.Value.String()))
}

// Unwrap returns the previous error.
func (e *UnknownFieldError) Unwrap() error {
	return e.Previous
}

// Is matches ErrUnknownField, and another *UnknownFieldError with the same Name.
func (e *UnknownFieldError) Is(target error) bool {
	if target == ErrUnknownField {
		return true
	}
	t, ok := target.(*UnknownFieldError)
	return ok && t.Name == e.Name
}

// Chain returns e and every UnknownFieldError reachable through Previous,
// ordered from the first discovered field to e.
func (e *UnknownFieldError) Chain() []*UnknownFieldError {
	var chain []*UnknownFieldError
	for cur := e; cur != nil; {
		chain = append(chain, cur)
		var next *UnknownFieldError
		if !errors.As(cur.Previous, &next) {
			break
		}
		cur = next
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// LogValue implements slog.LogValuer.
func (e *UnknownFieldError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("field", e.Name),
		slog.String("type", e.Type),
		slog.String("value", Truncate(e.Value.String())),
	)
}

// Truncate cuts s to MaxValueLength grapheme clusters. A cut string has its
// trailing whitespace removed and "..." appended.
func Truncate(s string) string {
	iter := graphemes.FromString(s)
	count := 0
	for iter.Next() {
		count++
		if count == MaxValueLength {
			if iter.End() == len(s) {
				return s
			}
			return strings.TrimRight(s[:iter.End()], " \t\n\r\x00\x0B") + "..."
		}
	}
	return s
}
