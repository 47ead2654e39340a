package coerce

import (
	"github.com/google/uuid"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// GetUUID returns nil for null input and otherwise behaves like RequireUUID.
func GetUUID(v value.Value) (*uuid.UUID, error) {
	if v.IsNull() {
		return nil, nil
	}

	id, err := RequireUUID(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// RequireUUID accepts a uuid.UUID object or any string form uuid.Parse
// understands (canonical, braced, "urn:uuid:" prefixed, or 32 hex digits).
func RequireUUID(v value.Value) (uuid.UUID, error) {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, filtererr.NewWrongType("uuid", v).WithPrevious(err)
		}
		return id, nil
	case value.KindObject:
		if id, ok := v.Interface().(uuid.UUID); ok {
			return id, nil
		}
	}
	return uuid.Nil, filtererr.NewWrongType("uuid", v)
}
