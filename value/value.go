// Package value provides the dynamic value type consumed by the coercion helpers.
//
// A Value is a tagged union over the shapes decoded input can take: null, boolean,
// integer, float, string, and an opaque structured catch-all for everything else
// (maps, slices, structs, protobuf messages). Coercion code switches on the Kind
// instead of inspecting Go types at runtime.
package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"google.golang.org/protobuf/types/known/structpb"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the absence of a value.
	KindNull Kind = iota
	// KindBool is a native boolean.
	KindBool
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindFloat is a 64-bit floating point number.
	KindFloat
	// KindString is a UTF-8 string.
	KindString
	// KindObject is any structured value the other kinds cannot represent.
	KindObject
)

// String returns the type tag reported in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable dynamically-typed input value.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	obj  any
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Object wraps an arbitrary structured value. A nil v yields null.
func Object(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: v}
}

// Of converts a decoded Go value into a Value.
//
// Signed integers become KindInt, unsigned integers become KindInt when they fit
// in int64, float32/float64 become KindFloat. json.Number is treated as an integer
// when it is a canonical int64, otherwise as a float when it parses, otherwise as
// a string. Anything that is not a scalar is wrapped with Object.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Object(x)
		}
		return Int(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return Object(x)
		}
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return String(x)
	case json.Number:
		return fromJSONNumber(x)
	case *structpb.Value:
		return FromProto(x)
	default:
		return Object(v)
	}
}

func fromJSONNumber(n json.Number) Value {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}

// FromProto converts a protobuf dynamic value. Numbers are always floats, as
// google.protobuf.Value only carries doubles. Struct and list values become
// objects holding their AsInterface form.
func FromProto(pv *structpb.Value) Value {
	if pv == nil {
		return Null()
	}
	switch k := pv.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		return Float(k.NumberValue)
	case *structpb.Value_StringValue:
		return String(k.StringValue)
	case *structpb.Value_StructValue:
		return Object(k.StructValue.AsMap())
	case *structpb.Value_ListValue:
		return Object(k.ListValue.AsSlice())
	default:
		return Null()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Interface returns the payload as a plain Go value (nil for null).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindObject:
		return v.obj
	default:
		return nil
	}
}

// TypeName returns the runtime tag of v. Objects report their concrete Go type.
func (v Value) TypeName() string {
	if v.kind == KindObject {
		return fmt.Sprintf("%T", v.obj)
	}
	return v.kind.String()
}

// Equal reports strict identity: same kind and same payload.
// An integer never equals a float or a string with the same digits.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	default:
		return reflect.DeepEqual(v.obj, other.obj)
	}
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return trimNewline(dumper.Sdump(v.obj))
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
