package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned by the decoders when the top-level document is not
// an object/mapping.
var ErrNotObject = errors.New("top-level value is not an object")

// Field is one named input value.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered mapping of input field names to values.
// Order is the order in which names were first seen.
type Fields []Field

// Set stores v under name. An existing name keeps its position.
func (f *Fields) Set(name string, v Value) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = v
			return
		}
	}
	*f = append(*f, Field{Name: name, Value: v})
}

// Get returns the value stored under name.
func (f Fields) Get(name string) (Value, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Null(), false
}

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Names returns the field names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f) }

// FieldsFromMap converts a decoded map. Go maps are unordered, so names are
// sorted lexicographically.
func FieldsFromMap(m map[string]any) Fields {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make(Fields, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: Of(m[name])})
	}
	return fields
}

// FieldsFromStruct converts a protobuf Struct, sorting names lexicographically.
func FieldsFromStruct(s *structpb.Struct) Fields {
	src := s.GetFields()
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make(Fields, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: FromProto(src[name])})
	}
	return fields
}

// DecodeJSON decodes a top-level JSON object, keeping document key order.
// Numbers are decoded as json.Number; nested objects and arrays become
// object values.
func DecodeJSON(data []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json fields: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode json fields: %w", ErrNotObject)
	}

	fields := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode json fields: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode json fields: unexpected token %v", tok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json field %q: %w", name, err)
		}
		fields.Set(name, Of(raw))
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode json fields: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json fields: trailing data after object")
	}

	return fields, nil
}

// DecodeYAML decodes a top-level YAML mapping, keeping document key order.
// An empty document yields no fields. Timestamp scalars such as 2024-01-15
// are kept as strings.
func DecodeYAML(data []byte) (Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml fields: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Fields{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return Fields{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("decode yaml fields: %w", ErrNotObject)
	}

	fields := Fields{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("decode yaml fields: non-scalar key at line %d", keyNode.Line)
		}

		// Timestamps stay as written; coercion decides how to read them.
		if valueNode.Kind == yaml.ScalarNode && valueNode.ShortTag() == "!!timestamp" {
			fields.Set(keyNode.Value, String(valueNode.Value))
			continue
		}

		var raw any
		if err := valueNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode yaml field %q: %w", keyNode.Value, err)
		}
		fields.Set(keyNode.Value, Of(raw))
	}

	return fields, nil
}
