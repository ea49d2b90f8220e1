package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Type defines the contract for property values.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value already has this type's Go representation.
	Validate(value any) error
	// Coerce converts a loosely typed value into this type's Go representation.
	Coerce(value any) (any, error)
}

// --- Built-in Type Implementations ---

// AnyType accepts every value unchanged.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

func (t *AnyType) Validate(value any) error { return nil }

func (t *AnyType) Coerce(value any) (any, error) { return value, nil }

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

func (t *StringType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == math.Trunc(v) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

func (t *IntType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return int(reflect.ValueOf(v).Convert(reflect.TypeOf(0)).Int()), nil
	case float32:
		return wholeFloat(float64(v))
	case float64:
		return wholeFloat(v)
	case json.Number:
		return parseInt(v.String())
	case string:
		return parseInt(v)
	default:
		return nil, fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates floating-point values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

func (t *FloatType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return reflect.ValueOf(v).Convert(reflect.TypeOf(0.0)).Float(), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("expected float, got %q", v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

func (t *BoolType) Coerce(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case json.Number:
		return v.String() != "0", nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "yes", "checked":
			return true, nil
		case "false", "0", "off", "no", "":
			return false, nil
		}
		return nil, fmt.Errorf("expected bool, got %q", v)
	default:
		return nil, fmt.Errorf("expected bool, got %T", value)
	}
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}

	// Validate each element
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// Coerce converts every element. A single non-slice value becomes a one
// element slice; nil becomes an empty slice.
func (t *SliceType) Coerce(value any) (any, error) {
	if value == nil {
		return []any{}, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		elem, err := t.elemType.Coerce(value)
		if err != nil {
			return nil, err
		}
		return []any{elem}, nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		elem, err := t.elemType.Coerce(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = elem
	}
	return out, nil
}

// --- Factory Functions ---

// Any creates a pass-through type.
func Any() Type { return &AnyType{} }

// String creates a string type.
func String() Type { return &StringType{} }

// Int creates an integer type.
func Int() Type { return &IntType{} }

// Float creates a float type.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type.
func Bool() Type { return &BoolType{} }

// Slice creates a slice type for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// ParseType converts a string type name to a Type.
// Supports basic types: "string", "int", "float", "bool", "any", "[string]", "[int]", etc.
// The empty string parses as "any".
func ParseType(typeStr string) (Type, error) {
	// Handle slice types: [string], [int], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "", "any":
		return Any(), nil
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of property names to type strings into a Schema.
// Example: {"size": "int", "checked": "bool"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}

func wholeFloat(f float64) (any, error) {
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected int, got float (not a whole number)")
	}
	return int(f), nil
}

func parseInt(s string) (any, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("expected int, got %q", s)
	}
	return wholeFloat(f)
}
