package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringType(t *testing.T) {
	typ := String()

	if typ.Name() != "string" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "string")
	}

	tests := []struct {
		value any
		want  string
	}{
		{"hello", "hello"},
		{nil, ""},
		{42, "42"},
		{true, "true"},
		{json.Number("7"), "7"},
	}

	for _, tt := range tests {
		got, err := typ.Coerce(tt.value)
		if err != nil {
			t.Errorf("Coerce(%v) unexpected error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if err := typ.Validate(42); err == nil {
		t.Error("Validate(42) should fail")
	}
}

func TestIntType(t *testing.T) {
	typ := Int()

	if typ.Name() != "int" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "int")
	}

	tests := []struct {
		value   any
		want    any
		wantErr bool
	}{
		{42, 42, false},
		{int64(42), 42, false},
		{float64(42), 42, false},
		{float64(42.5), nil, true},
		{"42", 42, false},
		{" 7 ", 7, false},
		{"3.0", 3, false},
		{json.Number("12"), 12, false},
		{"abc", nil, true},
		{true, nil, true},
		{nil, nil, true},
	}

	for _, tt := range tests {
		got, err := typ.Coerce(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Coerce(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFloatType(t *testing.T) {
	typ := Float()

	tests := []struct {
		value   any
		want    any
		wantErr bool
	}{
		{3.14, 3.14, false},
		{42, 42.0, false},
		{"2.5", 2.5, false},
		{json.Number("1.5"), 1.5, false},
		{"x", nil, true},
		{true, nil, true},
	}

	for _, tt := range tests {
		got, err := typ.Coerce(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Coerce(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestBoolType(t *testing.T) {
	typ := Bool()

	tests := []struct {
		value   any
		want    any
		wantErr bool
	}{
		{true, true, false},
		{false, false, false},
		{nil, false, false},
		{"True", true, false},
		{"on", true, false},
		{"yes", true, false},
		{"1", true, false},
		{"False", false, false},
		{"", false, false},
		{"0", false, false},
		{1, true, false},
		{0, false, false},
		{"maybe", nil, true},
		{[]string{}, nil, true},
	}

	for _, tt := range tests {
		got, err := typ.Coerce(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Coerce(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Coerce(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSliceType(t *testing.T) {
	typ := Slice(Int())

	if typ.Name() != "[int]" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "[int]")
	}

	got, err := typ.Coerce([]string{"1", "2"})
	if err != nil {
		t.Fatalf("Coerce() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("Coerce() = %v, want [1 2]", got)
	}

	got, err = typ.Coerce("5")
	if err != nil || !reflect.DeepEqual(got, []any{5}) {
		t.Errorf("Coerce(\"5\") = %v, %v; want [5]", got, err)
	}

	if _, err := typ.Coerce([]any{"1", "x"}); err == nil {
		t.Error("Coerce() should fail on a bad element")
	}

	if err := typ.Validate([]int{1, 2}); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantErr  bool
	}{
		{"string", "string", false},
		{"int", "int", false},
		{"float", "float", false},
		{"bool", "bool", false},
		{"", "any", false},
		{"any", "any", false},
		{"[string]", "[string]", false},
		{"[[int]]", "[[int]]", false},
		{"date", "", true},
		{"[date]", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := ParseType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && typ.Name() != tt.wantName {
				t.Errorf("ParseType(%q).Name() = %q, want %q", tt.input, typ.Name(), tt.wantName)
			}
		})
	}
}

func TestParseTypeMap(t *testing.T) {
	s, err := ParseTypeMap(map[string]string{"size": "int", "checked": "bool"})
	if err != nil {
		t.Fatalf("ParseTypeMap() unexpected error: %v", err)
	}
	if s["size"].Name() != "int" || s["checked"].Name() != "bool" {
		t.Errorf("ParseTypeMap() = %v", s)
	}

	if _, err := ParseTypeMap(map[string]string{"when": "date"}); err == nil {
		t.Error("ParseTypeMap() should fail for unsupported types")
	}
}
