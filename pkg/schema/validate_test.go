package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestCoerce_Success(t *testing.T) {
	s := Schema{
		"size":    Int(),
		"checked": Bool(),
		"title":   String(),
	}

	got, err := Coerce(s, map[string]any{
		"size":    "4",
		"checked": "True",
		"title":   "Name",
		"extra":   []int{1},
	})
	if err != nil {
		t.Fatalf("Coerce() error = %v, want nil", err)
	}

	if got["size"] != 4 || got["checked"] != true || got["title"] != "Name" {
		t.Errorf("Coerce() = %v", got)
	}
	if _, ok := got["extra"]; !ok {
		t.Error("untyped properties must be kept")
	}
}

func TestCoerce_Errors(t *testing.T) {
	s := Schema{"size": Int(), "checked": Bool()}

	got, err := Coerce(s, map[string]any{"size": "big", "checked": "maybe", "title": "x"})
	if err == nil {
		t.Fatal("Coerce() should fail")
	}

	errs := ValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("Coerce() = %d errors, want 2", len(errs))
	}

	var verr *ValidationError
	if !errors.As(errs[0], &verr) || verr.Key != "checked" {
		t.Errorf("first error should be for %q, got %v", "checked", errs[0])
	}
	if _, ok := got["size"]; ok {
		t.Error("failing properties must be left out")
	}
	if got["title"] != "x" {
		t.Error("valid properties must be kept")
	}
}

func TestValidationError_String(t *testing.T) {
	err := &ValidationError{Key: "size", Reason: "expected int"}
	if err.Error() != `property "size": expected int` {
		t.Errorf("Error() = %q", err.Error())
	}

	err = &ValidationError{Key: "size", Reason: "expected int", Value: "x"}
	if err.Error() != `property "size": expected int (got string)` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAggregateError_String(t *testing.T) {
	single := &AggregateError{Errors: []error{errors.New("one")}}
	if single.Error() != "one" {
		t.Errorf("Error() = %q", single.Error())
	}

	multi := &AggregateError{Errors: []error{errors.New("one"), errors.New("two")}}
	if !strings.HasPrefix(multi.Error(), "2 property errors:") {
		t.Errorf("Error() = %q", multi.Error())
	}

	sentinel := errors.New("sentinel")
	wrapped := &AggregateError{Errors: []error{errors.New("x"), sentinel}}
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is should see through AggregateError")
	}
	if ValidationErrors(sentinel) != nil {
		t.Error("ValidationErrors() should be nil for other errors")
	}
}
