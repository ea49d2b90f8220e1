package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/ports"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TemplateLoaderContractTest is a reusable test suite that verifies if an
// adapter complies with ports.TemplateLoader.
func TemplateLoaderContractTest(t *testing.T, loader ports.TemplateLoader, want map[string]factory.Template) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetTemplate_Success", func(t *testing.T) {
		for id, expected := range want {
			got, err := loader.GetTemplate(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting template %s: %v", id, err)
			}
			if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("template %s mismatch (-want +got):\n%s", id, diff)
			}
		}
	})

	t.Run("GetTemplate_NotFound", func(t *testing.T) {
		_, err := loader.GetTemplate(ctx, "non-existent-template")
		if !errors.Is(err, ports.ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("ListTemplates", func(t *testing.T) {
		ids, err := loader.ListTemplates(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing templates: %v", err)
		}
		if len(ids) != len(want) {
			t.Errorf("expected %d templates, got %d", len(want), len(ids))
		}
		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}
		for id := range want {
			if !lookup[id] {
				t.Errorf("template %s missing from list", id)
			}
		}
	})
}
