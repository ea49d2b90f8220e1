package loam

import (
	"context"
	"testing"

	"github.com/BigRLab/thedom/internal/testutils"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/ports/tests"
	"github.com/aretw0/loam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(t *testing.T, files map[string]string) *Loader {
	t.Helper()
	dir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, dir, files)
	return New(loam.NewTypedRepository[TemplateMetadata](repo))
}

func TestLoader_Contract(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"title.md": `---
create: HeaderLabel
id: heading
---
Welcome`,
		"page.json": `{
  "create": "Box",
  "childElements": [{"create": "Label", "accessor": "greeting"}]
}`,
	})

	tests.TemplateLoaderContractTest(t, loader, map[string]factory.Template{
		"title": {Create: "HeaderLabel", ID: "heading", Extra: map[string]any{"text": "Welcome"}},
		"page": {Create: "Box", ID: "page", ChildElements: []factory.Template{
			{Create: "Label", Accessor: "greeting"},
		}},
	})
}

func TestLoader_ListTemplates_NormalizesIDs(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"start.md":    "---\ncreate: Box\n---\n",
		"choice.json": `{"create": "Select"}`,
	})

	ids, err := loader.ListTemplates(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"start", "choice"}, ids)
}

func TestLoader_ListTemplates_DetectsCollisions(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"foo.md":   "---\ncreate: Box\n---\n",
		"foo.json": `{"create": "Box"}`,
	})

	_, err := loader.ListTemplates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
	assert.Contains(t, err.Error(), "foo")
}

func TestLoader_GetTemplate_TextFromBodyKeepsExplicitText(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"note.md": `---
create: Label
text: Explicit
---
Body is ignored`,
	})

	tpl, err := loader.GetTemplate(context.Background(), "note")
	require.NoError(t, err)
	assert.Equal(t, "Explicit", tpl.AllProperties()["text"])
	assert.Equal(t, "note", tpl.ID)
}

func TestLoader_GetTemplate_Invalid(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"broken.md": "---\nid: nothing\n---\n",
	})

	_, err := loader.GetTemplate(context.Background(), "broken")
	assert.ErrorIs(t, err, factory.ErrInvalidTemplate)
}

func TestDecodeDocument(t *testing.T) {
	tpl, err := decodeDocument("forms/login.md", TemplateMetadata{"create": "Fields"}, "  \n")
	require.NoError(t, err)
	assert.Equal(t, "login", tpl.ID)
	assert.Empty(t, tpl.AllProperties())
}

func TestEncodeTemplate(t *testing.T) {
	meta := encodeTemplate(factory.Template{
		Create:        "Box",
		ID:            "root",
		Properties:    map[string]any{"class": "wide"},
		Extra:         map[string]any{"title": "t"},
		ChildElements: []factory.Template{{Create: "Label", Accessor: "x"}},
	})

	assert.Equal(t, TemplateMetadata{
		"create":     "Box",
		"id":         "root",
		"title":      "t",
		"properties": map[string]any{"class": "wide"},
		"childElements": []any{
			map[string]any{"create": "Label", "accessor": "x"},
		},
	}, meta)

	tpl, err := factory.DecodeTemplate(meta)
	require.NoError(t, err)
	assert.Equal(t, "x", tpl.ChildElements[0].Accessor)
}
