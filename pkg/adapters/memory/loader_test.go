package memory_test

import (
	"context"
	"testing"

	"github.com/BigRLab/thedom/pkg/adapters/memory"
	"github.com/BigRLab/thedom/pkg/factory"
	contract "github.com/BigRLab/thedom/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	loader, err := memory.NewLoader(map[string]string{
		"greeting": "create: Label\nid: hello\ntext: Hi\n",
		"page":     `{"create": "Box", "childElements": [{"create": "Label"}]}`,
	})
	require.NoError(t, err)

	contract.TemplateLoaderContractTest(t, loader, map[string]factory.Template{
		"greeting": {Create: "Label", ID: "hello", Extra: map[string]any{"text": "Hi"}},
		"page":     {Create: "Box", ChildElements: []factory.Template{{Create: "Label"}}},
	})
}

func TestNewLoader_InvalidTemplate(t *testing.T) {
	_, err := memory.NewLoader(map[string]string{"broken": "id: missing-create\n"})
	assert.ErrorIs(t, err, factory.ErrInvalidTemplate)
}

func TestLoader_Put(t *testing.T) {
	loader := memory.NewFromTemplates(nil)
	loader.Put("a", factory.Template{Create: "Box"})

	tpl, err := loader.GetTemplate(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Box", tpl.Create)

	ids, err := loader.ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}
