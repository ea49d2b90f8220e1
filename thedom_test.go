package thedom_test

import (
	"context"
	"testing"

	"github.com/BigRLab/thedom"
	"github.com/BigRLab/thedom/internal/testutils"
	"github.com/BigRLab/thedom/pkg/adapters/memory"
	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/document"
	"github.com/BigRLab/thedom/pkg/dom"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/fields"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/ports"
	"github.com/BigRLab/thedom/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, sources map[string]string) *thedom.Engine {
	t.Helper()
	loader, err := memory.NewLoader(sources)
	require.NoError(t, err)
	eng, err := thedom.New("", thedom.WithLoader(loader))
	require.NoError(t, err)
	return eng
}

func TestNewFactory_Resolution(t *testing.T) {
	f := thedom.NewFactory(settings.Default(), dom.Default())

	tests := []struct {
		product string
		check   func(t *testing.T, n node.Node)
	}{
		{"Label", func(t *testing.T, n node.Node) {
			_, ok := n.(*dom.Tag)
			assert.True(t, ok, "unqualified Label resolves to the tag")
		}},
		{"Display.Label", func(t *testing.T, n node.Node) {
			_, ok := n.(*display.Label)
			assert.True(t, ok)
		}},
		{"TextField", func(t *testing.T, n node.Node) {
			_, ok := n.(*fields.TextField)
			assert.True(t, ok)
		}},
		{"Document", func(t *testing.T, n node.Node) {
			_, ok := n.(*document.Document)
			assert.True(t, ok)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			n, err := f.Build(tt.product, "x", "")
			require.NoError(t, err)
			tt.check(t, n)
		})
	}

	_, err := f.Build("Nope", "", "")
	assert.ErrorIs(t, err, factory.ErrUnknownProduct)
}

func TestEngine_Render(t *testing.T) {
	eng := newEngine(t, map[string]string{
		"greeting": `
create: Box
id: main
childElements:
  - create: Display.Label
    id: hello
    accessor: hello
    text: Hi
  - create: TextBox
    id: who
`,
	})
	ctx := context.Background()

	ids, err := eng.Templates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting"}, ids)

	html, err := eng.Render(ctx, "greeting", map[string]any{"who": "Ada"}, false)
	require.NoError(t, err)
	assert.Equal(t,
		`<div name="main" id="main"><span name="hello" id="hello">Hi</span><input name="who" id="who" value="Ada" type="text" /></div>`,
		html)

	page, err := eng.Load(ctx, "greeting")
	require.NoError(t, err)
	assert.IsType(t, &display.Label{}, page.Accessor("hello"))
	page.Bind(map[string]any{"who": "Grace"})
	assert.Equal(t, "Grace", page.Export(true)["who"])
}

func TestEngine_LoadMissing(t *testing.T) {
	eng := newEngine(t, map[string]string{})

	_, err := eng.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrTemplateNotFound)
}

func TestEngine_NoLoader(t *testing.T) {
	eng, err := thedom.New("")
	require.NoError(t, err)

	_, err = eng.Templates(context.Background())
	assert.ErrorIs(t, err, thedom.ErrNoLoader)
	_, err = eng.Watch(context.Background())
	assert.ErrorIs(t, err, thedom.ErrNotWatchable)

	page, err := eng.Build(factory.Template{Create: "Paragraph", Extra: map[string]any{"text": "plain"}})
	require.NoError(t, err)
	assert.Equal(t, "<p>plain</p>", page.HTML(false))
}

func TestPage_Scripts(t *testing.T) {
	root := node.New("div", "", "")
	page, err := thedom.NewPage(root, nil)
	require.NoError(t, err)
	root.AddScript(node.JS("init();"))

	assert.Equal(t, `<div></div><script type="text/javascript">init();</script>`, page.HTML(false))
}

func TestPage_DocumentScripts(t *testing.T) {
	doc := document.NewDocument("", "")
	page, err := thedom.NewPage(doc, nil)
	require.NoError(t, err)
	doc.AddScript(node.JS("init();"))

	html := page.HTML(false)
	assert.Contains(t, html, `<body><script type="text/javascript">init();</script></body>`)
}

func TestPage_DocumentBodyRejectsScripts(t *testing.T) {
	doc := document.NewDocument("", "")
	doc.Body().SetAllowsChildren(false)

	_, err := thedom.NewPage(doc, nil)
	assert.ErrorIs(t, err, node.ErrChildrenNotAllowed)
}

func TestEngine_LoamRepository(t *testing.T) {
	dir, _ := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, dir, map[string]string{
		"intro.md": "---\ncreate: Paragraph\n---\nWelcome",
	})

	eng, err := thedom.New(dir)
	require.NoError(t, err)

	html, err := eng.Render(context.Background(), "intro", nil, false)
	require.NoError(t, err)
	assert.Equal(t, `<p name="intro" id="intro">Welcome</p>`, html)
}
