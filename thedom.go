package thedom

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/BigRLab/thedom/internal/logging"
	loamAdapter "github.com/BigRLab/thedom/pkg/adapters/loam"
	"github.com/BigRLab/thedom/pkg/dataviews"
	"github.com/BigRLab/thedom/pkg/display"
	"github.com/BigRLab/thedom/pkg/document"
	"github.com/BigRLab/thedom/pkg/dom"
	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/fields"
	"github.com/BigRLab/thedom/pkg/inputs"
	"github.com/BigRLab/thedom/pkg/layout"
	"github.com/BigRLab/thedom/pkg/node"
	"github.com/BigRLab/thedom/pkg/ports"
	"github.com/BigRLab/thedom/pkg/resources"
	"github.com/BigRLab/thedom/pkg/settings"
	"github.com/aretw0/loam"
)

// Version of the library and CLI.
const Version = "0.4.0"

// Engine is the high-level entry point of the library. It owns the composed
// element factory and an optional template loader.
type Engine struct {
	settings settings.Settings
	logger   *slog.Logger
	loader   ports.TemplateLoader
	catalog  *dom.Catalog
	factory  *factory.Composite
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSettings replaces the default settings.
func WithSettings(s settings.Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithLoader injects a custom TemplateLoader, bypassing the default Loam initialization.
func WithLoader(l ports.TemplateLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// New initializes an Engine. A non empty repoPath opens a read only Loam
// repository of templates there unless WithLoader was given. With neither,
// the engine can still build templates passed to it directly.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{settings: settings.Default()}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.loader == nil && repoPath != "" {
		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)

		// Strict mode keeps numbers as json.Number across JSON and YAML
		// documents; templates are never written by the engine.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}
		eng.loader = loamAdapter.New(loam.NewTypedRepository[loamAdapter.TemplateMetadata](repo))
	} else if repoPath != "" {
		eng.Name = filepath.Base(repoPath)
	}

	if eng.Name != "" {
		eng.logger = eng.logger.With("templates", eng.Name)
	}

	catalog, err := dom.NewCatalog(eng.settings)
	if err != nil {
		return nil, err
	}
	eng.catalog = catalog
	eng.factory = NewFactory(eng.settings, catalog, factory.WithLogger(eng.logger))
	return eng, nil
}

// NewFactory composes the products of every element package. Unqualified
// names resolve in this order: DOM, DataViews, Display, Inputs, Layout,
// Fields, Resources, Document. Qualify a name ("Display.Label") to pick a
// later factory.
func NewFactory(s settings.Settings, catalog *dom.Catalog, opts ...factory.Option) *factory.Composite {
	return factory.NewComposite([]*factory.Factory{
		catalog.NewFactory(opts...),
		dataviews.NewFactory(opts...),
		display.NewFactory(opts...),
		inputs.NewFactory(opts...),
		layout.NewFactory(opts...),
		fields.NewFactory(opts...),
		resources.NewFactory(s, opts...),
		document.NewFactory(s, opts...),
	}, opts...)
}

// Factory returns the composed element factory.
func (e *Engine) Factory() *factory.Composite { return e.factory }

// Catalog returns the tag catalog.
func (e *Engine) Catalog() *dom.Catalog { return e.catalog }

// Settings returns the engine settings.
func (e *Engine) Settings() settings.Settings { return e.settings }

// Loader returns the template loader, or nil when none is configured.
func (e *Engine) Loader() ports.TemplateLoader { return e.loader }

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// Templates lists the IDs of the templates the loader knows.
func (e *Engine) Templates(ctx context.Context) ([]string, error) {
	if e.loader == nil {
		return nil, ErrNoLoader
	}
	return e.loader.ListTemplates(ctx)
}

// Load builds the page described by the template stored under id.
func (e *Engine) Load(ctx context.Context, id string) (*Page, error) {
	if e.loader == nil {
		return nil, ErrNoLoader
	}
	tpl, err := e.loader.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("building template", "template", id, "create", tpl.Create)
	return e.Build(tpl)
}

// Build creates a page from tpl and attaches a script container to it.
func (e *Engine) Build(tpl factory.Template) (*Page, error) {
	accessors := make(map[string]node.Node)
	root, err := e.factory.BuildFromTemplate(tpl, accessors)
	if err != nil {
		return nil, err
	}
	return NewPage(root, accessors)
}

// Render loads the template id, binds vars when given and renders it.
func (e *Engine) Render(ctx context.Context, id string, vars map[string]any, formatted bool) (string, error) {
	page, err := e.Load(ctx, id)
	if err != nil {
		return "", err
	}
	if vars != nil {
		page.Bind(vars)
	}
	return page.HTML(formatted), nil
}

// Watch returns a channel that signals when a template changes.
// Returns error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, ErrNotWatchable
}
