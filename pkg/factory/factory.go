// Package factory builds elements by product name.
//
// Every widget package exposes a Factory holding its constructors; a
// Composite searches several of them, so markup can be described by data
// (templates) instead of code.
package factory

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/BigRLab/thedom/internal/logging"
	"github.com/BigRLab/thedom/pkg/node"
)

// Constructor creates a product with the given id and name.
type Constructor func(id, name string) node.Node

// Builder is implemented by Factory and Composite.
type Builder interface {
	Build(product, id, name string) (node.Node, error)
	Products() []string
}

// Option configures a Factory or Composite.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration and template warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Factory maps product names to constructors. Lookups ignore case.
type Factory struct {
	name   string
	logger *slog.Logger

	mu       sync.RWMutex
	products map[string]Constructor
	names    map[string]string
}

// New creates an empty factory.
func New(name string, opts ...Option) *Factory {
	o := buildOptions(opts)
	return &Factory{
		name:     name,
		logger:   o.logger,
		products: make(map[string]Constructor),
		names:    make(map[string]string),
	}
}

// Name returns the factory name, used to qualify products ("Inputs.TextBox").
func (f *Factory) Name() string { return f.name }

// Add registers a constructor. An existing product with the same name is replaced.
func (f *Factory) Add(product string, c Constructor) *Factory {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(product)
	if _, ok := f.products[key]; ok {
		f.logger.Warn("product registered twice", "factory", f.name, "product", product)
	}
	f.products[key] = c
	f.names[key] = product
	return f
}

// Constructor returns the constructor registered under product.
func (f *Factory) Constructor(product string) (Constructor, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.products[strings.ToLower(product)]
	return c, ok
}

// Build creates a product. The name may be qualified with this factory's name.
func (f *Factory) Build(product, id, name string) (node.Node, error) {
	if prefix, rest, ok := strings.Cut(product, "."); ok && strings.EqualFold(prefix, f.name) {
		product = rest
	}
	c, ok := f.Constructor(product)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
	}
	f.logger.Debug("building product", "factory", f.name, "product", product, "id", id)
	return c(id, name), nil
}

// Products returns the registered product names, sorted.
func (f *Factory) Products() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.names))
	for _, n := range f.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Composite searches several factories in order.
type Composite struct {
	factories []*Factory
	logger    *slog.Logger
}

// NewComposite combines factories. Earlier factories win on name clashes.
func NewComposite(factories []*Factory, opts ...Option) *Composite {
	o := buildOptions(opts)
	return &Composite{factories: factories, logger: o.logger}
}

// Factories returns the combined factories.
func (c *Composite) Factories() []*Factory { return c.factories }

// Build creates a product from the first factory that has it. A qualified
// name ("Layout.Box") only searches the named factory.
func (c *Composite) Build(product, id, name string) (node.Node, error) {
	if prefix, rest, ok := strings.Cut(product, "."); ok {
		for _, f := range c.factories {
			if strings.EqualFold(f.Name(), prefix) {
				return f.Build(rest, id, name)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
	}
	for _, f := range c.factories {
		if _, ok := f.Constructor(product); ok {
			return f.Build(product, id, name)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
}

// Products returns every product qualified by its factory name, sorted.
func (c *Composite) Products() []string {
	var out []string
	for _, f := range c.factories {
		for _, p := range f.Products() {
			out = append(out, f.Name()+"."+p)
		}
	}
	sort.Strings(out)
	return out
}

// Properties returns the property set of a product by building a throwaway instance.
func Properties(b Builder, product string) (*node.PropertySet, error) {
	n, err := b.Build(product, "", "")
	if err != nil {
		return nil, err
	}
	return n.Properties(), nil
}
