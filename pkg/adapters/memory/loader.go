package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/ports"
)

// Loader implements ports.TemplateLoader using an in-memory map.
type Loader struct {
	mu        sync.RWMutex
	templates map[string]factory.Template
}

// NewLoader creates a loader from raw YAML or JSON documents keyed by ID.
func NewLoader(sources map[string]string) (*Loader, error) {
	templates := make(map[string]factory.Template, len(sources))
	for id, src := range sources {
		tpl, err := factory.ParseTemplate(id, []byte(src))
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", id, err)
		}
		templates[id] = tpl
	}
	return &Loader{templates: templates}, nil
}

// NewFromTemplates creates a loader from decoded templates.
func NewFromTemplates(templates map[string]factory.Template) *Loader {
	l := &Loader{templates: make(map[string]factory.Template, len(templates))}
	for id, tpl := range templates {
		l.templates[id] = tpl
	}
	return l
}

// Put stores or replaces a template.
func (l *Loader) Put(id string, tpl factory.Template) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.templates[id] = tpl
}

// GetTemplate returns the template stored under id.
func (l *Loader) GetTemplate(_ context.Context, id string) (factory.Template, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tpl, ok := l.templates[id]
	if !ok {
		return factory.Template{}, fmt.Errorf("%w: %s", ports.ErrTemplateNotFound, id)
	}
	return tpl, nil
}

// ListTemplates returns all template IDs, sorted.
func (l *Loader) ListTemplates(context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := make([]string, 0, len(l.templates))
	for k := range l.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
