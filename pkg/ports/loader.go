package ports

import (
	"context"
	"errors"

	"github.com/BigRLab/thedom/pkg/factory"
)

// ErrTemplateNotFound is returned by loaders for an unknown template ID.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateLoader defines how element templates are retrieved.
type TemplateLoader interface {
	// GetTemplate returns the template stored under id.
	GetTemplate(ctx context.Context, id string) (factory.Template, error)

	// ListTemplates returns the IDs of every available template.
	ListTemplates(ctx context.Context) ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
type Watchable interface {
	// Watch returns a channel receiving the ID of each changed template.
	Watch(ctx context.Context) (<-chan string, error)
}
