package loam

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/ports"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository to the ports.TemplateLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[TemplateMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[TemplateMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetTemplate loads and decodes the template document id. The extension may
// be omitted. A markdown body becomes the text property unless one is set.
func (l *Loader) GetTemplate(ctx context.Context, id string) (factory.Template, error) {
	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		if !l.exists(ctx, id) {
			return factory.Template{}, fmt.Errorf("%w: %s", ports.ErrTemplateNotFound, id)
		}
		return factory.Template{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return decodeDocument(doc.ID, doc.Data, doc.Content)
}

func decodeDocument(docID string, meta TemplateMetadata, content string) (factory.Template, error) {
	data := make(map[string]any, len(meta)+2)
	for k, v := range meta {
		data[k] = v
	}
	if _, ok := data["id"]; !ok {
		data["id"] = path.Base(trimExtension(docID))
	}
	if body := strings.TrimSpace(content); body != "" {
		if _, ok := data["text"]; !ok {
			data["text"] = body
		}
	}
	tpl, err := factory.DecodeTemplate(data)
	if err != nil {
		return tpl, fmt.Errorf("template %s: %w", trimExtension(docID), err)
	}
	return tpl, nil
}

func (l *Loader) exists(ctx context.Context, id string) bool {
	ids, err := l.ListTemplates(ctx)
	if err != nil {
		return false
	}
	want := trimExtension(id)
	for _, candidate := range ids {
		if candidate == want {
			return true
		}
	}
	return false
}

// ListTemplates lists all templates in the repository by extensionless ID.
func (l *Loader) ListTemplates(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		id := trimExtension(doc.ID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: template '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

// Save writes tpl as a document under id.
func (l *Loader) Save(ctx context.Context, id string, tpl factory.Template) error {
	if err := l.Repo.Save(ctx, &loam.DocumentModel[TemplateMetadata]{
		ID:   id,
		Data: encodeTemplate(tpl),
	}); err != nil {
		return fmt.Errorf("loam save failed for %s: %w", id, err)
	}
	return nil
}

func encodeTemplate(tpl factory.Template) TemplateMetadata {
	meta := TemplateMetadata{"create": tpl.Create}
	set := func(key, value string) {
		if value != "" {
			meta[key] = value
		}
	}
	set("id", tpl.ID)
	set("name", tpl.Name)
	set("accessor", tpl.Accessor)
	for k, v := range tpl.Extra {
		meta[k] = v
	}
	if len(tpl.Properties) > 0 {
		meta["properties"] = tpl.Properties
	}
	if len(tpl.ChildElements) > 0 {
		children := make([]any, len(tpl.ChildElements))
		for i, c := range tpl.ChildElements {
			children[i] = map[string]any(encodeTemplate(c))
		}
		meta["childElements"] = children
	}
	return meta
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
