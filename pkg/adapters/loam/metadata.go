package loam

// TemplateMetadata is the frontmatter (or whole body, for YAML and JSON
// files) of a template document. Keys follow factory.Template: create, id,
// name, accessor, properties, childElements; any other key is a property.
type TemplateMetadata map[string]any
