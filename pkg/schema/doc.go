// Package schema provides the value types used by element properties.
//
// Property values arrive untyped: from Go code, from decoded YAML or JSON
// templates, or from request strings. Each Type validates a value and coerces
// it into the canonical Go representation the element expects:
//
//	t := schema.Bool()
//	v, err := t.Coerce("on") // true, nil
//
// A Schema maps property names to types and coerces a whole property map at
// once, aggregating every failure into an *AggregateError:
//
//	s := schema.Schema{"size": schema.Int(), "checked": schema.Bool()}
//	props, err := schema.Coerce(s, map[string]any{"size": "4", "checked": "True"})
//
// Types can also be parsed from their names ("string", "int", "float",
// "bool", "any", "[string]"), which is how the HTML tag catalog declares them.
package schema
