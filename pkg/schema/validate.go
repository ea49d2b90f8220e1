package schema

import "sort"

// Schema is a map of property names to their expected types.
// Example: {"size": Int(), "checked": Bool(), "classes": Slice(String())}
type Schema map[string]Type

// Coerce returns a copy of data with every typed property converted.
// Untyped properties are copied unchanged. Failures are aggregated and the
// failing properties are left out of the result.
func Coerce(schema Schema, data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(data))
	var errs []error
	for _, key := range sortedKeys(data) {
		value := data[key]
		fieldType, ok := schema[key]
		if !ok {
			out[key] = value
			continue
		}
		coerced, err := fieldType.Coerce(value)
		if err != nil {
			errs = append(errs, &ValidationError{Key: key, Reason: err.Error(), Value: value})
			continue
		}
		out[key] = coerced
	}
	if len(errs) > 0 {
		return out, &AggregateError{Errors: errs}
	}
	return out, nil
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
