package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the schema as property names mapped to type names,
// such as {"size": "int", "classes": "[string]"}.
func (s Schema) MarshalJSON() ([]byte, error) {
	names := make(map[string]string, len(s))
	for key, t := range s {
		names[key] = t.Name()
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("failed to decode schema: %w", err)
	}
	parsed, err := ParseTypeMap(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
