package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BigRLab/thedom/pkg/dictutil"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrInvalidVars is returned when request variables cannot be parsed.
var ErrInvalidVars = errors.New("invalid variables")

// LoadVars parses request variables for binding. source is one of:
//
//	@path/to/file.json   a JSON or YAML file (by extension)
//	{"a": 1}             inline JSON
//	a=1&b=2              a query string; repeated keys become lists
//
// An empty source yields nil.
func LoadVars(source string) (map[string]any, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, nil
	case strings.HasPrefix(source, "@"):
		path := source[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read variables: %w", err)
		}
		return decodeVars(filepath.Ext(path), data)
	case strings.HasPrefix(source, "{"):
		return decodeVars(".json", []byte(source))
	}

	values, err := url.ParseQuery(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVars, err)
	}
	return dictutil.FromValues(values), nil
}

func decodeVars(ext string, data []byte) (map[string]any, error) {
	var out map[string]any
	var err error
	if strings.EqualFold(ext, ".json") {
		err = json.Unmarshal(data, &out)
	} else {
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVars, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
