// Package settings holds the configuration shared by every element package.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvStaticURL = "THEDOM_STATIC_URL"
	EnvImagesURL = "THEDOM_IMAGES_URL"
	EnvDoctype   = "THEDOM_DOCTYPE"
)

// Settings configures URL prefixes and document defaults.
type Settings struct {
	// StaticURL prefixes static resource paths (img src, link href, script src).
	StaticURL string `yaml:"static_url" json:"static_url"`
	// ImagesURL prefixes the built-in widget images.
	ImagesURL string `yaml:"images_url" json:"images_url"`
	// Doctype names the default document doctype (see document.Doctypes).
	Doctype string `yaml:"doctype" json:"doctype"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		ImagesURL: "images/",
		Doctype:   "html5",
	}
}

// Load reads a YAML or JSON settings file (chosen by extension) on top of the
// defaults, then applies environment overrides. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return s, fmt.Errorf("failed to read settings: %w", err)
		default:
			if err := decode(path, data, &s); err != nil {
				return s, err
			}
		}
	}
	s.ApplyEnv(os.LookupEnv)
	return s, nil
}

func decode(path string, data []byte, s *Settings) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	// Default to YAML
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvStaticURL); ok {
		s.StaticURL = v
	}
	if v, ok := lookup(EnvImagesURL); ok {
		s.ImagesURL = v
	}
	if v, ok := lookup(EnvDoctype); ok {
		s.Doctype = v
	}
}

// Static prefixes path with StaticURL.
func (s Settings) Static(path string) string {
	return s.StaticURL + path
}

// Unstatic removes the StaticURL prefix added by Static.
func (s Settings) Unstatic(url string) string {
	if s.StaticURL == "" {
		return url
	}
	return strings.TrimPrefix(url, s.StaticURL)
}

// Image prefixes name with ImagesURL.
func (s Settings) Image(name string) string {
	return s.ImagesURL + name
}
