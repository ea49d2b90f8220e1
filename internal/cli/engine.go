// Package cli implements the commands behind the thedom binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/BigRLab/thedom"
	"github.com/BigRLab/thedom/internal/logging"
	"github.com/BigRLab/thedom/pkg/settings"
)

// Options holds the flags shared by every command.
type Options struct {
	RepoPath     string
	SettingsPath string
	Debug        bool
	LogFormat    string
}

// NewEngine loads settings and opens the template repository.
func NewEngine(opts Options) (*thedom.Engine, error) {
	s, err := settings.Load(opts.SettingsPath)
	if err != nil {
		return nil, err
	}
	logger := createLogger(opts.Debug, opts.LogFormat)
	logger.Debug("settings loaded", "static_url", s.StaticURL, "doctype", s.Doctype)

	eng, err := thedom.New(opts.RepoPath,
		thedom.WithSettings(s),
		thedom.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}
	return eng, nil
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from rendered markup).
func createLogger(debug bool, format string) *slog.Logger {
	if debug {
		return logging.NewWithWriter(os.Stderr, slog.LevelDebug, logging.ParseFormat(format))
	}
	return logging.NewNop()
}

// DefaultTemplate picks the template rendered when none is named:
// "index", then "main", then the one named after the repository directory.
func DefaultTemplate(ids []string, repoPath string) (string, bool) {
	candidates := []string{"index", "main"}
	if abs, err := filepath.Abs(repoPath); err == nil {
		candidates = append(candidates, filepath.Base(abs))
	}
	for _, c := range candidates {
		if slices.Contains(ids, c) {
			return c, true
		}
	}
	return "", false
}
