package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, `err=boom`},
		{FormatJSON, `"err":"boom"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, slog.LevelInfo, tt.format)
			logger.Info("render failed", "error", "boom")
			logger.Debug("hidden")

			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}
