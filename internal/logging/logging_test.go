package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "development", "debug")

	log.Debug("restored session", slog.String("user_id", "1"))

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "user_id=1")
}

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "production", "info")

	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{" warning ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestErr(t *testing.T) {
	attr := Err(errors.New("disk full"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "disk full", attr.Value.String())

	assert.Equal(t, "", Err(nil).Value.String())
}
