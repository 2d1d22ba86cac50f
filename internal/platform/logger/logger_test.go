package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{" INFO ", Info},
		{"", Info},
		{"warning", Warn},
		{"error", Error},
		{"nonsense", Info},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestJSONLogger_IncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "vet-clinic-web", Writer: &buf})

	l.With(map[string]any{"tab": "animales"}).Warn("load failed", map[string]any{
		"error": errors.New("boom"),
		"":      "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "vet-clinic-web", entry["app"])
	assert.Equal(t, "animales", entry["tab"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "")
}

func TestTextLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Writer: &buf})

	l.Info("hidden", nil)
	l.Error("shown", map[string]any{"status": 500})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
	assert.Contains(t, out, "status=500")
}
