package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Str("k", "v").Msg("shown")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["message"])
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "v", rec["k"])
	assert.Contains(t, rec, "time")
	assert.NotContains(t, rec, "caller")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	log.Debug().Msg("here")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec["caller"], "logging/logging_test.go:")
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tinywave.log")

	l, err := Open(Config{Level: "info", File: path})
	require.NoError(t, err)
	l.Info().Msg("first")
	require.NoError(t, l.Close())

	l, err = Open(Config{Level: "info", File: path})
	require.NoError(t, err)
	l.Info().Msg("second")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}

func TestClose_Nil(t *testing.T) {
	var l *Logger
	assert.NoError(t, l.Close())
}
