//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlay,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlay,
			err:      errors.New("device busy"),
			expected: "Failed to start playback: device busy",
		},
		{
			name:     "load operation",
			op:       OpLoad,
			err:      errors.New("unexpected EOF"),
			expected: "Failed to load track: unexpected EOF",
		},
		{
			name:     "reinitialize operation",
			op:       OpReinitialize,
			err:      errors.New("no output device"),
			expected: "Failed to restart audio output: no output device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFromSession(t *testing.T) {
	tests := []struct {
		name string
		want Op
	}{
		{"load", OpLoad},
		{"play", OpPlay},
		{"resume", OpResume},
		{"pause", OpPause},
		{"playback", OpPlayback},
		{"reinitialize", OpReinitialize},
		{"seek", OpUnknown},
		{"", OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSession(tt.name); got != tt.want {
				t.Errorf("FromSession(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
