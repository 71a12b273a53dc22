//go:build !windows

package stderr

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCaptureForwardsLines(t *testing.T) {
	var buf syncBuffer
	log := zerolog.New(&buf)

	require.NoError(t, Start(log))
	require.NoError(t, Start(log), "second Start is a no-op")

	_, err := os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n   \n")
	require.NoError(t, err)

	Stop()
	Stop()

	out := buf.String()
	assert.Contains(t, out, `"message":"ALSA lib pcm.c: underrun"`)
	assert.Contains(t, out, `"source":"stderr"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("\n")), "blank lines are dropped")
}

func TestWriteOriginalWithoutCapture(t *testing.T) {
	assert.NotPanics(t, func() { WriteOriginal("") })
}
