// Package assets holds the audio track bundled into the binary.
package assets

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/llehouerou/tinywave/internal/player"
)

// TrackName is the name the bundled track is loaded under. Its extension
// selects the decoder.
const TrackName = "track.wav"

//go:embed track.wav
var track []byte

// Track returns the bundled track as a read-only resource.
func Track() player.Resource {
	return player.Resource{
		Name: TrackName,
		Open: func() (io.ReadSeekCloser, error) {
			return nopCloser{bytes.NewReader(track)}, nil
		},
	}
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
