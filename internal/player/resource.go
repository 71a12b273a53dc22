package player

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Resource is a seekable audio source the engine can load.
type Resource struct {
	// Name identifies the resource; its extension selects the decoder.
	Name string
	// Open returns a fresh reader positioned at the start of the data.
	Open func() (io.ReadSeekCloser, error)
}

// FileResource returns a Resource reading the file at path.
func FileResource(path string) Resource {
	return Resource{
		Name: path,
		Open: func() (io.ReadSeekCloser, error) {
			return os.Open(path)
		},
	}
}

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// IsSupported reports whether the engine can decode the named resource.
func IsSupported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case extMP3, extFLAC, extWAV:
		return true
	default:
		return false
	}
}
