package player

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

// decode picks a decoder from the resource extension. The returned
// streamer owns rc and closes it.
func decode(name string, rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case extWAV:
		s, f, err := wav.Decode(rc)
		return s, f, "WAV", err
	case extFLAC:
		// Some taggers prepend an ID3v2 block the FLAC decoder rejects.
		if err := skipID3v2(rc); err != nil {
			return nil, beep.Format{}, "", err
		}
		s, f, err := flac.Decode(rc)
		return s, f, "FLAC", err
	case extMP3:
		s, f, err := decodeMP3(rc)
		return s, f, "MP3", err
	default:
		return nil, beep.Format{}, "", errors.Newf("unsupported format: %q", ext)
	}
}

// skipID3v2 positions r after an ID3v2 tag, or back at the start when
// there is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < len(header) || string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
