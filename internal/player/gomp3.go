package player

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// bytesPerFrame is one stereo 16-bit frame as produced by go-mp3.
const bytesPerFrame = 4

// mp3Streamer adapts a go-mp3 decoder to beep.StreamSeekCloser.
type mp3Streamer struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeMP3(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Streamer{dec: dec, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (s *mp3Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	want := len(samples) * bytesPerFrame
	if len(s.buf) < want {
		s.buf = make([]byte, want)
	}

	read, err := io.ReadFull(s.dec, s.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	frames := read / bytesPerFrame
	if frames == 0 {
		return 0, false
	}
	for i := range frames {
		off := i * bytesPerFrame
		l := int16(binary.LittleEndian.Uint16(s.buf[off:]))   //nolint:gosec // pcm sample
		r := int16(binary.LittleEndian.Uint16(s.buf[off+2:])) //nolint:gosec // pcm sample
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return frames, true
}

func (s *mp3Streamer) Err() error { return s.err }

func (s *mp3Streamer) Len() int {
	return max(int(s.dec.SampleCount()), 0)
}

func (s *mp3Streamer) Position() int {
	return int(s.dec.SamplePosition())
}

func (s *mp3Streamer) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Streamer) Close() error {
	return s.closer.Close()
}
