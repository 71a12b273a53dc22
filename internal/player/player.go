// Package player wraps the audio output in the Engine contract the
// playback session drives.
package player

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const eventBufferSize = 4

// The speaker is process-global in beep.
var (
	speakerMu    sync.Mutex
	speakerReady bool
	speakerRate  beep.SampleRate
)

// openSpeaker initialises the speaker once and returns its sample rate.
func openSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerReady {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerRate = rate
	speakerReady = true
	return speakerRate, nil
}

func closeSpeaker() {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if !speakerReady {
		return
	}
	speaker.Close()
	speakerReady = false
}

// Player is the beep-backed Engine.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	info     *TrackInfo
	level    float64

	// queued is true while the stream is owned by the speaker mixer. It is
	// cleared by whichever of Stop or the end-of-stream callback runs first.
	queued atomic.Bool
	events chan Event

	// sendMu orders event sends against generation bumps, so an event
	// from a stopped stream cannot land after Stop drained the channel.
	sendMu sync.Mutex
	gen    atomic.Uint64
}

// New creates an unloaded player at full volume.
func New() *Player {
	return &Player{
		level:  1,
		events: make(chan Event, eventBufferSize),
	}
}

// Load opens, tags and decodes res, then makes sure the audio output is
// up. Any previously loaded track is dropped first.
func (p *Player) Load(res Resource) error {
	p.unload()

	if res.Open == nil {
		return loadError(errors.New("resource has no opener"), "open %s", res.Name)
	}
	rc, err := res.Open()
	if err != nil {
		return loadError(err, "open %s", res.Name)
	}

	info := readTrackInfo(res.Name, rc)
	if _, err := rc.Seek(0, io.SeekStart); err != nil {
		rc.Close()
		return loadError(err, "rewind %s", res.Name)
	}

	streamer, format, kind, err := decode(res.Name, rc)
	if err != nil {
		rc.Close()
		return loadError(err, "decode %s", res.Name)
	}

	if _, err := openSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return outputError(err, "open audio output")
	}

	info.Duration = format.SampleRate.D(streamer.Len())
	info.SampleRate = int(format.SampleRate)
	info.Format = kind

	p.streamer = streamer
	p.format = format
	p.info = info
	return nil
}

// Start plays the loaded track from its current position, or resumes it
// when paused.
func (p *Player) Start() error {
	if p.streamer == nil {
		return loadError(errNotLoaded, "start")
	}

	rate, err := openSpeaker(p.format.SampleRate)
	if err != nil {
		return outputError(err, "open audio output")
	}

	if p.queued.Load() && p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		return nil
	}

	var s beep.Streamer = p.streamer
	if p.format.SampleRate != rate {
		s = beep.Resample(4, p.format.SampleRate, rate, s)
	}
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	}

	streamer, gen := p.streamer, p.gen.Load()
	p.queued.Store(true)
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		p.finished(streamer, gen)
	})))
	return nil
}

// finished runs on the speaker goroutine once the stream is drained.
func (p *Player) finished(s beep.StreamSeekCloser, gen uint64) {
	if !p.queued.CompareAndSwap(true, false) {
		return
	}

	p.sendMu.Lock()
	defer p.sendMu.Unlock()
	if p.gen.Load() != gen {
		return
	}

	ev := Event{Kind: EventCompleted, Gen: gen}
	if err := s.Err(); err != nil {
		ev = Event{Kind: EventError, Err: playbackError(err, "stream"), Gen: gen}
	}
	select {
	case p.events <- ev:
	default:
	}
}

// Pause pauses the stream in place.
func (p *Player) Pause() error {
	if !p.queued.Load() || p.ctrl == nil {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Stop removes the stream from the speaker and rewinds it.
func (p *Player) Stop() error {
	if p.streamer == nil {
		return nil
	}

	if p.queued.Swap(false) {
		speaker.Clear()
	}
	p.ctrl = nil
	p.volume = nil
	p.drain()

	if err := p.streamer.Seek(0); err != nil {
		return playbackError(err, "rewind")
	}
	return nil
}

// Release drops the track and closes the audio output.
func (p *Player) Release() {
	p.unload()
	closeSpeaker()
}

func (p *Player) unload() {
	if p.streamer == nil {
		return
	}
	if p.queued.Swap(false) {
		speaker.Clear()
	}
	_ = p.streamer.Close()

	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.info = nil
	p.drain()
}

// drain advances the generation and discards events from the stream that
// is no longer current.
func (p *Player) drain() {
	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	p.gen.Add(1)
	for {
		select {
		case <-p.events:
		default:
			return
		}
	}
}

func (p *Player) IsLoaded() bool { return p.streamer != nil }

func (p *Player) IsPlaying() bool {
	if !p.queued.Load() || p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Position returns the offset into the track.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	if p.queued.Load() {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.format.SampleRate.D(p.streamer.Position())
}

func (p *Player) Duration() time.Duration {
	if p.info == nil {
		return 0
	}
	return p.info.Duration
}

func (p *Player) TrackInfo() *TrackInfo { return p.info }

func (p *Player) Events() <-chan Event { return p.events }

func (p *Player) Generation() uint64 { return p.gen.Load() }
