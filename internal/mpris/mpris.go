//go:build linux

// Package mpris exposes the playback session on the MPRIS D-Bus interface
// so desktop media keys and applets can control it.
package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/tinywave/internal/playback"
)

// Adapter connects a playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. The bus name is
// org.mpris.MediaPlayer2.<name>.
func New(name, identity string, ctrl playback.Controller) (*Adapter, error) {
	rootAdapter := &rootAdapter{identity: identity}
	playerAdapter := &playerAdapter{ctrl: ctrl}

	a := &Adapter{
		server: server.NewServer(name, rootAdapter, playerAdapter),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	identity string
}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return r.identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. The single
// bundled track offers no queue and no seeking.
type playerAdapter struct {
	ctrl playback.Controller
}

func (p *playerAdapter) Next() error {
	return nil // Not supported
}

func (p *playerAdapter) Previous() error {
	return nil // Not supported
}

func (p *playerAdapter) Pause() error {
	return p.ctrl.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.ctrl.Toggle()
}

func (p *playerAdapter) Stop() error {
	return p.ctrl.Stop()
}

func (p *playerAdapter) Play() error {
	return p.ctrl.Play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.ctrl.Snapshot().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.ctrl.Snapshot()
	if snap.Title == "" {
		return types.Metadata{}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(snap.Title)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   snap.Title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed via the session
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Snapshot().Progress.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// formatTrackID derives a stable object path from the track name. Object
// path elements only allow [A-Za-z0-9_], hence the bare hex form.
func formatTrackID(name string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", id[:])
}
