//go:build !linux

// Package mpris exposes the playback session on the MPRIS D-Bus interface.
// It is a no-op off Linux.
package mpris

import "github.com/llehouerou/tinywave/internal/playback"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_, _ string, _ playback.Controller) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
