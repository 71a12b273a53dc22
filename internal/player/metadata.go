package player

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// readTrackInfo reads tags from r when the container carries any and
// falls back to the resource name otherwise. r is left at an arbitrary
// offset.
func readTrackInfo(name string, r io.ReadSeeker) *TrackInfo {
	info := &TrackInfo{
		Name:  name,
		Title: displayName(name),
	}

	m, err := tag.ReadFrom(r)
	if err != nil {
		return info
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	return info
}

// displayName turns "dir/some_track.wav" into "some track".
func displayName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.TrimSpace(base)
}
