package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output level (0.0 to 1.0). It applies immediately
// when a stream is playing and to every later Start otherwise.
func (p *Player) SetVolume(level float64) {
	level = min(max(level, 0), 1)
	p.level = level

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level <= 0
		speaker.Unlock()
	}
}

// Volume returns the output level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	return p.level
}

// levelToVolume maps a linear 0..1 level onto beep's base-2 exponent:
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
