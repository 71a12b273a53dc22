package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio string
	Play  string
	Pause string
	Stop  string
}

var (
	nerdIcons = Icons{
		Audio: "\uf001 ", // nf-fa-music
		Play:  "\uf04b",  // nf-fa-play
		Pause: "\uf04c",  // nf-fa-pause
		Stop:  "\uf04d",  // nf-fa-stop
	}

	unicodeIcons = Icons{
		Audio: "🎵 ",
		Play:  "▶",
		Pause: "⏸",
		Stop:  "■",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

// Play returns the play icon.
func Play() string {
	return current.Play
}

// Pause returns the pause icon.
func Pause() string {
	return current.Pause
}

// Stop returns the stop icon.
func Stop() string {
	return current.Stop
}

// FormatButton prefixes a button label with its icon, if any.
func FormatButton(icon, label string) string {
	if icon == "" {
		return label
	}
	return icon + " " + label
}
