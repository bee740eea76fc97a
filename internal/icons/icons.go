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
	Play      string
	Pause     string
	Previous  string
	Next      string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Volume    string
	Muted     string
	Audio     string
}

var (
	nerdIcons = Icons{
		Play:      "\uf04b", // nf-fa-play
		Pause:     "\uf04c", // nf-fa-pause
		Previous:  "\uf048", // nf-fa-step_backward
		Next:      "\uf051", // nf-fa-step_forward
		Shuffle:   "󰒟",      // nf-md-shuffle
		RepeatAll: "󰑖",      // nf-md-repeat
		RepeatOne: "󰑘",      // nf-md-repeat_once
		Volume:    "󰕾",      // nf-md-volume_high
		Muted:     "󰝟",      // nf-md-volume_mute
		Audio:     "\uf001 ", // nf-fa-music
	}

	unicodeIcons = Icons{
		Play:      "▶",
		Pause:     "⏸",
		Previous:  "⏮",
		Next:      "⏭",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Volume:    "🔊",
		Muted:     "🔇",
		Audio:     "🎵 ",
	}

	noneIcons = Icons{
		Play:      ">",
		Pause:     "||",
		Previous:  "|<",
		Next:      ">|",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Volume:    "Vol",
		Muted:     "Mute",
		Audio:     "",
	}

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
	default:
		current = noneIcons
	}
}

// PlayPause returns the icon for the play/pause button: the pause icon
// while playing, the play icon otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Previous returns the previous-track icon.
func Previous() string {
	return current.Previous
}

// Next returns the next-track icon.
func Next() string {
	return current.Next
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Volume returns the speaker icon, muted when level is zero.
func Volume(level float64) string {
	if level <= 0 {
		return current.Muted
	}
	return current.Volume
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}
