// internal/playback/state.go
package playback

import "strings"

// RepeatMode defines what happens when a track finishes.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota // stop after the last track
	RepeatAll                    // loop the playlist
	RepeatOne                    // loop the current track
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "None"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Next returns the following mode in the cycle None → All → One → None.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatNone
	}
}

// ParseRepeatMode converts a config value ("none", "all", "one") to a mode.
// Unknown values map to RepeatNone.
func ParseRepeatMode(s string) RepeatMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return RepeatAll
	case "one":
		return RepeatOne
	default:
		return RepeatNone
	}
}

// PlayerState is the state owned by the controller.
type PlayerState struct {
	CurrentIndex int
	Shuffle      bool
	Repeat       RepeatMode
	Playing      bool
	Volume       float64
}
