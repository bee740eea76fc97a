package playerbar

import (
	"time"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/player"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single control line
	ModeExpanded                    // Track details above the control line
)

// State holds everything needed to render the player bar.
type State struct {
	Playing bool
	Title   string
	Artist  string
	Album   string
	Index   int // 0-based position in the playlist
	Total   int

	Position time.Duration
	Duration time.Duration
	Volume   float64
	Shuffle  bool
	Repeat   playback.RepeatMode

	DisplayMode DisplayMode
	Format      string
	SampleRate  int
	BitDepth    int
	Size        int64
}

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 6 // 4 content rows + 2 border rows
	}
	return 3
}

// NewState builds the render state from a controller snapshot and the
// player's view of the loaded file. info may be nil.
func NewState(s playback.Snapshot, info *player.TrackInfo, mode DisplayMode) State {
	st := State{
		Playing:     s.Playing,
		Title:       s.Track.Title,
		Artist:      s.Track.Artist,
		Album:       s.Track.Album,
		Index:       s.CurrentIndex,
		Total:       s.Len,
		Position:    s.Position,
		Duration:    s.Duration,
		Volume:      s.Volume,
		Shuffle:     s.Shuffle,
		Repeat:      s.Repeat,
		DisplayMode: mode,
	}
	if st.Duration <= 0 {
		st.Duration = s.Track.Duration
	}
	if info != nil {
		st.Format = info.Format
		st.SampleRate = info.SampleRate
		st.BitDepth = info.BitDepth
		st.Size = info.Size
	}
	return st
}

// Render returns the player bar string for the given width.
func Render(s State, width int) string {
	inner := innerWidth(width)
	line := renderLine(buildControlLine(s, inner))

	if s.DisplayMode == ModeExpanded {
		return barStyle().Width(width - 2).Render(renderDetails(s, inner) + "\n" + line)
	}
	return barStyle().Width(width - 2).Render(line)
}

// innerWidth is the content width inside the border and padding.
func innerWidth(width int) int {
	return max(width-2-2*horizontalPadding, 0)
}

// trackInfo renders "Title · Artist".
func trackInfo(s State) string {
	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	if s.Artist == "" {
		return title
	}
	return title + " · " + s.Artist
}
