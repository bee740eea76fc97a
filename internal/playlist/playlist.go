package playlist

import (
	"errors"
	"time"
)

// ErrEmptyPlaylist is returned when a playlist is built from zero tracks.
var ErrEmptyPlaylist = errors.New("playlist is empty")

// Track represents a single playable item with its display metadata.
type Track struct {
	Title       string
	Artist      string
	Album       string
	AudioSource string // file path for playback
	CoverSource string // cover image path, empty if none was found
	Duration    time.Duration
}

// Playlist holds an ordered, fixed collection of tracks.
// The track list cannot change after construction.
type Playlist struct {
	tracks []Track
}

// New creates a playlist from the given tracks.
// Returns ErrEmptyPlaylist if no tracks are given.
func New(tracks ...Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	p := &Playlist{tracks: make([]Track, len(tracks))}
	copy(p.tracks, tracks)
	return p, nil
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index.
// The second value is false if index is out of bounds.
func (p *Playlist) Track(index int) (Track, bool) {
	if !p.Contains(index) {
		return Track{}, false
	}
	return p.tracks[index], true
}

// Contains reports whether index addresses a track.
func (p *Playlist) Contains(index int) bool {
	return index >= 0 && index < len(p.tracks)
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
