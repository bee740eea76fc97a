// internal/player/state.go
package player

// State represents the media state machine.
//
//	┌──────────┐     Load      ┌──────────┐
//	│  Stopped │ ─────────────▶│  Paused  │◀─┐
//	└──────────┘               └──────────┘  │
//	     ▲                       │ Play      │ Pause / finished
//	     │ Stop                  ▼           │
//	     └─────────────────── ┌──────────┐ ──┘
//	                          │  Playing │
//	                          └──────────┘
//
// A loaded source sits in Paused until Play is called. When the stream
// runs out the player falls back to Paused at the end of the track and
// signals Finished; seeking and playing again restarts it.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
