// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/llehouerou/waves-lite/internal/player"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playlist operations
	OpPlaylistLoad Op = "load playlist"
	OpTagsRead     Op = "read file tags"

	// Playback operations
	OpPlaybackLoad  Op = "load track"
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Desktop integration
	OpMPRISStart Op = "register media player"
	OpNotify     Op = "send notification"

	// Initialization
	OpInitialize Op = "initialize application"
)

// ForPlayback maps a playback error event operation ("load", "play") to an Op.
func ForPlayback(operation string) Op {
	switch operation {
	case "load":
		return OpPlaybackLoad
	case "play":
		return OpPlaybackStart
	case "seek":
		return OpPlaybackSeek
	default:
		return Op(operation)
	}
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, describe(err))
}

// FormatWith creates an error message with additional context.
// Paths are shortened to their base name.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, filepath.Base(context), describe(err))
}

// describe replaces well-known errors with shorter wording.
func describe(err error) string {
	switch {
	case errors.Is(err, player.ErrUnsupportedFormat):
		return "unsupported audio format"
	case errors.Is(err, player.ErrNothingLoaded):
		return "no track loaded"
	default:
		return err.Error()
	}
}
