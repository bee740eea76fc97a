package playerbar

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/waves-lite/internal/ui/render"
)

// renderDetails renders the three lines above the control line in
// expanded mode: title and queue position, artist and album, file format.
func renderDetails(s State, width int) string {
	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	position := ""
	if s.Total > 0 {
		position = fmt.Sprintf("%d/%d", s.Index+1, s.Total)
	}
	titleWidth := max(width-len(position)-1, 0)
	line1 := render.Row(titleStyle().Render(truncate(title, titleWidth)), metaStyle().Render(position), width)

	artist := s.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}
	if s.Album != "" {
		artist += " · " + s.Album
	}
	line2 := artistStyle().Render(truncate(artist, width))

	line3 := metaStyle().Render(truncate(formatAudioInfo(s), width))

	return strings.Join([]string{line1, line2, line3}, "\n")
}

// formatAudioInfo renders e.g. "FLAC · 44.1 kHz · 24-bit · 31 MB".
func formatAudioInfo(s State) string {
	var parts []string
	if s.Format != "" {
		parts = append(parts, s.Format)
	}
	if s.SampleRate > 0 {
		parts = append(parts, humanize.SIWithDigits(float64(s.SampleRate), 1, "Hz"))
	}
	if s.BitDepth > 0 && s.Format != "MP3" && s.Format != "VORBIS" {
		parts = append(parts, fmt.Sprintf("%d-bit", s.BitDepth))
	}
	if s.Size > 0 {
		parts = append(parts, humanize.Bytes(uint64(s.Size)))
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, maxWidth int) string {
	return render.Truncate(s, maxWidth)
}
