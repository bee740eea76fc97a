// Package tags reads display metadata and cover art from music files.
package tags

import (
	"path/filepath"
	"strings"

	"github.com/llehouerou/waves-lite/internal/ui/render"
)

// File extensions understood by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtWAV  = ".wav"
)

// Tag contains the display metadata of a music file.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   int
}

// Sanitize removes control characters and invalid UTF-8 from the text fields
// and falls back to the file name for an empty title.
func (t *Tag) Sanitize() {
	t.Title = strings.TrimSpace(render.Sanitize(t.Title))
	t.Artist = strings.TrimSpace(render.Sanitize(t.Artist))
	t.Album = strings.TrimSpace(render.Sanitize(t.Album))
	t.Genre = strings.TrimSpace(render.Sanitize(t.Genre))
	if t.Title == "" {
		t.Title = filepath.Base(t.Path)
	}
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// taglibTags wraps the raw map returned by taglib.ReadTags.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
