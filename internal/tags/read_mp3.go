package tags

import (
	"strconv"

	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads ID3v2 frames directly when dhowden/tag fails.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	t := &Tag{
		Path:   path,
		Title:  id3tag.Title(),
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
		Genre:  id3tag.Genre(),
	}
	if t.Artist == "" {
		t.Artist = id3tag.GetTextFrame("TPE2").Text // album artist
	}
	if year, convErr := strconv.Atoi(id3tag.Year()); convErr == nil {
		t.Year = year
	}
	t.Sanitize()
	return t, nil
}
