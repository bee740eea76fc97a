package tags

import (
	"strconv"

	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata using TagLib as fallback when other readers fail.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	t := &Tag{
		Path:   path,
		Title:  tags.get(taglib.Title),
		Artist: tags.get(taglib.Artist, taglib.AlbumArtist),
		Album:  tags.get(taglib.Album),
		Genre:  tags.get(taglib.Genre),
	}
	if date := tags.get(taglib.Date); len(date) >= 4 {
		t.Year, _ = strconv.Atoi(date[:4])
	}
	t.Sanitize()
	return t, nil
}
