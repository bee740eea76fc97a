package tags

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// fallbacks are tried when the generic reader rejects a file. Some ID3v2
// frames in UTF-16 and a few FLAC and Ogg layouts trip dhowden/tag.
var fallbacks = map[string]func(string) (*Tag, error){
	ExtMP3:  readMP3WithID3v2,
	ExtFLAC: readFLAC,
	ExtOGG:  readWithTaglib,
	ExtOGA:  readWithTaglib,
}

// Read returns the metadata of a music file.
func Read(path string) (*Tag, error) {
	t, err := readGeneric(path)
	if err == nil {
		return t, nil
	}
	if os.IsNotExist(err) {
		return nil, err
	}
	if fb, ok := fallbacks[extOf(path)]; ok {
		return fb(path)
	}
	return nil, fmt.Errorf("read tags %s: %w", path, err)
}

func readGeneric(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}
	t := &Tag{
		Path:   path,
		Title:  m.Title(),
		Artist: artist,
		Album:  m.Album(),
		Genre:  m.Genre(),
		Year:   m.Year(),
	}
	t.Sanitize()
	return t, nil
}
