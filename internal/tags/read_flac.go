package tags

import (
	"strconv"

	goflac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"
)

// readFLAC reads Vorbis comments from a FLAC file's metadata blocks.
// Falls back to TagLib when the file cannot be parsed.
func readFLAC(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return readWithTaglib(path)
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmt, parseErr := flacvorbis.ParseFromMetaDataBlock(*meta)
		if parseErr != nil {
			break
		}
		t := &Tag{
			Path:   path,
			Title:  firstComment(cmt, flacvorbis.FIELD_TITLE),
			Artist: firstComment(cmt, flacvorbis.FIELD_ARTIST),
			Album:  firstComment(cmt, flacvorbis.FIELD_ALBUM),
			Genre:  firstComment(cmt, flacvorbis.FIELD_GENRE),
		}
		if year := firstComment(cmt, flacvorbis.FIELD_DATE); len(year) >= 4 {
			t.Year, _ = strconv.Atoi(year[:4])
		}
		t.Sanitize()
		return t, nil
	}

	return readWithTaglib(path)
}

func firstComment(cmt *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmt.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}
