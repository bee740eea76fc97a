package tags

import (
	"bytes"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	goflac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacpicture"
	"github.com/nfnt/resize"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// FindCover returns the path of a cover image next to the track, or "" if none.
func FindCover(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverArtFilenames {
		for _, candidate := range []string{name, strings.ToUpper(name)} {
			path := filepath.Join(dir, candidate)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// ExtractCoverArt reads cover art for an audio file.
// Embedded art is preferred; FLAC PICTURE blocks are read directly when
// dhowden/tag misses them; folder images come last.
// Returns nil data if no art is found.
func ExtractCoverArt(path string) (data []byte, mimeType string, err error) {
	data, mimeType = extractEmbeddedArt(path)
	if data != nil {
		return data, mimeType, nil
	}

	if extOf(path) == ExtFLAC {
		if data, mimeType = extractFLACPicture(path); data != nil {
			return data, mimeType, nil
		}
	}

	cover := FindCover(path)
	if cover == "" {
		return nil, "", nil
	}
	data, err = os.ReadFile(cover)
	if err != nil {
		return nil, "", err
	}
	return data, mimeFromExt(cover), nil
}

func extractEmbeddedArt(path string) (data []byte, mimeType string) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, ""
	}
	pic := m.Picture()
	if pic == nil {
		return nil, ""
	}
	return pic.Data, pic.MIMEType
}

func extractFLACPicture(path string) (data []byte, mimeType string) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, ""
	}
	for _, meta := range f.Meta {
		if meta.Type != goflac.Picture {
			continue
		}
		pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
		if err != nil {
			continue
		}
		if pic.PictureType == flacpicture.PictureTypeFrontCover || data == nil {
			data, mimeType = pic.ImageData, pic.MIME
		}
	}
	return data, mimeType
}

func mimeFromExt(path string) string {
	switch extOf(path) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Thumbnail decodes image data and scales it to fit within size×size,
// returning PNG bytes. Images already small enough are re-encoded as is.
func Thumbnail(data []byte, size uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if uint(b.Dx()) > size || uint(b.Dy()) > size { //nolint:gosec // image bounds are positive
		img = resize.Thumbnail(size, size, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
