package tags

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Sanitize(t *testing.T) {
	tag := &Tag{
		Path:   "/music/01 - song.mp3",
		Title:  "  \x00 ",
		Artist: "Art\x07ist",
		Album:  " Album Name ",
	}

	tag.Sanitize()

	assert.Equal(t, "01 - song.mp3", tag.Title)
	assert.Equal(t, "Artist", tag.Artist)
	assert.Equal(t, "Album Name", tag.Album)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.Error(t, err)
}

func TestRead_UnsupportedGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.wav")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o600))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestFindCover(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "track.flac")

	assert.Empty(t, FindCover(track))

	cover := filepath.Join(dir, "folder.png")
	require.NoError(t, os.WriteFile(cover, []byte("png"), 0o600))
	assert.Equal(t, cover, FindCover(track))

	preferred := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(preferred, []byte("jpg"), 0o600))
	assert.Equal(t, preferred, FindCover(track))
}

func TestExtractCoverArt_FolderFallback(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "track.mp3")
	require.NoError(t, os.WriteFile(track, []byte("not really mp3"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.png"), []byte("art"), 0o600))

	data, mime, err := ExtractCoverArt(track)
	require.NoError(t, err)
	assert.Equal(t, []byte("art"), data)
	assert.Equal(t, "image/png", mime)
}

func TestExtractCoverArt_None(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "track.mp3")
	require.NoError(t, os.WriteFile(track, nil, 0o600))

	data, _, err := ExtractCoverArt(track)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255}) //nolint:gosec // test pattern
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnail_Downscales(t *testing.T) {
	out, err := Thumbnail(encodePNG(t, 400, 200), 100)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestThumbnail_KeepsSmallImages(t *testing.T) {
	out, err := Thumbnail(encodePNG(t, 20, 10), 100)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}

func TestThumbnail_InvalidData(t *testing.T) {
	_, err := Thumbnail([]byte("nope"), 100)
	assert.Error(t, err)
}
