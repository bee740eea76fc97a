package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	p, err := New()

	require.ErrorIs(t, err, ErrEmptyPlaylist)
	assert.Nil(t, p)
}

func TestNew_CopiesTracks(t *testing.T) {
	tracks := []Track{{Title: "a"}, {Title: "b"}}
	p, err := New(tracks...)
	require.NoError(t, err)

	tracks[0].Title = "changed"

	got, ok := p.Track(0)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, 2, p.Len())
}

func TestPlaylist_Track_OutOfBounds(t *testing.T) {
	p, err := New(Track{Title: "only"})
	require.NoError(t, err)

	for _, idx := range []int{-1, 1, 5} {
		_, ok := p.Track(idx)
		assert.False(t, ok, "index %d", idx)
		assert.False(t, p.Contains(idx), "index %d", idx)
	}
	assert.True(t, p.Contains(0))
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p, err := New(Track{Title: "a"})
	require.NoError(t, err)

	tracks := p.Tracks()
	tracks[0].Title = "mutated"

	got, _ := p.Track(0)
	assert.Equal(t, "a", got.Title)
}

func TestParseExtinf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want m3uEntry
	}{
		{"artist and title", "215,Daft Punk - Veridis Quo", m3uEntry{artist: "Daft Punk", title: "Veridis Quo", duration: 215 * time.Second}},
		{"title only", "60,Intro", m3uEntry{title: "Intro", duration: time.Minute}},
		{"unknown length", "-1,Live Stream", m3uEntry{title: "Live Stream"}},
		{"malformed", "garbage", m3uEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseExtinf(tt.in))
		})
	}
}

func TestParseM3U(t *testing.T) {
	in := strings.Join([]string{
		"#EXTM3U",
		"",
		"#EXTINF:100,Artist - Song",
		"music/song.mp3",
		"# a comment",
		"other.flac",
	}, "\n")

	entries, err := parseM3U(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "music/song.mp3", entries[0].source)
	assert.Equal(t, "Artist", entries[0].artist)
	assert.Equal(t, 100*time.Second, entries[0].duration)
	assert.Equal(t, m3uEntry{source: "other.flac"}, entries[1])
}

func TestM3UEntry_Merge(t *testing.T) {
	e := m3uEntry{artist: "Artist", title: "Title", duration: time.Minute}

	merged := e.merge(Track{Title: "file.mp3", AudioSource: "/x/file.mp3"})
	assert.Equal(t, "Artist", merged.Artist)
	assert.Equal(t, "Title", merged.Title)
	assert.Equal(t, time.Minute, merged.Duration)

	tagged := e.merge(Track{Title: "Tagged", Artist: "Real", Duration: 2 * time.Minute})
	assert.Equal(t, "Tagged", tagged.Title)
	assert.Equal(t, "Real", tagged.Artist)
	assert.Equal(t, 2*time.Minute, tagged.Duration)
}

func TestM3UEntry_MergeTitleWithoutArtist(t *testing.T) {
	e := m3uEntry{title: "Some Title", duration: 123 * time.Second}

	merged := e.merge(Track{Title: "file.mp3", AudioSource: "/x/file.mp3"})
	assert.Equal(t, "Some Title", merged.Title)
	assert.Empty(t, merged.Artist)

	tagged := e.merge(Track{Title: "Tagged", AudioSource: "/x/file.mp3"})
	assert.Equal(t, "Tagged", tagged.Title)
}

func TestLoadM3U_TitleOnlyExtinf(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.mp3"), nil, 0o600))
	playlistPath := filepath.Join(dir, "list.m3u")
	content := "#EXTM3U\n#EXTINF:123,Some Title\nsong.mp3\n"
	require.NoError(t, os.WriteFile(playlistPath, []byte(content), 0o600))

	tracks, err := LoadM3U(playlistPath)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Some Title", tracks[0].Title)
	assert.Equal(t, 123*time.Second, tracks[0].Duration)
}

func TestLoadM3U_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	playlistPath := filepath.Join(dir, "list.m3u")
	content := "#EXTM3U\n#EXTINF:10,Ghost - Track\nmissing.mp3\n"
	require.NoError(t, os.WriteFile(playlistPath, []byte(content), 0o600))

	tracks, err := LoadM3U(playlistPath)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestCollect_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.flac", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	tracks, err := Collect(dir)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	// Unreadable tags fall back to the file name.
	assert.Equal(t, filepath.Join(dir, "a.flac"), tracks[0].AudioSource)
	assert.Equal(t, "a.flac", tracks[0].Title)
	assert.Equal(t, filepath.Join(dir, "b.mp3"), tracks[1].AudioSource)
}

func TestCollect_MissingPath(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
