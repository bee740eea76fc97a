//go:build linux

package mpris

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/playlist"
)

func newTestAdapter(t *testing.T) (*playerAdapter, *playback.Controller, *player.Mock) {
	t.Helper()
	pl, err := playlist.New(
		playlist.Track{Title: "One", Artist: "A", AudioSource: "/music/1.flac", CoverSource: "/music/cover.jpg"},
		playlist.Track{Title: "Two", AudioSource: "/music/2.flac"},
	)
	require.NoError(t, err)

	p := player.NewMock()
	p.SetDuration(2 * time.Minute)
	c, err := playback.New(pl, p, playback.WithRand(rand.New(rand.NewPCG(1, 1))))
	require.NoError(t, err)
	return &playerAdapter{service: c}, c, p
}

func TestLoopStatusRoundTrip(t *testing.T) {
	for _, mode := range []playback.RepeatMode{playback.RepeatNone, playback.RepeatAll, playback.RepeatOne} {
		assert.Equal(t, mode, repeatMode(loopStatus(mode)))
	}
	assert.Equal(t, types.LoopStatusTrack, loopStatus(playback.RepeatOne))
	assert.Equal(t, types.LoopStatusPlaylist, loopStatus(playback.RepeatAll))
	assert.Equal(t, types.LoopStatusNone, loopStatus(playback.RepeatNone))
}

func TestPlayerAdapter_Controls(t *testing.T) {
	a, c, _ := newTestAdapter(t)

	require.NoError(t, a.PlayPause())
	status, _ := a.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)

	require.NoError(t, a.Next())
	assert.Equal(t, 1, c.State().CurrentIndex)

	require.NoError(t, a.Previous())
	assert.Equal(t, 0, c.State().CurrentIndex)

	require.NoError(t, a.Stop())
	status, _ = a.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)
}

func TestPlayerAdapter_Modes(t *testing.T) {
	a, c, _ := newTestAdapter(t)

	require.NoError(t, a.SetLoopStatus(types.LoopStatusTrack))
	assert.Equal(t, playback.RepeatOne, c.State().Repeat)

	require.NoError(t, a.SetShuffle(true))
	shuffle, _ := a.Shuffle()
	assert.True(t, shuffle)

	require.NoError(t, a.SetVolume(0.5))
	vol, _ := a.Volume()
	assert.InDelta(t, 0.5, vol, 0.0001)
}

func TestPlayerAdapter_Seek(t *testing.T) {
	a, _, p := newTestAdapter(t)
	require.NoError(t, a.Play())

	require.NoError(t, a.Seek(types.Microseconds(10*time.Second/time.Microsecond)))
	assert.Equal(t, 10*time.Second, p.Position())

	id := formatTrackID("/music/1.flac")
	require.NoError(t, a.SetPosition(id, types.Microseconds(30*time.Second/time.Microsecond)))
	assert.Equal(t, 30*time.Second, p.Position())

	require.NoError(t, a.SetPosition(formatTrackID("/music/2.flac"), 0))
	assert.Equal(t, 30*time.Second, p.Position(), "position for another track is ignored")
}

func TestTrackMetadata(t *testing.T) {
	track := playlist.Track{Title: "One", Artist: "A", Album: "B", AudioSource: "/music/1.flac", CoverSource: "/music/cover.jpg", Duration: time.Minute}

	meta := trackMetadata(track, 0)
	assert.Equal(t, "One", meta.Title)
	assert.Equal(t, []string{"A"}, meta.Artist)
	assert.Equal(t, "B", meta.Album)
	assert.Equal(t, types.Microseconds(time.Minute.Microseconds()), meta.Length)
	assert.Equal(t, "file:///music/cover.jpg", meta.ArtUrl)

	meta = trackMetadata(playlist.Track{Title: "X", CoverSource: "https://example.com/a.jpg"}, time.Second)
	assert.Nil(t, meta.Artist)
	assert.Equal(t, "https://example.com/a.jpg", meta.ArtUrl)
}

func TestFormatTrackID(t *testing.T) {
	id := formatTrackID("/music/1.flac")
	assert.Equal(t, id, formatTrackID("/music/1.flac"))
	assert.NotEqual(t, id, formatTrackID("/music/2.flac"))
	assert.Contains(t, id, "/org/mpris/MediaPlayer2/Track/")
}
