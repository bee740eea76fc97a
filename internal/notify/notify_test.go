package notify

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/playlist"
)

type recordingNotifier struct {
	mu        sync.Mutex
	sent      []Notification
	dismissed []uint32
	nextID    uint32
	err       error
}

func (r *recordingNotifier) Send(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Dismiss(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed = append(r.dismissed, id)
	return nil
}

func newTestAnnouncer(n Notifier) *Announcer {
	a := NewAnnouncer(n)
	a.iconFor = func(t playlist.Track) string { return "icon:" + t.Title }
	return a
}

func TestNoop(t *testing.T) {
	id, err := Noop{}.Send(Notification{Summary: "x"})
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, Noop{}.Dismiss(1))
}

func TestAnnounce(t *testing.T) {
	rec := &recordingNotifier{}
	a := newTestAnnouncer(rec)

	require.NoError(t, a.Announce(playlist.Track{Title: "Song", Artist: "Band", Album: "Record"}))
	require.NoError(t, a.Announce(playlist.Track{Title: "Next"}))

	require.Len(t, rec.sent, 2)
	first := rec.sent[0]
	assert.Equal(t, "Song", first.Summary)
	assert.Equal(t, "Band · Record", first.Body)
	assert.Equal(t, "icon:Song", first.Icon)
	assert.Zero(t, first.Replace)
	assert.Equal(t, Low, first.Urgency)
	assert.Equal(t, trackExpire, first.Expire)

	assert.Equal(t, uint32(1), rec.sent[1].Replace, "replaces the previous notification")
	assert.Empty(t, rec.sent[1].Body)
}

func TestAnnounce_Error(t *testing.T) {
	rec := &recordingNotifier{err: errors.New("bus closed")}
	a := newTestAnnouncer(rec)

	err := a.Announce(playlist.Track{Title: "Song"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus closed")
}

func TestWatch_AnnouncesUntilClosed(t *testing.T) {
	pl, err := playlist.New(
		playlist.Track{Title: "One", AudioSource: "/1.mp3"},
		playlist.Track{Title: "Two", AudioSource: "/2.mp3"},
	)
	require.NoError(t, err)
	c, err := playback.New(pl, player.NewMock())
	require.NoError(t, err)

	rec := &recordingNotifier{}
	a := newTestAnnouncer(rec)
	sub := c.Subscribe()
	require.NoError(t, c.SelectTrack(1))

	done := make(chan struct{})
	go func() {
		a.Watch(sub)
		close(done)
	}()

	require.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.sent) == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Close())
	<-done

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, "Two", rec.sent[0].Summary)
	assert.Equal(t, []uint32{1}, rec.dismissed)
}

func TestTrackBody(t *testing.T) {
	assert.Equal(t, "Band", trackBody(playlist.Track{Artist: "Band"}))
	assert.Equal(t, "Record", trackBody(playlist.Track{Album: "Record"}))
	assert.Empty(t, trackBody(playlist.Track{}))
}

func TestCoverKey(t *testing.T) {
	assert.Len(t, coverKey("/a.mp3"), 16)
	assert.NotEqual(t, coverKey("/a.mp3"), coverKey("/b.mp3"))
}

func TestWriteThumbnail_NoCover(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01.mp3")
	require.NoError(t, os.WriteFile(track, []byte("not audio"), 0o600))

	err := writeThumbnail(track, filepath.Join(dir, "thumb.png"))
	assert.ErrorIs(t, err, errNoCover)
}
