package notify

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/playlist"
)

const trackExpire = 5 * time.Second

// Announcer shows a "now playing" notification on track changes. Each new
// notification replaces the previous one.
type Announcer struct {
	notifier Notifier
	iconFor  func(playlist.Track) string
	lastID   uint32
}

// NewAnnouncer creates an announcer that sends through n. Icons are cover
// thumbnails cached under the user cache directory.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{notifier: n, iconFor: CoverIcon}
}

// Announce sends the notification for track.
func (a *Announcer) Announce(track playlist.Track) error {
	id, err := a.notifier.Send(Notification{
		Summary: track.Title,
		Body:    trackBody(track),
		Icon:    a.iconFor(track),
		Expire:  trackExpire,
		Replace: a.lastID,
		Urgency: Low,
	})
	if err != nil {
		return fmt.Errorf("notify %q: %w", track.Title, err)
	}
	a.lastID = id
	return nil
}

// Watch announces every track change of sub until the subscription ends,
// then dismisses the last notification.
func (a *Announcer) Watch(sub *playback.Subscription) {
	for {
		select {
		case <-sub.Done:
			if err := a.notifier.Dismiss(a.lastID); err != nil {
				log.Printf("notify: dismiss: %v", err)
			}
			return
		case e := <-sub.TrackChanged:
			if err := a.Announce(e.Current); err != nil {
				log.Printf("notify: %v", err)
			}
		}
	}
}

func trackBody(t playlist.Track) string {
	var parts []string
	if t.Artist != "" {
		parts = append(parts, t.Artist)
	}
	if t.Album != "" {
		parts = append(parts, t.Album)
	}
	return strings.Join(parts, " · ")
}
