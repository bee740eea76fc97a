package playback

import (
	"time"

	"github.com/llehouerou/waves-lite/internal/playlist"
)

// State returns a copy of the controller state.
func (c *Controller) State() PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the state together with the current track and timing.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	track, _ := c.playlist.Track(c.state.CurrentIndex)
	return Snapshot{
		PlayerState: c.state,
		Track:       track,
		Len:         c.playlist.Len(),
		Position:    c.player.Position(),
		Duration:    c.player.Duration(),
	}
}

// CurrentTrack returns the track under the cursor.
func (c *Controller) CurrentTrack() playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	track, _ := c.playlist.Track(c.state.CurrentIndex)
	return track
}

// Tracks returns a copy of the playlist.
func (c *Controller) Tracks() []playlist.Track {
	return c.playlist.Tracks()
}

// Position returns the player's current position.
func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Position()
}

// Duration returns the current track's duration, 0 if unknown.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Duration()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops the player and ends all subscriptions.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	err := c.player.Close()
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return err
}
