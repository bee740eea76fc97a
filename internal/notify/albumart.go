package notify

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/waves-lite/internal/playlist"
	"github.com/llehouerou/waves-lite/internal/tags"
)

const thumbnailSize = 128

var errNoCover = errors.New("no cover art")

// CoverIcon returns the path of a PNG thumbnail of track's cover art,
// creating it under $XDG_CACHE_HOME/waves-lite/covers on first use.
// Returns "" when the track has no art.
func CoverIcon(track playlist.Track) string {
	name := filepath.Join("waves-lite", "covers", coverKey(track.AudioSource)+".png")
	if path, err := xdg.SearchCacheFile(name); err == nil {
		return path
	}

	path, err := xdg.CacheFile(name)
	if err != nil {
		return ""
	}
	if err := writeThumbnail(track.AudioSource, path); err != nil {
		if errors.Is(err, errNoCover) {
			return ""
		}
		log.Printf("notify: cover for %s: %v", track.AudioSource, err)
		return ""
	}
	return path
}

func writeThumbnail(audioPath, dest string) error {
	data, _, err := tags.ExtractCoverArt(audioPath)
	if err != nil {
		return err
	}
	if data == nil {
		return errNoCover
	}
	thumb, err := tags.Thumbnail(data, thumbnailSize)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, thumb, 0o600)
}

func coverKey(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("%016x", h.Sum64())
}
