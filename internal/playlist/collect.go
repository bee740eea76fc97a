package playlist

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/tags"
)

// FromPath creates a playlist track from a file path by reading its metadata.
func FromPath(path string) Track {
	t, err := tags.Read(path)
	if err != nil {
		// Fallback to basic info from filename
		return Track{
			Title:       filepath.Base(path),
			AudioSource: path,
			CoverSource: tags.FindCover(path),
		}
	}

	return Track{
		Title:       t.Title,
		Artist:      t.Artist,
		Album:       t.Album,
		AudioSource: path,
		CoverSource: tags.FindCover(path),
	}
}

// Collect expands files and directories into tracks.
// Directories are walked recursively; only supported music files are kept.
// Files inside a directory are sorted by path, arguments keep their order.
func Collect(paths ...string) ([]Track, error) {
	var tracks []Track
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if player.IsMusicFile(p) {
				tracks = append(tracks, FromPath(p))
			}
			continue
		}

		dirTracks, err := collectDir(p)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, dirTracks...)
	}
	return tracks, nil
}

func collectDir(root string) ([]Track, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip directories/files with errors, continue walking
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() || !player.IsMusicFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	tracks := make([]Track, 0, len(files))
	for _, f := range files {
		tracks = append(tracks, FromPath(f))
	}
	return tracks, nil
}
