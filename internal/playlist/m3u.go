package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const extinfPrefix = "#EXTINF:"

// LoadM3U reads an M3U or extended M3U playlist file.
// Relative entries are resolved against the playlist's directory.
// #EXTINF metadata fills fields the file tags leave empty.
func LoadM3U(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := parseM3U(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		src := e.source
		if !filepath.IsAbs(src) {
			src = filepath.Join(base, src)
		}
		if _, statErr := os.Stat(src); statErr != nil {
			continue
		}
		tracks = append(tracks, e.merge(FromPath(src)))
	}
	return tracks, nil
}

type m3uEntry struct {
	source   string
	title    string
	artist   string
	duration time.Duration
}

// merge fills track fields the tags left empty from the playlist metadata.
// A title that is only the file name counts as empty.
func (e m3uEntry) merge(t Track) Track {
	if e.title != "" && (t.Title == "" || t.Title == filepath.Base(t.AudioSource)) {
		t.Title = e.title
	}
	if t.Artist == "" {
		t.Artist = e.artist
	}
	if t.Duration == 0 {
		t.Duration = e.duration
	}
	return t
}

func parseM3U(r io.Reader) ([]m3uEntry, error) {
	var (
		entries []m3uEntry
		pending m3uEntry
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, extinfPrefix):
			pending = parseExtinf(strings.TrimPrefix(line, extinfPrefix))
		case strings.HasPrefix(line, "#"):
			continue
		default:
			pending.source = line
			entries = append(entries, pending)
			pending = m3uEntry{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseExtinf parses "<seconds>,<artist> - <title>".
func parseExtinf(s string) m3uEntry {
	var e m3uEntry
	secs, info, found := strings.Cut(s, ",")
	if !found {
		return e
	}
	if n, err := strconv.Atoi(strings.TrimSpace(secs)); err == nil && n > 0 {
		e.duration = time.Duration(n) * time.Second
	}
	if artist, title, ok := strings.Cut(info, " - "); ok {
		e.artist = strings.TrimSpace(artist)
		e.title = strings.TrimSpace(title)
	} else {
		e.title = strings.TrimSpace(info)
	}
	return e
}
