package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/waves-lite/internal/analyzer"
	"github.com/llehouerou/waves-lite/internal/app"
	"github.com/llehouerou/waves-lite/internal/config"
	"github.com/llehouerou/waves-lite/internal/errmsg"
	"github.com/llehouerou/waves-lite/internal/icons"
	"github.com/llehouerou/waves-lite/internal/mpris"
	"github.com/llehouerou/waves-lite/internal/notify"
	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/player"
	"github.com/llehouerou/waves-lite/internal/playlist"
	"github.com/llehouerou/waves-lite/internal/stderr"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "waves-lite")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tracks, err := loadTracks(args)
	if err != nil {
		return errorf(errmsg.OpPlaylistLoad, err)
	}
	pl, err := playlist.New(tracks...)
	if err != nil {
		return errorf(errmsg.OpPlaylistLoad, err)
	}

	vis := cfg.GetVisualizerConfig()
	an := analyzer.New(analyzer.DefaultFFTSize)
	p := player.New(player.WithSampleSink(an))
	defer p.Close()

	ctrl, err := playback.New(pl, p,
		playback.WithVolume(cfg.GetVolume()),
		playback.WithShuffle(cfg.Shuffle),
		playback.WithRepeat(playback.ParseRepeatMode(cfg.Repeat)),
	)
	if err != nil {
		return errorf(errmsg.OpInitialize, err)
	}
	defer ctrl.Close()

	// A failing first track is reported through the error event stream.
	_, _ = ctrl.LoadTrack(0)

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(ctrl)
		if err != nil {
			log.Printf("%s", errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
		}
	}

	if cfg.Notifications {
		if n, err := notify.New(); err != nil {
			log.Printf("%s", errmsg.Format(errmsg.OpNotify, err))
		} else {
			go notify.NewAnnouncer(n).Watch(ctrl.Subscribe())
		}
	}

	watchStderr := false
	if err := stderr.Start(); err != nil {
		log.Printf("stderr capture disabled: %v", err)
	} else {
		watchStderr = true
		defer stderr.Stop()
	}

	m := app.New(app.Deps{
		Service:           ctrl,
		Player:            p,
		Spectrum:          an,
		VisualizerBars:    vis.Bars,
		VisualizerVisible: cfg.VisualizerEnabled(),
		WatchStderr:       watchStderr,
	})

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// loadTracks reads a single .m3u argument as a playlist; anything else is
// expanded as files and directories. No argument means the working directory.
func loadTracks(args []string) ([]playlist.Track, error) {
	if len(args) == 1 && isM3U(args[0]) {
		return playlist.LoadM3U(args[0])
	}
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args = []string{cwd}
	}
	return playlist.Collect(args...)
}

func isM3U(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".m3u" || ext == ".m3u8"
}

func errorf(op errmsg.Op, err error) error {
	return fmt.Errorf("%s", errmsg.Format(op, err))
}
