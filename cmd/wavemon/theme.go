package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/waveform/terminal"
)

// watchDebounce coalesces bursts of file events from editors that write
// and rename in several steps
const watchDebounce = 300 * time.Millisecond

// Theme configures demo colors and the alert level. Colors accept the 16
// ANSI names (case-insensitive) or "#rrggbb"; unknown values degrade to
// white, matching the color model's fallback.
type Theme struct {
	TopColor    string  `json:"top_color"`
	BottomColor string  `json:"bottom_color"`
	BorderColor string  `json:"border_color"`
	AlertLevel  float64 `json:"alert_level"`
}

func defaultTheme() Theme {
	return Theme{
		TopColor:    "green",
		BottomColor: "blue",
		BorderColor: "gray",
		AlertLevel:  0.9,
	}
}

func loadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	theme := defaultTheme()
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return theme, nil
}

// namedColors maps lowercase ANSI color names for theme parsing
var namedColors = map[string]terminal.Color{
	"black":        terminal.Black,
	"red":          terminal.Red,
	"green":        terminal.Green,
	"yellow":       terminal.Yellow,
	"blue":         terminal.Blue,
	"magenta":      terminal.Magenta,
	"cyan":         terminal.Cyan,
	"gray":         terminal.Gray,
	"darkgray":     terminal.DarkGray,
	"lightred":     terminal.LightRed,
	"lightgreen":   terminal.LightGreen,
	"lightyellow":  terminal.LightYellow,
	"lightblue":    terminal.LightBlue,
	"lightmagenta": terminal.LightMagenta,
	"lightcyan":    terminal.LightCyan,
	"white":        terminal.White,
}

// parseColor resolves a theme color string. Unknown names fall back to
// white rather than erroring.
func parseColor(s string) terminal.Color {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return terminal.FromRGB(uint8(v>>16), uint8(v>>8), uint8(v))
		}
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return terminal.White
}

// themeWatcher reloads a theme file when it changes on disk
type themeWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onReload func(Theme)
	onError  func(error)

	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
}

// watchTheme starts watching the directory containing path. Watching the
// directory instead of the file survives editors that replace the file by
// atomic rename.
func watchTheme(path string, onReload func(Theme), onError func(error)) (*themeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	tw := &themeWatcher{
		watcher:  watcher,
		filePath: filepath.Clean(path),
		onReload: onReload,
		onError:  onError,
		stopCh:   make(chan struct{}),
	}
	go tw.loop()
	return tw, nil
}

func (tw *themeWatcher) loop() {
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-tw.stopCh:
			return

		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, tw.reload)

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.onError(err)
		}
	}
}

func (tw *themeWatcher) reload() {
	theme, err := loadTheme(tw.filePath)
	if err != nil {
		tw.onError(err)
		return
	}
	tw.onReload(theme)
}

// Close stops the watcher. Safe to call multiple times.
func (tw *themeWatcher) Close() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.stopped {
		return
	}
	tw.stopped = true
	close(tw.stopCh)
	tw.watcher.Close()
}
