package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/waveform/terminal"
	"github.com/lixenwraith/waveform/terminal/tui"
)

// historyCap stores enough samples for wide screens
const historyCap = 500

// dataSource selects which metric feeds a polarity
type dataSource uint8

const (
	sourceCPU dataSource = iota
	sourceMemory
)

func (d dataSource) next() dataSource {
	if d == sourceCPU {
		return sourceMemory
	}
	return sourceCPU
}

func (d dataSource) label() string {
	if d == sourceCPU {
		return "CPU"
	}
	return "MEM"
}

// colorCycle is the palette the c key steps through; the leading unset
// color renders with the terminal default foreground
var colorCycle = []terminal.Color{
	{},
	terminal.Red,
	terminal.Green,
	terminal.Yellow,
	terminal.Blue,
	terminal.Magenta,
	terminal.Cyan,
	terminal.White,
}

type appConfig struct {
	tickRate  time.Duration
	themePath string
	modeName  string
	sound     bool
	border    bool
}

// App owns the render loop: a ticker drives sampling and drawing, a
// goroutine feeds terminal events, and the theme watcher pushes reloads.
type App struct {
	session *terminal.Session
	sampler *systemSampler
	cpu     *history
	mem     *history
	alert   *alerter
	watcher *themeWatcher
	themeCh chan Theme
	ticker  *time.Ticker

	theme    Theme
	tickRate time.Duration

	topSource    dataSource
	bottomSource dataSource
	topColorIdx  int
	botColorIdx  int
	mode         tui.Mode
	fade         bool
	gradient     bool
	autoscale    bool
	border       bool
	sound        bool

	running bool
}

func newApp(session *terminal.Session, cfg appConfig) (*App, error) {
	a := &App{
		session:      session,
		sampler:      newSystemSampler(),
		cpu:          newHistory(historyCap),
		mem:          newHistory(historyCap),
		theme:        defaultTheme(),
		tickRate:     cfg.tickRate,
		topSource:    sourceCPU,
		bottomSource: sourceMemory,
		topColorIdx:  2, // green
		botColorIdx:  4, // blue
		border:       cfg.border,
		sound:        cfg.sound,
		running:      true,
	}

	if cfg.modeName == "block" {
		a.mode = tui.ModeBlock
	}

	if cfg.themePath != "" {
		theme, err := loadTheme(cfg.themePath)
		if err != nil {
			return nil, err
		}
		a.applyTheme(theme)

		a.themeCh = make(chan Theme, 1)
		watcher, err := watchTheme(cfg.themePath,
			func(t Theme) {
				select {
				case a.themeCh <- t:
				default:
				}
			},
			func(error) {
				// Watch errors keep the current theme; the file is
				// re-read on the next successful change event
			})
		if err != nil {
			return nil, fmt.Errorf("theme watch failed: %w", err)
		}
		a.watcher = watcher
	}

	if cfg.sound {
		alert, err := newAlerter()
		if err != nil {
			// Non-fatal, monitor runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
		a.alert = alert
	}

	return a, nil
}

func (a *App) close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
}

// applyTheme resets series colors to the theme palette, discarding any
// cycled override
func (a *App) applyTheme(theme Theme) {
	a.theme = theme
	a.topColorIdx = -1
	a.botColorIdx = -1
}

// topColor returns the active top series color: cycled palette entry if
// the c key was used, theme color otherwise
func (a *App) topColor() terminal.Color {
	if a.topColorIdx >= 0 {
		return colorCycle[a.topColorIdx]
	}
	return parseColor(a.theme.TopColor)
}

func (a *App) bottomColor() terminal.Color {
	if a.botColorIdx >= 0 {
		return colorCycle[a.botColorIdx]
	}
	return parseColor(a.theme.BottomColor)
}

func (a *App) run() error {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := a.session.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.ticker = time.NewTicker(a.tickRate)
	defer a.ticker.Stop()

	a.sample()
	a.draw()

	for a.running {
		select {
		case ev := <-events:
			a.handleEvent(ev)
			a.draw()
		case <-a.ticker.C:
			a.sample()
			a.draw()
		case theme := <-a.themeCh:
			a.applyTheme(theme)
			a.draw()
		}
	}
	return nil
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.session.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			a.running = false
			return
		}
		if ev.Key() != tcell.KeyRune {
			return
		}
		switch ev.Rune() {
		case 'q':
			a.running = false
		case '1':
			a.topSource = a.topSource.next()
		case '2':
			a.bottomSource = a.bottomSource.next()
		case '+':
			a.setTickRate(a.tickRate - 10*time.Millisecond)
		case '-':
			a.setTickRate(a.tickRate + 10*time.Millisecond)
		case 'c':
			a.topColorIdx = (a.topColorIdx + 1 + len(colorCycle)) % len(colorCycle)
			a.botColorIdx = (a.botColorIdx + 1 + len(colorCycle)) % len(colorCycle)
		case 'm':
			if a.mode == tui.ModeBraille {
				a.mode = tui.ModeBlock
			} else {
				a.mode = tui.ModeBraille
			}
		case 'f':
			a.fade = !a.fade
		case 'g':
			a.gradient = !a.gradient
		case 's':
			a.autoscale = !a.autoscale
		case 'b':
			a.border = !a.border
		}
	}
}

func (a *App) setTickRate(d time.Duration) {
	if d < 10*time.Millisecond {
		return
	}
	a.tickRate = d
	a.ticker.Reset(d)
}

func (a *App) sample() {
	now := time.Now()

	cpu, err := a.sampler.CPU()
	if err == nil {
		a.cpu.push(cpu)
	}
	mem, err := a.sampler.Memory()
	if err == nil {
		a.mem.push(mem)
	}

	if a.sound && a.alert != nil &&
		(cpu >= a.theme.AlertLevel || mem >= a.theme.AlertLevel) {
		a.alert.trigger(now)
	}
}

func (a *App) seriesFor(d dataSource) *history {
	if d == sourceCPU {
		return a.cpu
	}
	return a.mem
}

func (a *App) draw() {
	w, h := a.session.Size()
	if w < 1 || h < 2 {
		return
	}

	cells := make([]terminal.Cell, w*h)
	root := tui.NewRegion(cells, w, 0, 0, w, h)
	chart := root.Sub(0, 0, w, h-1)

	top := a.seriesFor(a.topSource)
	bottom := a.seriesFor(a.bottomSource)

	topMax, bottomMax := 1.0, 1.0
	if a.autoscale {
		topMax = top.peak()
		bottomMax = bottom.peak()
	}

	wf := tui.NewWaveform(top.values(), bottom.values()).
		Mode(a.mode).
		TopStyle(tui.NewStyle(a.topColor())).
		BottomStyle(tui.NewStyle(a.bottomColor())).
		Fade(a.fade).
		Gradient(a.gradient).
		TopMax(topMax).
		BottomMax(bottomMax)

	if a.border {
		wf = wf.Border(tui.LineSingle, parseColor(a.theme.BorderColor)).
			Title(fmt.Sprintf("%s / %s", a.topSource.label(), a.bottomSource.label()))
	}

	wf.Render(chart)
	a.drawStatus(root, h-1)
	a.session.Flush(cells, w, h)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func (a *App) drawStatus(root tui.Region, y int) {
	modeName := "Braille"
	if a.mode == tui.ModeBlock {
		modeName = "Block"
	}
	scaleName := "100%"
	if a.autoscale {
		scaleName = "AUTO"
	}

	dim := tui.Style{Fg: terminal.Gray}
	sections := []tui.BarSection{
		{Label: "[q] Quit", LabelStyle: dim},
		{Label: "[1] Top: ", LabelStyle: dim,
			Value: a.topSource.label(), ValueStyle: tui.NewStyle(a.topColor()).Bold()},
		{Label: "[2] Bot: ", LabelStyle: dim,
			Value: a.bottomSource.label(), ValueStyle: tui.NewStyle(a.bottomColor()).Bold()},
		{Label: "[+/-] ", LabelStyle: dim,
			Value: fmt.Sprintf("%dms", a.tickRate.Milliseconds()), ValueStyle: tui.NewStyle(terminal.White)},
		{Label: "[c] Color", LabelStyle: dim},
		{Label: "[m] ", LabelStyle: dim, Value: modeName, ValueStyle: tui.NewStyle(terminal.White)},
		{Label: "[f] Fade: ", LabelStyle: dim, Value: onOff(a.fade), ValueStyle: tui.NewStyle(terminal.White)},
		{Label: "[g] Grad: ", LabelStyle: dim, Value: onOff(a.gradient), ValueStyle: tui.NewStyle(terminal.White)},
		{Label: "[s] Scale: ", LabelStyle: dim, Value: scaleName, ValueStyle: tui.NewStyle(terminal.White)},
		{Label: "[b] Border", LabelStyle: dim},
	}

	opts := tui.DefaultBarOpts()
	opts.Bg = terminal.DarkGray
	root.StatusBar(y, sections, opts)
	root.TextRight(y, time.Now().Format("15:04:05")+" ", tui.Style{Fg: terminal.Gray, Bg: terminal.DarkGray})
}
