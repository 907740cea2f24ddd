package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	alertSampleRate = beep.SampleRate(44100)
	alertToneHz     = 880
	alertToneLen    = 50 * time.Millisecond
	alertCooldown   = 2 * time.Second
)

// alerter plays a short tone when a series crosses the alert level.
// A cooldown keeps a series hovering at the threshold from beeping every
// tick. Initialization failure is non-fatal; trigger becomes a no-op.
type alerter struct {
	ready bool
	last  time.Time
}

func newAlerter() (*alerter, error) {
	a := &alerter{}
	err := speaker.Init(alertSampleRate, alertSampleRate.N(time.Second/10))
	if err != nil {
		return a, err
	}
	a.ready = true
	return a, nil
}

func (a *alerter) trigger(now time.Time) {
	if !a.ready || now.Sub(a.last) < alertCooldown {
		return
	}
	a.last = now

	sine, err := generators.SineTone(alertSampleRate, alertToneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(alertSampleRate.N(alertToneLen), sine))
}
