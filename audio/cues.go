package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// sampleRate is the fixed output rate for cue synthesis.
const sampleRate = beep.SampleRate(44100)

// Tone table. Correct guesses ring high, misses low; the end-of-game
// cues are two-note sequences.
const (
	correctHz   = 880
	incorrectHz = 220
	rejectHz    = 330
	wonLowHz    = 660
	wonHighHz   = 990
	lostHighHz  = 330
	lostLowHz   = 165

	cueLen  = 90 * time.Millisecond
	noteLen = 160 * time.Millisecond
)

// note is one synthesized tone in a cue.
type note struct {
	hz     float64
	length time.Duration
}

// Cues plays short feedback tones for guess outcomes. A failed speaker
// start leaves it in silent mode, where every method is safe and does
// nothing, so the session never depends on a working audio device.
type Cues struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewCues creates the cue set. Starting muted keeps the speaker usable
// for a later unmute.
func NewCues(muted bool) *Cues {
	c := &Cues{}
	c.muted.Store(muted)
	return c
}

// Start opens the speaker. Failure is not fatal: the cues stay silent
// and the error is returned for logging only.
func (c *Cues) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready.Store(true)
	return nil
}

// Close releases the speaker if it was opened.
func (c *Cues) Close() {
	if c.ready.Swap(false) {
		speaker.Close()
	}
}

// IsEnabled reports whether the speaker opened.
func (c *Cues) IsEnabled() bool {
	return c.ready.Load()
}

// IsMuted reports the mute state.
func (c *Cues) IsMuted() bool {
	return c.muted.Load()
}

// ToggleMute flips the mute state and reports the new value.
func (c *Cues) ToggleMute() bool {
	next := !c.muted.Load()
	c.muted.Store(next)
	return next
}

// Correct rings the high confirmation tone.
func (c *Cues) Correct() {
	c.play(note{correctHz, cueLen})
}

// Incorrect rings the low miss tone.
func (c *Cues) Incorrect() {
	c.play(note{incorrectHz, cueLen})
}

// Reject blips for input that was never recorded.
func (c *Cues) Reject() {
	c.play(note{rejectHz, cueLen / 2})
}

// Won plays the rising end-of-game pair.
func (c *Cues) Won() {
	c.play(note{wonLowHz, noteLen}, note{wonHighHz, noteLen})
}

// Lost plays the falling end-of-game pair.
func (c *Cues) Lost() {
	c.play(note{lostHighHz, noteLen}, note{lostLowHz, noteLen})
}

// play queues the notes on the speaker mixer. Playback happens on the
// speaker goroutine, so the game loop never waits on it.
func (c *Cues) play(notes ...note) {
	if !c.ready.Load() || c.muted.Load() {
		return
	}
	streams := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.hz)
		if err != nil {
			return
		}
		streams = append(streams, beep.Take(sampleRate.N(n.length), sine))
	}
	speaker.Play(beep.Seq(streams...))
}
