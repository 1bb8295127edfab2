package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/marisvali/tetris1/world"
	"math"
)

const sampleRate = 44100

// Sounds holds one short beep per event worth hearing. The beeps are
// generated instead of loaded from files.
type Sounds struct {
	Enabled  bool
	lock     *audio.Player
	clear    *audio.Player
	gameOver *audio.Player
}

// The audio context must be created only once per process.
var audioContext *audio.Context

func NewSounds(enabled bool) (s Sounds) {
	s.Enabled = enabled
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	s.lock = newBeepPlayer(audioContext, 440, 0.05)
	s.clear = newBeepPlayer(audioContext, 1320, 0.15)
	s.gameOver = newBeepPlayer(audioContext, 220, 0.5)
	return
}

// newBeepPlayer generates a sine wave that fades out, as 16 bit stereo
// little endian samples.
func newBeepPlayer(ctx *audio.Context, freq float64, durSec float64) *audio.Player {
	n := int(float64(sampleRate) * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Pow(math.E, -3*t)
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return ctx.NewPlayerFromBytes(buf)
}

func play(p *audio.Player) {
	Check(p.Rewind())
	p.Play()
}

// Play plays the sounds for what happened during the last world step. A
// cleared row covers the sound of the lock that caused it.
func (s *Sounds) Play(o world.Outcome) {
	if !s.Enabled {
		return
	}
	switch {
	case o.GameOver:
		play(s.gameOver)
	case len(o.ClearedRows) > 0:
		play(s.clear)
	case o.NLocked > 0:
		play(s.lock)
	}
}
