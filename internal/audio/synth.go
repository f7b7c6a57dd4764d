package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Chime timing
const (
	noteDuration  = 70 * time.Millisecond
	tailDuration  = 160 * time.Millisecond
	chimeAttack   = 4 * time.Millisecond
	noteRelease   = 40 * time.Millisecond
	tailRelease   = 130 * time.Millisecond
	playerVolume  = 0.6
	botVolume     = 0.35
	overtoneRatio = 2.0
)

// tone returns a sine tone of fixed length.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only fails when freq is at or above the Nyquist limit
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

// envelope applies a linear attack and release to a fixed-length stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, total, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales a stream linearly. Zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is one shaped sine with an octave overtone.
func note(rate beep.SampleRate, freq float64, d, release time.Duration) beep.Streamer {
	fund := newEnvelope(tone(rate, freq, d), rate, d, chimeAttack, release)
	over := newEnvelope(tone(rate, freq*overtoneRatio, d), rate, d, chimeAttack, release/2)
	return beep.Mix(volume(fund, 0.7), volume(over, 0.3))
}

// CoinChime is the rising two-note sound of a player capture (B5, E6).
func CoinChime(rate beep.SampleRate) beep.Streamer {
	return volume(beep.Seq(
		note(rate, 987.77, noteDuration, noteRelease),
		note(rate, 1318.51, tailDuration, tailRelease),
	), playerVolume)
}

// BotChime is the falling two-note sound of a bot capture (E5, A4).
func BotChime(rate beep.SampleRate) beep.Streamer {
	return volume(beep.Seq(
		note(rate, 659.25, noteDuration, noteRelease),
		note(rate, 440.0, tailDuration, tailRelease),
	), botVolume)
}

// chimeLength is the number of samples in either chime.
func chimeLength(rate beep.SampleRate) int {
	return rate.N(noteDuration) + rate.N(tailDuration)
}
