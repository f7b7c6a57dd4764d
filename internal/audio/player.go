// Package audio plays capture feedback through the system speaker.
// Any failure leaves the player silent; the game never depends on sound.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/money-grabber/internal/core"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Options configures a Player.
type Options struct {
	Mute      bool   // Never touch the audio device
	SoundFile string // Optional WAV used for player captures
}

// Player plays a short chime per capture. Safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger

	playerClip *beep.Buffer
	botClip    *beep.Buffer
}

// New opens the speaker and prepares both chimes. It never fails: when the
// device is unavailable or muted the returned player is silent.
func New(opts Options, logger *log.Logger) *Player {
	p := &Player{logger: logger}
	if opts.Mute {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.warn("audio unavailable, running silent", "err", err)
		return p
	}

	p.playerClip = bufferStreamer(CoinChime(sampleRate))
	p.botClip = bufferStreamer(BotChime(sampleRate))

	if opts.SoundFile != "" {
		clip, err := loadWAV(opts.SoundFile)
		if err != nil {
			p.debug("sound file fallback", "path", opts.SoundFile, "err", err)
		} else {
			p.playerClip = clip
		}
	}

	p.enabled = true
	return p
}

// Enabled reports whether sound is being played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// PlayCapture starts the chime for a capture and returns immediately.
func (p *Player) PlayCapture(by core.Capturer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	clip := p.playerClip
	if by == core.CapturerBot {
		clip = p.botClip
	}
	speaker.Play(clip.Streamer(0, clip.Len()))
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}

func (p *Player) warn(msg string, kv ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, kv...)
	}
}

func (p *Player) debug(msg string, kv ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, kv...)
	}
}

// bufferStreamer renders a finite stream into memory so it can be replayed.
func bufferStreamer(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// loadWAV decodes a WAV file into memory at the speaker sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close() //nolint:errcheck

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream)
	}

	buf := bufferStreamer(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", path)
	}
	return buf, nil
}
