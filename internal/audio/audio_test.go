package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/money-grabber/internal/core"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestChimes(t *testing.T) {
	tests := []struct {
		name  string
		chime func(beep.SampleRate) beep.Streamer
	}{
		{"player", CoinChime},
		{"bot", BotChime},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(tc.chime(sampleRate))

			if len(samples) != chimeLength(sampleRate) {
				t.Errorf("chime length = %d samples, expected %d", len(samples), chimeLength(sampleRate))
			}

			peak := 0.0
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("sample %d out of range: %v", i, s)
				}
				if s[0] > peak {
					peak = s[0]
				}
			}
			if peak == 0 {
				t.Error("chime is silent")
			}

			// Envelope starts from silence
			if samples[0][0] != 0 {
				t.Errorf("first sample = %v, expected 0", samples[0][0])
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	env := newEnvelope(beep.Take(rate.N(100*time.Millisecond), ones), rate,
		100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond)
	samples := drain(env)

	if len(samples) != 100 {
		t.Fatalf("envelope length = %d, expected 100", len(samples))
	}

	tests := []struct {
		index    int
		expected float64
	}{
		{0, 0},
		{5, 0.5},
		{50, 1},
		{90, 0.5},
		{99, 0.05},
	}
	for _, tc := range tests {
		if got := samples[tc.index][0]; got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("sample[%d] = %v, expected %v", tc.index, got, tc.expected)
		}
	}
}

func TestVolumeSilent(t *testing.T) {
	samples := drain(volume(CoinChime(sampleRate), 0))
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestMutedPlayer(t *testing.T) {
	p := New(Options{Mute: true}, nil)

	if p.Enabled() {
		t.Error("Enabled() = true, expected muted player to be silent")
	}
	// Must be safe to call on a silent player
	p.PlayCapture(core.CapturerPlayer)
	p.PlayCapture(core.CapturerBot)
	p.Close()
}

func TestLoadWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coin.wav")

	rate := beep.SampleRate(22050)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := wav.Encode(f, tone(rate, 440, 100*time.Millisecond), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	buf, err := loadWAV(path)
	if err != nil {
		t.Fatalf("loadWAV() error = %v", err)
	}

	// 100ms resampled to the speaker rate
	want := sampleRate.N(100 * time.Millisecond)
	if buf.Len() < want-100 || buf.Len() > want+100 {
		t.Errorf("Len() = %d, expected about %d", buf.Len(), want)
	}
	if buf.Format().SampleRate != sampleRate {
		t.Errorf("SampleRate = %v, expected %v", buf.Format().SampleRate, sampleRate)
	}
}

func TestLoadWAVErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.wav")},
		{"garbage", garbage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadWAV(tc.path); err == nil {
				t.Error("loadWAV() should fail")
			}
		})
	}
}
