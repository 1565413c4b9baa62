package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of frames and the
// peak absolute sample.
func drain(t *testing.T, s beep.Streamer, limit int) (frames int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for frames < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		frames += n
		if !ok {
			return frames, peak
		}
	}
	t.Fatalf("streamer still running after %d frames", limit)
	return frames, peak
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, sampleRate)
		frames, peak := drain(t, osc, sampleRate.N(time.Second))

		if want := sampleRate.N(100 * time.Millisecond); frames != want {
			t.Errorf("wave %d: %d frames, want %d", wave, frames, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("wave %d: peak %v out of (0, 1]", wave, peak)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, 1)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at attack start", buf[0][0])
	}
}

func TestEffectsAreFinite(t *testing.T) {
	tests := []struct {
		name   string
		create func(beep.SampleRate) beep.Streamer
		want   time.Duration
	}{
		{"move", CreateMoveSound, moveDuration},
		{"collision", CreateCollisionSound, collisionDuration},
		{"music", CreateMusic, time.Duration(len(musicNotes)) * musicNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, peak := drain(t, tt.create(sampleRate), sampleRate.N(10*time.Second))
			want := sampleRate.N(tt.want)
			// Mixed streams may finish on a buffer boundary.
			if frames < want-2 || frames > want+512 {
				t.Errorf("%d frames, want about %d", frames, want)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
}

func TestMoveSoundIsQuiet(t *testing.T) {
	_, peak := drain(t, CreateMoveSound(sampleRate), sampleRate.N(time.Second))
	if peak > moveVolume+1e-9 {
		t.Errorf("move sound peak %v above volume %v", peak, moveVolume)
	}
}

func TestReplayRunsUntilStopped(t *testing.T) {
	r := &replay{create: CreateMoveSound}
	buf := make([][2]float64, 512)
	for i := 0; i < 100; i++ {
		if _, ok := r.Stream(buf); !ok {
			t.Fatalf("replay ended after %d buffers", i)
		}
	}

	r.stopped = true
	if n, ok := r.Stream(buf); ok || n != 0 {
		t.Errorf("stopped replay streamed %d samples, ok=%v", n, ok)
	}
}

func TestNoteFreq(t *testing.T) {
	if got := noteFreq(69); got != 440 {
		t.Errorf("noteFreq(69) = %v, want 440", got)
	}
	if got := noteFreq(81); math.Abs(got-880) > 1e-9 {
		t.Errorf("noteFreq(81) = %v, want 880", got)
	}
}
