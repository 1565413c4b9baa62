package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// oscillator streams a fixed-length tone. Noise is seeded so every play
// of the same effect sounds the same.
type oscillator struct {
	freq   float64
	wave   Waveform
	rate   beep.SampleRate
	total  int
	pos    int
	phase  float64
	source *rand.Rand
}

// NewOscillator returns a streamer producing d of the given waveform.
func NewOscillator(freq float64, d time.Duration, wave Waveform, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		wave:   wave,
		rate:   rate,
		total:  rate.N(d),
		source: rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.total {
		return 0, false
	}
	inc := o.freq / float64(o.rate)
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = o.source.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += inc
		if o.phase >= 1 {
			o.phase--
		}
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite streamer.
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	pos      int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.attack > 0 && e.pos < e.attack:
			vol = float64(e.pos) / float64(e.attack)
		case e.release > 0 && e.pos >= e.total-e.release:
			vol = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// noteFreq returns the frequency of a MIDI note, A4 (69) = 440Hz.
func noteFreq(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// Effect durations.
const (
	moveDuration      = 70 * time.Millisecond
	collisionDuration = 450 * time.Millisecond
	musicNote         = 180 * time.Millisecond
)

// Relative volumes. The hop is deliberately quiet.
const (
	moveVolume      = 0.05
	collisionVolume = 0.6
	musicVolume     = 0.15
)

// musicNotes is the background loop, one MIDI note per beat; 0 is a rest.
var musicNotes = []int{
	72, 76, 79, 76, 74, 77, 81, 77,
	72, 76, 79, 84, 83, 79, 74, 0,
}

// CreateMoveSound is a short rising chirp played when a step lands.
func CreateMoveSound(rate beep.SampleRate) beep.Streamer {
	low := NewEnvelope(NewOscillator(noteFreq(79), moveDuration/2, WaveSquare, rate), moveDuration/2, 5*time.Millisecond, 10*time.Millisecond, rate)
	high := NewEnvelope(NewOscillator(noteFreq(84), moveDuration/2, WaveSquare, rate), moveDuration/2, 5*time.Millisecond, 20*time.Millisecond, rate)
	return newVolume(beep.Seq(low, high), moveVolume)
}

// CreateCollisionSound is a noisy crash with a low thump under it.
func CreateCollisionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, collisionDuration, WaveNoise, rate), collisionDuration, 2*time.Millisecond, 400*time.Millisecond, rate)
	thump := NewEnvelope(NewOscillator(55, collisionDuration, WaveSine, rate), collisionDuration, 2*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(beep.Mix(noise, thump), collisionVolume)
}

// CreateMusic returns one pass of the background tune.
func CreateMusic(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(musicNotes))
	for _, n := range musicNotes {
		if n == 0 {
			notes = append(notes, beep.Silence(rate.N(musicNote)))
			continue
		}
		osc := NewOscillator(noteFreq(n), musicNote, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, musicNote, 10*time.Millisecond, 60*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), musicVolume)
}
