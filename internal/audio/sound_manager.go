// Package audio plays the game's sound effects and background music
// through the system speaker. Every sound is synthesized; there are no
// asset files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player is the set of sounds the game loop triggers. Implementations
// never return errors; failures are logged and playback is skipped.
type Player interface {
	PlayMove()
	PlayCollision()
	StartMusic()
	StopAll()
}

// Nop is a Player that makes no sound. Used for SSH sessions, where the
// server's speaker is not the player's.
type Nop struct{}

func (Nop) PlayMove()      {}
func (Nop) PlayCollision() {}
func (Nop) StartMusic()    {}
func (Nop) StopAll()       {}

// SoundManager owns the speaker and a mixer that all sounds play into.
type SoundManager struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *replay
	initialized bool

	musicEnabled   bool
	effectsEnabled bool
}

// NewSoundManager creates a manager with music and effects enabled. It is
// silent until Initialize succeeds. logger may be nil.
func NewSoundManager(logger *log.Logger) *SoundManager {
	return &SoundManager{
		logger:         logger,
		mixer:          &beep.Mixer{},
		musicEnabled:   true,
		effectsEnabled: true,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops everything. The manager can be initialized again.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopLocked()
	sm.initialized = false
}

// SetMusicEnabled turns the background loop on or off. Disabling stops it.
func (sm *SoundManager) SetMusicEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicEnabled = on
	if !on {
		sm.stopMusicLocked()
	}
}

// SetEffectsEnabled turns move and collision sounds on or off.
func (sm *SoundManager) SetEffectsEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.effectsEnabled = on
}

// MusicEnabled reports whether background music may play.
func (sm *SoundManager) MusicEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicEnabled
}

// EffectsEnabled reports whether sound effects may play.
func (sm *SoundManager) EffectsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.effectsEnabled
}

// PlayMove plays the hop sound.
func (sm *SoundManager) PlayMove() {
	sm.playEffect("move", CreateMoveSound)
}

// PlayCollision silences everything else and plays the crash.
func (sm *SoundManager) PlayCollision() {
	sm.mu.Lock()
	if sm.initialized {
		sm.stopLocked()
	}
	sm.mu.Unlock()

	sm.playEffect("collision", CreateCollisionSound)
}

// StartMusic starts the background loop unless it is already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicEnabled {
		return
	}
	if sm.music != nil {
		return
	}

	sm.music = &replay{create: CreateMusic}
	sm.add(sm.music)
	sm.debug("music started")
}

// StopAll stops the music and any effect still playing.
func (sm *SoundManager) StopAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopLocked()
}

func (sm *SoundManager) stopLocked() {
	sm.stopMusicLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// stopMusicLocked ends the loop; the mixer drops it on its next read.
func (sm *SoundManager) stopMusicLocked() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.stopped = true
	speaker.Unlock()
	sm.music = nil
	sm.debug("music stopped")
}

func (sm *SoundManager) playEffect(name string, create func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.effectsEnabled {
		return
	}
	sm.add(create(sampleRate))
	sm.debug("effect", "name", name)
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) debug(msg string, keyvals ...interface{}) {
	if sm.logger != nil {
		sm.logger.Debug(msg, keyvals...)
	}
}

// replay loops a generated sound by rebuilding it each time it drains,
// until stopped. Generated streamers cannot seek, which beep.Loop requires.
// stopped is guarded by the speaker lock.
type replay struct {
	create  func(beep.SampleRate) beep.Streamer
	current beep.Streamer
	stopped bool
}

func (r *replay) Stream(samples [][2]float64) (n int, ok bool) {
	if r.stopped {
		return 0, false
	}
	if r.current == nil {
		r.current = r.create(sampleRate)
	}
	n, ok = r.current.Stream(samples)
	if !ok || n < len(samples) {
		r.current = nil
	}
	return n, true
}

func (r *replay) Err() error { return nil }
