package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultVolume keeps cues well below full scale
const DefaultVolume = 0.3

// Speaker plays cues on the system audio device
type Speaker struct {
	volume float64
	logger *slog.Logger

	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

var _ Player = (*Speaker)(nil)

// OpenSpeaker initialises the audio device. Only one Speaker may be open at a time.
func OpenSpeaker(volume float64, logger *slog.Logger) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	s := &Speaker{
		volume: volume,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues cue on the mixer and returns immediately
func (s *Speaker) Play(cue Cue) {
	tone, err := Tone(cue, s.volume)
	if err != nil {
		s.logger.Warn("failed to play cue",
			slog.String("cue", cue.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
