package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate every cue is rendered at
const SampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

// melodies lists the notes each cue plays in sequence
var melodies = map[Cue][]note{
	CueDrop:      {{220, 30 * time.Millisecond}},
	CueLand:      {{330, 40 * time.Millisecond}},
	CueClear:     {{660, 60 * time.Millisecond}, {880, 80 * time.Millisecond}},
	CueFourLines: {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}, {1046.5, 120 * time.Millisecond}},
	CueLevelUp:   {{440, 80 * time.Millisecond}, {587.33, 80 * time.Millisecond}, {880, 120 * time.Millisecond}},
	CueGameOver:  {{392, 150 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
}

// Duration returns how long a cue plays for
func Duration(cue Cue) time.Duration {
	var total time.Duration
	for _, n := range melodies[cue] {
		total += n.duration
	}
	return total
}

// Tone renders a cue as a finite streamer at the given volume in [0, 1]
func Tone(cue Cue, volume float64) (beep.Streamer, error) {
	notes, ok := melodies[cue]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s tone: %w", cue, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(n.duration), sine))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales s linearly; zero or less is silent
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
