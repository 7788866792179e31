package brain

import (
	"math"

	"github.com/Hulupeep/mbot-ruvector/internal/sensor"
)

// Smoothing and homeostasis constants. These shape the robot's temperament
// and are deliberately not configurable.
const (
	alpha = 0.15 // EMA smoothing factor for tension and coherence

	energyDrain    = 0.001  // per tick while tension > 0.5
	energyRecovery = 0.0005 // per tick otherwise; fatigue outpaces rest
	energyFloor    = 0.1
	energyCeiling  = 1.0

	curiosityBaseline = 0.2
)

// Brain is the affective state model. All mutation happens in Advance,
// which is called from a single goroutine (the tick loop); the struct is
// not safe for concurrent use.
//
// Each instance is fully self-contained, so multiple independent brains
// (e.g. per robot) can run in one process.
type Brain struct {
	tension   float64
	coherence float64
	energy    float64
	tick      uint64
}

// New returns a brain at rest: no tension, full coherence, full energy.
func New() *Brain {
	return &Brain{
		tension:   0.0,
		coherence: 1.0,
		energy:    1.0,
	}
}

// Advance computes the next snapshot from the previous internal state and
// one environmental reading. It is deterministic: the same prior state and
// reading always yield the same snapshot. Snapshot ticks count up from 0.
func (b *Brain) Advance(r sensor.Reading) *Snapshot {
	// Proximity-driven threat plus ambient stimulus
	proximity := 0.0
	if r.Distance < 100.0 {
		proximity = 1.0 - r.Distance/100.0
	}
	rawTension := proximity*0.7 + math.Abs(r.Stimulus)*0.3

	b.tension = clamp(alpha*rawTension + (1.0-alpha)*b.tension)

	// Coherence drops with high or unstable tension
	instability := math.Abs(rawTension - b.tension)
	rawCoherence := 1.0 - (b.tension*0.4 + instability*0.6)
	b.coherence = clamp(alpha*rawCoherence + (1.0-alpha)*b.coherence)

	// Energy drains under stress, recovers at rest
	if b.tension > 0.5 {
		b.energy = math.Max(b.energy-energyDrain, energyFloor)
	} else {
		b.energy = math.Min(b.energy+energyRecovery, energyCeiling)
	}

	// Curiosity rises when things are interesting but not alarming
	curiosity := curiosityBaseline
	if b.tension > 0.2 && b.tension < 0.6 {
		curiosity = math.Min(b.coherence*0.7+math.Abs(r.Stimulus)*0.3, 1.0)
	}

	mode := ModeForTension(b.tension)

	snap := &Snapshot{
		Tick:         b.tick,
		Mode:         mode,
		Tension:      b.tension,
		Coherence:    b.coherence,
		Energy:       b.energy,
		Curiosity:    curiosity,
		Distance:     r.Distance,
		Gyro:         r.Gyro,
		Sound:        r.Sound,
		Light:        r.Light,
		EncoderLeft:  r.EncoderLeft,
		EncoderRight: r.EncoderRight,
		LED:          mode.LEDColor(),
	}
	b.tick++
	return snap
}

// TickCount returns the number of completed Advance calls.
func (b *Brain) TickCount() uint64 {
	return b.tick
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
