package brain

import "encoding/json"

type Mode int

const (
	Calm Mode = iota
	Active
	Spike
	Protect
)

var modeNames = map[Mode]string{
	Calm:    "Calm",
	Active:  "Active",
	Spike:   "Spike",
	Protect: "Protect",
}

var modeFromName = map[string]Mode{
	"Calm":    Calm,
	"Active":  Active,
	"Spike":   Spike,
	"Protect": Protect,
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, ok := modeFromName[s]; ok {
		*m = v
	}
	return nil
}

// ModeForTension maps a smoothed tension value onto a reflex mode. The
// thresholds are strict lower bounds: a tension of exactly 0.85 is still
// Spike, not Protect.
func ModeForTension(tension float64) Mode {
	switch {
	case tension > 0.85:
		return Protect
	case tension > 0.55:
		return Spike
	case tension > 0.20:
		return Active
	default:
		return Calm
	}
}

// LEDColor returns the RGB color the robot shows in this mode: cool blue
// when calm, green when active, amber on a spike, red when protecting.
func (m Mode) LEDColor() [3]uint8 {
	switch m {
	case Active:
		return [3]uint8{0, 255, 100}
	case Spike:
		return [3]uint8{255, 200, 0}
	case Protect:
		return [3]uint8{255, 0, 0}
	default:
		return [3]uint8{0, 100, 255}
	}
}

// Snapshot is one tick's complete output: the smoothed affective signals,
// the derived mode, and the raw environmental reading that produced them.
// Snapshots are immutable once returned from Advance and are never retained
// across ticks by the brain.
type Snapshot struct {
	Tick         uint64   `json:"tick"`
	Mode         Mode     `json:"mode"`
	Tension      float64  `json:"tension"`
	Coherence    float64  `json:"coherence"`
	Energy       float64  `json:"energy"`
	Curiosity    float64  `json:"curiosity"`
	Distance     float64  `json:"distance"`
	Gyro         float64  `json:"gyro"`
	Sound        float64  `json:"sound"`
	Light        float64  `json:"light"`
	EncoderLeft  int      `json:"encoderLeft"`
	EncoderRight int      `json:"encoderRight"`
	LED          [3]uint8 `json:"led"`
}
