package brain

import (
	"encoding/json"
	"testing"
)

func TestModeForTension(t *testing.T) {
	tests := []struct {
		tension float64
		want    Mode
	}{
		{0.0, Calm},
		{0.1, Calm},
		{0.20, Calm}, // thresholds are strict lower bounds
		{0.21, Active},
		{0.3, Active},
		{0.55, Active},
		{0.56, Spike},
		{0.7, Spike},
		{0.85, Spike},
		{0.86, Protect},
		{0.9, Protect},
		{1.0, Protect},
	}

	for _, tt := range tests {
		if got := ModeForTension(tt.tension); got != tt.want {
			t.Errorf("ModeForTension(%v) = %v, want %v", tt.tension, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Calm, "Calm"},
		{Active, "Active"},
		{Spike, "Spike"},
		{Protect, "Protect"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestModeJSONRoundTrip(t *testing.T) {
	for _, m := range []Mode{Calm, Active, Spike, Protect} {
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", m, err)
		}

		var got Mode
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if got != m {
			t.Errorf("round trip of %v produced %v", m, got)
		}
	}
}

func TestModeLEDColor(t *testing.T) {
	colors := map[Mode][3]uint8{
		Calm:    {0, 100, 255},
		Active:  {0, 255, 100},
		Spike:   {255, 200, 0},
		Protect: {255, 0, 0},
	}

	for mode, want := range colors {
		if got := mode.LEDColor(); got != want {
			t.Errorf("%v.LEDColor() = %v, want %v", mode, got, want)
		}
	}
}

func TestSnapshotJSONFields(t *testing.T) {
	snap := &Snapshot{
		Tick:         7,
		Mode:         Active,
		Tension:      0.3,
		Coherence:    0.8,
		Energy:       0.9,
		Curiosity:    0.5,
		Distance:     42.5,
		Gyro:         -3.1,
		Sound:        0.15,
		Light:        0.5,
		EncoderLeft:  35,
		EncoderRight: 35,
		LED:          Active.LEDColor(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	for _, field := range []string{
		"tick", "mode", "tension", "coherence", "energy", "curiosity",
		"distance", "gyro", "sound", "light", "encoderLeft", "encoderRight", "led",
	} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("snapshot JSON missing field %q", field)
		}
	}

	if decoded["mode"] != "Active" {
		t.Errorf("mode = %v, want %q", decoded["mode"], "Active")
	}
	if decoded["tick"] != float64(7) {
		t.Errorf("tick = %v, want 7", decoded["tick"])
	}
}
