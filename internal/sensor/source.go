package sensor

// Source defines the interface for an environmental reading provider. The
// simulated source generates a deterministic wave; a hardware-backed source
// would read the mBot2's actual ultrasonic/gyro/encoder sensors over serial
// or Bluetooth. The tick loop treats both identically.
//
// Implementations are called from a single goroutine (the tick loop) and do
// not need to be safe for concurrent use.
type Source interface {
	// Name returns a short lowercase identifier for this source,
	// e.g. "sim", "serial". Surfaced in logs and the config endpoint.
	Name() string

	// Read returns the current environmental reading. Called once per
	// tick. Implementations should be fast; the tick loop does not
	// tolerate reads slower than the tick interval.
	Read() (Reading, error)
}

// Reading is one environmental sample, the input to a single brain tick.
type Reading struct {
	// Distance is the ultrasonic range in cm (0-400). Anything under
	// 100 cm contributes proximity tension.
	Distance float64

	// Stimulus is a normalized ambient stimulus in [-1, 1]. The
	// simulator sets this to its wave value; a hardware source would
	// derive it from accelerometer/sound novelty.
	Stimulus float64

	// Gyro is the z-axis rotation rate in degrees/second.
	Gyro float64

	// Sound is the microphone level (0.0-1.0).
	Sound float64

	// Light is the light sensor level (0.0-1.0).
	Light float64

	// EncoderLeft and EncoderRight are cumulative wheel encoder ticks.
	EncoderLeft  int
	EncoderRight int
}
