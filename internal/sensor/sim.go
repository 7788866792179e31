package sensor

import "math"

// SimSource synthesizes a deterministic environmental wave: something slowly
// approaching and retreating, with an occasional close approach burst. Given
// the same number of Read calls it always produces the same sequence, which
// is what makes brain-level tests reproducible.
type SimSource struct {
	tick         uint64
	encoderLeft  int
	encoderRight int
}

func NewSimSource() *SimSource {
	return &SimSource{}
}

func (s *SimSource) Name() string {
	return "sim"
}

func (s *SimSource) Read() (Reading, error) {
	s.tick++

	wave := math.Sin(float64(s.tick) * 0.02)
	distance := 50.0 + wave*40.0

	// Occasional close approach
	if s.tick%200 > 180 {
		distance = 10.0 + float64(s.tick%20)
	}

	s.encoderLeft += 5
	s.encoderRight += 5

	return Reading{
		Distance:     distance,
		Stimulus:     wave,
		Gyro:         wave * 10.0,
		Sound:        0.1 + math.Abs(wave*0.1),
		Light:        0.5,
		EncoderLeft:  s.encoderLeft,
		EncoderRight: s.encoderRight,
	}, nil
}
