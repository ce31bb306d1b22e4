package detect

import "math/rand/v2"

// Source supplies the uniform draws behind the confidence jitter and the
// perplexity proxy. Implementations must return values in [0, 1).
type Source interface {
	Float64() float64
}

// SystemSource returns the process-wide source. It delegates to the
// math/rand/v2 global generator, which is safe for concurrent use.
func SystemSource() Source {
	return systemSource{}
}

type systemSource struct{}

func (systemSource) Float64() float64 {
	return rand.Float64()
}

// Midpoint pins both jitter draws to the middle of their range: the score
// jitter contributes exactly zero and the perplexity draw contributes half
// its span. Tests use it to assert exact integers.
func Midpoint() Source {
	return fixedSource(0.5)
}

type fixedSource float64

func (f fixedSource) Float64() float64 {
	return float64(f)
}
