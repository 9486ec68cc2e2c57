package sim

import "math/rand"

// ArrivalSampler generates inter-arrival gaps for the arrival process.
type ArrivalSampler interface {
	// SampleGap returns the next inter-arrival gap in hours.
	// Always returns a positive value.
	SampleGap(rng *rand.Rand) float64
}

// PoissonArrivals generates exponentially-distributed inter-arrival gaps
// with mean 1/rate, i.e. a Poisson arrival process.
type PoissonArrivals struct {
	ratePerHour float64
}

// NewPoissonArrivals creates a Poisson arrival sampler for the given rate
// in calls per hour. The rate must have been validated positive.
func NewPoissonArrivals(ratePerHour float64) *PoissonArrivals {
	return &PoissonArrivals{ratePerHour: ratePerHour}
}

func (s *PoissonArrivals) SampleGap(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.ratePerHour
}

// DurationSampler generates service durations.
type DurationSampler interface {
	// Sample returns a service duration in hours. Always positive.
	Sample(rng *rand.Rand) float64
}

// ExponentialService produces exponentially-distributed service durations.
type ExponentialService struct {
	mean float64
}

// NewExponentialService creates a service-duration sampler with the given
// mean in hours. The mean must have been validated positive.
func NewExponentialService(mean float64) *ExponentialService {
	return &ExponentialService{mean: mean}
}

func (s *ExponentialService) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}
