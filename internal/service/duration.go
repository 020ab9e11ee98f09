package service

import (
	"math"
	"math/rand/v2"
	"time"
)

// DurationSampler draws planned task durations from a clamped log-normal
// distribution. It holds no state, so one value can be shared freely.
type DurationSampler struct {
	Mu      float64
	Sigma   float64 `validate:"gte=0"`
	MinDays float64 `validate:"gt=0"`
	MaxDays float64 `validate:"gtefield=MinDays"`
}

// NewDurationSampler creates a sampler with the given location, spread and bounds
func NewDurationSampler(mu, sigma, minDays, maxDays float64) DurationSampler {
	return DurationSampler{Mu: mu, Sigma: sigma, MinDays: minDays, MaxDays: maxDays}
}

// SampleDays returns a duration in days within [MinDays, MaxDays]
func (s DurationSampler) SampleDays(rng *rand.Rand) float64 {
	days := math.Exp(s.Mu + s.Sigma*rng.NormFloat64())
	return math.Min(math.Max(days, s.MinDays), s.MaxDays)
}

// Sample returns a positive duration within the configured bounds
func (s DurationSampler) Sample(rng *rand.Rand) time.Duration {
	return daysToDuration(s.SampleDays(rng))
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * float64(24*time.Hour))
}
