package timeseries

import (
	"math"
	"math/rand"
	"time"
)

// SyntheticOptions controls synthetic series generation.
type SyntheticOptions struct {
	N         int       // Number of observations
	Period    int       // Seasonal period (0 = no seasonality)
	Level     float64   // Base level
	Slope     float64   // Linear trend per step
	Amplitude float64   // Seasonal amplitude
	Noise     float64   // Gaussian noise standard deviation
	Seed      int64     // Random seed; same seed, same series
	Start     time.Time // Timestamp of the first observation (weekly steps)
}

// DefaultSyntheticOptions returns options for a weekly series with yearly
// seasonality, roughly two years long.
func DefaultSyntheticOptions() *SyntheticOptions {
	return &SyntheticOptions{
		N:         110,
		Period:    52,
		Level:     100,
		Slope:     0.25,
		Amplitude: 10,
		Noise:     2,
		Seed:      42,
		Start:     time.Date(2010, time.January, 3, 0, 0, 0, 0, time.UTC),
	}
}

// Synthetic generates a reproducible trend + seasonal + noise series.
// All data lives in memory only; nothing is persisted.
func Synthetic(opts *SyntheticOptions) *Series {
	if opts == nil {
		opts = DefaultSyntheticOptions()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	values := make([]float64, opts.N)
	for i := range values {
		v := opts.Level + opts.Slope*float64(i)
		if opts.Period > 1 {
			v += opts.Amplitude * math.Sin(2*math.Pi*float64(i)/float64(opts.Period))
		}
		v += rng.NormFloat64() * opts.Noise
		values[i] = v
	}

	return &Series{
		Timestamps: WeeklyRange(opts.Start, opts.N),
		Values:     values,
		Name:       "synthetic",
	}
}
