package forecast

import (
	"errors"
	"math"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Initial selects the seed policy for the first smoothed estimate.
type Initial int

const (
	// InitialFirst seeds the recurrence with the first observation.
	InitialFirst Initial = iota
	// InitialMean seeds the recurrence with the mean of the history.
	InitialMean
	// InitialValue seeds the recurrence with an explicit Seed value.
	InitialValue
)

// SES implements simple exponential smoothing.
//
// The one-step forecast follows the recurrence
//
//	ŷ_{t+1} = α·y_t + (1−α)·ŷ_t
//
// so the implied weight on the observation k steps in the past is α(1−α)^k,
// strictly decreasing in k. The seed ŷ_1 is a configurable policy, by
// default the first observation.
type SES struct {
	Alpha   float64
	Initial Initial
	Seed    float64 // used when Initial == InitialValue

	level  float64
	fitted []float64
	data   *timeseries.Series
	isFit  bool
}

// NewSES creates a simple exponential smoothing model with the first
// observation as seed.
func NewSES(alpha float64) *SES {
	return &SES{Alpha: alpha, Initial: InitialFirst}
}

// Fit runs the smoothing recurrence over the history.
func (m *SES) Fit(series *timeseries.Series) error {
	if m.Alpha <= 0 || m.Alpha > 1 {
		return errors.New("alpha must be in (0, 1]")
	}
	if series.Len() == 0 {
		return errEmptySeries
	}

	level := 0.0
	switch m.Initial {
	case InitialMean:
		level = series.Mean()
	case InitialValue:
		level = m.Seed
	default:
		level = series.Values[0]
	}

	m.fitted = make([]float64, series.Len())
	for t, y := range series.Values {
		m.fitted[t] = level
		level = m.Alpha*y + (1-m.Alpha)*level
	}

	m.level = level
	m.data = series
	m.isFit = true
	return nil
}

// Forecast returns h copies of the final smoothed level; the SES forecast is
// flat beyond one step.
func (m *SES) Forecast(h int) ([]float64, error) {
	if !m.isFit {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.level
	}
	return out, nil
}

// Fitted returns the one-step-ahead fitted values, one per observation.
func (m *SES) Fitted() []float64 {
	return m.fitted
}

// Residuals returns the one-step forecast errors as a series.
func (m *SES) Residuals() *timeseries.Series {
	if !m.isFit {
		return nil
	}
	values := make([]float64, len(m.fitted))
	for i := range values {
		values[i] = m.data.Values[i] - m.fitted[i]
	}
	return &timeseries.Series{
		Timestamps: m.data.Timestamps,
		Values:     values,
		Name:       "residuals",
	}
}

// Weights returns the implied weights α(1−α)^j on the j most recent
// observations, for j = 0..k.
func (m *SES) Weights(k int) []float64 {
	if k < 0 {
		return nil
	}
	weights := make([]float64, k+1)
	for j := 0; j <= k; j++ {
		weights[j] = m.Alpha * math.Pow(1-m.Alpha, float64(j))
	}
	return weights
}
