package forecast

import (
	"errors"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Holt implements Holt's linear trend method: a smoothed level and a
// smoothed trend slope, each with its own smoothing parameter. The h-step
// forecast is l_T + h·b_T, linear in the horizon.
type Holt struct {
	Alpha float64 // level smoothing parameter
	Beta  float64 // trend smoothing parameter

	level  float64
	trend  float64
	fitted []float64
	data   *timeseries.Series
	isFit  bool
}

// NewHolt creates a Holt linear trend model.
func NewHolt(alpha, beta float64) *Holt {
	return &Holt{Alpha: alpha, Beta: beta}
}

// Fit runs the level and trend recurrences over the history. The level is
// seeded with the first observation and the trend with the first difference.
func (m *Holt) Fit(series *timeseries.Series) error {
	if m.Alpha <= 0 || m.Alpha > 1 {
		return errors.New("alpha must be in (0, 1]")
	}
	if m.Beta <= 0 || m.Beta > 1 {
		return errors.New("beta must be in (0, 1]")
	}
	if series.Len() < 2 {
		return errShortHistory
	}

	level := series.Values[0]
	trend := series.Values[1] - series.Values[0]

	m.fitted = make([]float64, series.Len())
	m.fitted[0] = series.Values[0]
	for t := 1; t < series.Len(); t++ {
		m.fitted[t] = level + trend

		prevLevel := level
		level = m.Alpha*series.Values[t] + (1-m.Alpha)*(level+trend)
		trend = m.Beta*(level-prevLevel) + (1-m.Beta)*trend
	}

	m.level = level
	m.trend = trend
	m.data = series
	m.isFit = true
	return nil
}

// Forecast returns l_T + h·b_T for h = 1..steps.
func (m *Holt) Forecast(h int) ([]float64, error) {
	if !m.isFit {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.level + float64(i+1)*m.trend
	}
	return out, nil
}

// Fitted returns the one-step-ahead fitted values, one per observation.
func (m *Holt) Fitted() []float64 {
	return m.fitted
}

// Level returns the final smoothed level.
func (m *Holt) Level() float64 {
	return m.level
}

// Trend returns the final smoothed trend slope.
func (m *Holt) Trend() float64 {
	return m.trend
}

// Residuals returns the one-step forecast errors as a series.
func (m *Holt) Residuals() *timeseries.Series {
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
