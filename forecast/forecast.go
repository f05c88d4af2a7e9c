// Package forecast provides benchmark and exponential smoothing forecast
// methods.
package forecast

import (
	"errors"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Forecaster is a forecast method fitted to a history of observations.
// Each method is a pure function of its fitted history and parameters;
// Fit never mutates the input series.
type Forecaster interface {
	Fit(series *timeseries.Series) error
	Forecast(h int) ([]float64, error)
}

var (
	errNotFitted    = errors.New("model must be fitted before forecasting")
	errEmptySeries  = errors.New("series must contain at least one observation")
	errHorizon      = errors.New("forecast horizon must be at least 1")
	errShortHistory = errors.New("series is too short for this method")
)

// Naive forecasts every future step as the last observed value.
type Naive struct {
	last   float64
	fitted bool
}

// Fit records the last observation.
func (m *Naive) Fit(series *timeseries.Series) error {
	if series.Len() == 0 {
		return errEmptySeries
	}
	m.last = series.Values[series.Len()-1]
	m.fitted = true
	return nil
}

// Forecast returns h copies of the last observation.
func (m *Naive) Forecast(h int) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.last
	}
	return out, nil
}

// SeasonalNaive forecasts each future step as the observation from the same
// phase of the last complete cycle.
type SeasonalNaive struct {
	Period int

	lastCycle []float64
	fitted    bool
}

// Fit records the final cycle of observations.
func (m *SeasonalNaive) Fit(series *timeseries.Series) error {
	if m.Period < 2 {
		return errors.New("seasonal period must be at least 2")
	}
	if series.Len() < m.Period {
		return errShortHistory
	}
	n := series.Len()
	m.lastCycle = make([]float64, m.Period)
	copy(m.lastCycle, series.Values[n-m.Period:])
	m.fitted = true
	return nil
}

// Forecast repeats the last observed cycle.
func (m *SeasonalNaive) Forecast(h int) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.lastCycle[i%m.Period]
	}
	return out, nil
}

// Drift forecasts along the straight line between the first and last
// observations: y_n + h*(y_n - y_1)/(n-1).
type Drift struct {
	last   float64
	slope  float64
	fitted bool
}

// Fit computes the drift slope from the history.
func (m *Drift) Fit(series *timeseries.Series) error {
	n := series.Len()
	if n < 2 {
		return errShortHistory
	}
	m.last = series.Values[n-1]
	m.slope = (series.Values[n-1] - series.Values[0]) / float64(n-1)
	m.fitted = true
	return nil
}

// Forecast extends the drift line h steps.
func (m *Drift) Forecast(h int) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.last + float64(i+1)*m.slope
	}
	return out, nil
}

// Mean forecasts every future step as the arithmetic mean of the history.
type Mean struct {
	mean   float64
	fitted bool
}

// Fit computes the mean of the history.
func (m *Mean) Fit(series *timeseries.Series) error {
	if series.Len() == 0 {
		return errEmptySeries
	}
	m.mean = series.Mean()
	m.fitted = true
	return nil
}

// Forecast returns h copies of the historical mean.
func (m *Mean) Forecast(h int) ([]float64, error) {
	if !m.fitted {
		return nil, errNotFitted
	}
	if h < 1 {
		return nil, errHorizon
	}
	out := make([]float64, h)
	for i := range out {
		out[i] = m.mean
	}
	return out, nil
}
