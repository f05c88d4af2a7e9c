package stats

import (
	"errors"
	"math"

	"github.com/sartorproj/gosmooth/timeseries"
)

// Decomposition represents the classical decomposition of a time series.
type Decomposition struct {
	Original *timeseries.Series
	Trend    *timeseries.Series
	Seasonal *timeseries.Series
	Residual *timeseries.Series

	// Indices holds the one-cycle seasonal estimates, one per phase.
	// For additive decomposition they sum to zero; for multiplicative
	// they average to one.
	Indices []float64
	Period  int
	Type    string // "additive" or "multiplicative"
}

// Decompose performs classical seasonal decomposition of a time series with
// the given period. Type is "additive" (Y = T + S + R) or "multiplicative"
// (Y = T * S * R).
//
// The trend is a centered moving average of window period, so the first and
// last period/2 trend values are NaN; detrended and residual values at those
// positions are NaN as well. The truncated edges are preserved, never imputed.
func Decompose(series *timeseries.Series, period int, decompositionType string) (*Decomposition, error) {
	n := series.Len()
	if period < 2 {
		return nil, errors.New("period must be at least 2")
	}
	if n < 2*period {
		return nil, errors.New("series must contain at least two full cycles")
	}
	if decompositionType != "additive" && decompositionType != "multiplicative" {
		return nil, errors.New(`decomposition type must be "additive" or "multiplicative"`)
	}
	multiplicative := decompositionType == "multiplicative"

	trend := series.CenteredMovingAverage(period)

	// Detrend
	detrended := make([]float64, n)
	for i := 0; i < n; i++ {
		tv := trend.Values[i]
		switch {
		case math.IsNaN(tv):
			detrended[i] = math.NaN()
		case multiplicative:
			if tv == 0 {
				detrended[i] = math.NaN()
			} else {
				detrended[i] = series.Values[i] / tv
			}
		default:
			detrended[i] = series.Values[i] - tv
		}
	}

	// Mean detrended value per phase, NaN entries ignored
	indices := make([]float64, period)
	counts := make([]int, period)
	for i, v := range detrended {
		if !math.IsNaN(v) {
			indices[i%period] += v
			counts[i%period]++
		}
	}
	for i := range indices {
		if counts[i] > 0 {
			indices[i] /= float64(counts[i])
		}
	}

	// Normalize: additive indices sum to zero, multiplicative average to one
	mean := 0.0
	for _, v := range indices {
		mean += v
	}
	mean /= float64(period)
	for i := range indices {
		if multiplicative {
			indices[i] /= mean
		} else {
			indices[i] -= mean
		}
	}

	seasonal := make([]float64, n)
	for i := range seasonal {
		seasonal[i] = indices[i%period]
	}

	residual := make([]float64, n)
	for i := 0; i < n; i++ {
		tv := trend.Values[i]
		switch {
		case math.IsNaN(tv):
			residual[i] = math.NaN()
		case multiplicative:
			if tv*seasonal[i] == 0 {
				residual[i] = math.NaN()
			} else {
				residual[i] = series.Values[i] / (tv * seasonal[i])
			}
		default:
			residual[i] = series.Values[i] - tv - seasonal[i]
		}
	}

	return &Decomposition{
		Original: series,
		Trend:    trend,
		Seasonal: &timeseries.Series{
			Timestamps: series.Timestamps,
			Values:     seasonal,
			Name:       "seasonal",
		},
		Residual: &timeseries.Series{
			Timestamps: series.Timestamps,
			Values:     residual,
			Name:       "residual",
		},
		Indices: indices,
		Period:  period,
		Type:    decompositionType,
	}, nil
}

// SeasonallyAdjusted returns the original series with the seasonal component
// removed.
func (d *Decomposition) SeasonallyAdjusted() *timeseries.Series {
	n := d.Original.Len()
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		if d.Type == "multiplicative" {
			values[i] = d.Original.Values[i] / d.Seasonal.Values[i]
		} else {
			values[i] = d.Original.Values[i] - d.Seasonal.Values[i]
		}
	}
	return &timeseries.Series{
		Timestamps: d.Original.Timestamps,
		Values:     values,
		Name:       "seasonally_adjusted",
	}
}
