package ets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosmooth/timeseries"
)

func TestSpecString(t *testing.T) {
	assert.Equal(t, "ETS(A,N,N)", Spec{}.String())
	assert.Equal(t, "ETS(M,Ad,M)", Spec{
		Error:    ErrorMultiplicative,
		Trend:    TrendDamped,
		Seasonal: SeasonalMultiplicative,
	}.String())
	assert.Equal(t, "ETS(A,A,A)", Spec{
		Trend:    TrendAdditive,
		Seasonal: SeasonalAdditive,
	}.String())
}

func TestANNFixedParamsFollowsSESRecurrence(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 40, Level: 30, Noise: 3, Seed: 8,
	})

	m := New(Spec{}, 0)
	m.Params = Params{Alpha: 0.5}
	m.FixedParams = true
	require.NoError(t, m.Fit(series))

	// With additive error and no trend or seasonality, the level update is
	// exactly simple exponential smoothing
	fitted := m.Fitted()
	res := m.Residuals()
	for i := 1; i < len(fitted); i++ {
		assert.InDelta(t, fitted[i-1]+0.5*res.Values[i-1], fitted[i], 1e-9, "index %d", i)
	}

	// Flat forecast at the final level
	out, err := m.Forecast(3)
	require.NoError(t, err)
	level, _, _ := m.States()
	assert.InDelta(t, level, out[0], 1e-12)
	assert.Equal(t, out[0], out[2])
}

func TestMNNFixedParamsFollowsSESRecurrence(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 40, Level: 100, Noise: 2, Seed: 6,
	})

	m := New(Spec{Error: ErrorMultiplicative}, 0)
	m.Params = Params{Alpha: 0.3}
	m.FixedParams = true
	require.NoError(t, m.Fit(series))

	// l_t = l_{t-1}(1 + alpha*eps) reduces to the same point recurrence
	fitted := m.Fitted()
	res := m.Residuals()
	for i := 1; i < len(fitted); i++ {
		assert.InDelta(t, fitted[i-1]+0.3*res.Values[i-1], fitted[i], 1e-9, "index %d", i)
	}
}

func TestAANExactOnLinearSeries(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 3 + 2*float64(i)
	}

	m := New(Spec{Trend: TrendAdditive}, 0)
	m.Params = Params{Alpha: 0.5, Beta: 0.1}
	m.FixedParams = true
	require.NoError(t, m.Fit(timeseries.New(values)))

	for i, r := range m.Residuals().Values {
		assert.InDelta(t, 0, r, 1e-8, "residual %d", i)
	}

	out, err := m.Forecast(4)
	require.NoError(t, err)
	for h, f := range out {
		assert.InDelta(t, 3+2*float64(29+h+1), f, 1e-8, "horizon %d", h+1)
	}
}

func TestAAAExactOnSeasonalLinearSeries(t *testing.T) {
	pattern := []float64{1, -1, 2, -2}
	values := make([]float64, 16)
	for i := range values {
		values[i] = 10 + 2*float64(i) + pattern[i%4]
	}

	m := New(Spec{Trend: TrendAdditive, Seasonal: SeasonalAdditive}, 4)
	m.Params = Params{Alpha: 0.2, Beta: 0.05, Gamma: 0.1}
	m.FixedParams = true
	require.NoError(t, m.Fit(timeseries.New(values)))

	for i, r := range m.Residuals().Values {
		assert.InDelta(t, 0, r, 1e-8, "residual %d", i)
	}

	out, err := m.Forecast(8)
	require.NoError(t, err)
	for h, f := range out {
		expected := 10 + 2*float64(16+h) + pattern[(16+h)%4]
		assert.InDelta(t, expected, f, 1e-8, "horizon %d", h+1)
	}
}

func TestEstimatedANN(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 80, Level: 50, Noise: 2, Seed: 21,
	})

	m := New(Spec{}, 0)
	require.NoError(t, m.Fit(series))

	assert.Greater(t, m.Params.Alpha, 0.0)
	assert.Less(t, m.Params.Alpha, 1.0)
	assert.False(t, math.IsNaN(m.AIC))
	assert.False(t, math.IsNaN(m.AICc))
	assert.False(t, math.IsNaN(m.BIC))
	assert.Greater(t, m.AICc, m.AIC)

	out, err := m.Forecast(5)
	require.NoError(t, err)
	for _, f := range out {
		assert.False(t, math.IsNaN(f))
	}
}

func TestEstimatedSeasonalModel(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 120, Period: 12, Level: 100, Slope: 0.2, Amplitude: 10, Noise: 1, Seed: 33,
	})

	m := New(Spec{Trend: TrendAdditive, Seasonal: SeasonalAdditive}, 12)
	require.NoError(t, m.Fit(series))

	require.Len(t, m.Fitted(), series.Len())
	_, _, seasonal := m.States()
	require.Len(t, seasonal, 12)

	out, err := m.Forecast(12)
	require.NoError(t, err)
	require.Len(t, out, 12)
	for _, f := range out {
		assert.False(t, math.IsNaN(f))
	}
}

func TestFitValidation(t *testing.T) {
	short := timeseries.New([]float64{1, 2, 3})
	assert.Error(t, New(Spec{}, 0).Fit(short))

	// Seasonal model without two full cycles
	series := timeseries.New([]float64{1, 2, 3, 4, 5, 6})
	m := New(Spec{Seasonal: SeasonalAdditive}, 4)
	assert.Error(t, m.Fit(series))

	// Multiplicative error on non-positive data
	neg := timeseries.New([]float64{5, -1, 3, 4, 5, 6})
	assert.Error(t, New(Spec{Error: ErrorMultiplicative}, 0).Fit(neg))
}

func TestFixedParamsValidation(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{N: 20, Level: 10, Noise: 1, Seed: 2})

	m := New(Spec{}, 0)
	m.FixedParams = true
	m.Params = Params{Alpha: 1.5}
	assert.Error(t, m.Fit(series))

	m2 := New(Spec{Trend: TrendAdditive}, 0)
	m2.FixedParams = true
	m2.Params = Params{Alpha: 0.3, Beta: 0.5} // beta must stay below alpha
	assert.Error(t, m2.Fit(series))
}

func TestForecastBeforeFit(t *testing.T) {
	m := New(Spec{}, 0)
	_, err := m.Forecast(1)
	assert.Error(t, err)
}
