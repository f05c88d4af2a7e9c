package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosmooth/timeseries"
)

func TestNaive(t *testing.T) {
	m := &Naive{}
	require.NoError(t, m.Fit(timeseries.New([]float64{3, 7, 5})))

	out, err := m.Forecast(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, out)
}

func TestNaiveEmptySeries(t *testing.T) {
	m := &Naive{}
	assert.Error(t, m.Fit(timeseries.New(nil)))
}

func TestSeasonalNaive(t *testing.T) {
	m := &SeasonalNaive{Period: 4}
	require.NoError(t, m.Fit(timeseries.New([]float64{1, 2, 3, 4, 10, 20, 30, 40})))

	out, err := m.Forecast(6)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40, 10, 20}, out)
}

func TestSeasonalNaiveTooShort(t *testing.T) {
	m := &SeasonalNaive{Period: 4}
	assert.Error(t, m.Fit(timeseries.New([]float64{1, 2, 3})))
}

func TestDrift(t *testing.T) {
	// Slope is (14 - 2) / 3 = 4
	m := &Drift{}
	require.NoError(t, m.Fit(timeseries.New([]float64{2, 5, 11, 14})))

	out, err := m.Forecast(3)
	require.NoError(t, err)
	assert.InDelta(t, 18, out[0], 1e-10)
	assert.InDelta(t, 22, out[1], 1e-10)
	assert.InDelta(t, 26, out[2], 1e-10)
}

func TestMean(t *testing.T) {
	m := &Mean{}
	require.NoError(t, m.Fit(timeseries.New([]float64{10, 20, 30})))

	out, err := m.Forecast(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 20}, out)
}

func TestForecastBeforeFit(t *testing.T) {
	for _, m := range []Forecaster{&Naive{}, &SeasonalNaive{Period: 4}, &Drift{}, &Mean{}, NewSES(0.5), NewHolt(0.5, 0.5)} {
		_, err := m.Forecast(1)
		assert.Error(t, err)
	}
}

func TestInvalidHorizon(t *testing.T) {
	m := &Naive{}
	require.NoError(t, m.Fit(timeseries.New([]float64{1})))
	_, err := m.Forecast(0)
	assert.Error(t, err)
}
