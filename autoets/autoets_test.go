package autoets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosmooth/ets"
	"github.com/sartorproj/gosmooth/timeseries"
)

func TestSearchNonSeasonal(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 80, Level: 60, Slope: 0.5, Noise: 2, Seed: 14,
	})

	result, err := Search(series, 0, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Model)

	assert.Equal(t, ets.SeasonalNone, result.Spec.Seasonal)
	assert.Greater(t, result.ModelsEvaluated, 1)
	assert.False(t, math.IsInf(result.Criterion, 1))

	out, err := result.Forecast(6)
	require.NoError(t, err)
	require.Len(t, out, 6)
	for _, f := range out {
		assert.False(t, math.IsNaN(f))
	}
}

func TestSearchSeasonalCandidatesConsidered(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 120, Period: 12, Level: 100, Amplitude: 20, Noise: 1, Seed: 25,
	})

	nonSeasonal, err := Search(series, 0, nil)
	require.NoError(t, err)
	seasonal, err := Search(series, 12, nil)
	require.NoError(t, err)

	// The seasonal search covers a strictly larger grid
	assert.Greater(t, seasonal.ModelsEvaluated, nonSeasonal.ModelsEvaluated)
	// and can only improve on the best non-seasonal candidate
	assert.LessOrEqual(t, seasonal.Criterion, nonSeasonal.Criterion)
}

func TestSearchSkipsMultiplicativeOnNegativeData(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = math.Sin(float64(i)/3) * 5 // crosses zero
	}

	result, err := Search(timeseries.New(values), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, ets.ErrorAdditive, result.Spec.Error)
}

func TestSearchShortSeasonFallsBackToNonSeasonal(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 20, Level: 50, Noise: 1, Seed: 4,
	})

	// Period larger than half the series: no seasonal candidates feasible
	result, err := Search(series, 52, nil)
	require.NoError(t, err)
	assert.Equal(t, ets.SeasonalNone, result.Spec.Seasonal)
}

func TestSearchConfig(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 60, Level: 40, Noise: 2, Seed: 19,
	})

	cfg := &Config{Criterion: "bic", AllowMultiplicative: false, AllowDamped: false}
	result, err := Search(series, 0, cfg)
	require.NoError(t, err)

	assert.Equal(t, ets.ErrorAdditive, result.Spec.Error)
	assert.NotEqual(t, ets.TrendDamped, result.Spec.Trend)
	assert.Equal(t, result.BIC, result.Criterion)

	_, err = Search(series, 0, &Config{Criterion: "sse"})
	assert.Error(t, err)
}

func TestSearchCriterionMatchesModel(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 70, Level: 30, Noise: 1.5, Seed: 9,
	})

	result, err := Search(series, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, result.Model.AICc, result.Criterion)
	assert.Equal(t, result.Model.AIC, result.AIC)
	assert.Equal(t, result.Model.BIC, result.BIC)
}
