package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosmooth/timeseries"
)

func TestHoltExactOnLinearSeries(t *testing.T) {
	// On perfectly linear data, level tracks the last observation and the
	// trend stays at the true slope regardless of the parameters.
	values := make([]float64, 20)
	for i := range values {
		values[i] = 3 + 2*float64(i)
	}

	m := NewHolt(0.4, 0.7)
	require.NoError(t, m.Fit(timeseries.New(values)))

	assert.InDelta(t, values[19], m.Level(), 1e-9)
	assert.InDelta(t, 2.0, m.Trend(), 1e-9)

	out, err := m.Forecast(5)
	require.NoError(t, err)
	for h, f := range out {
		assert.InDelta(t, values[19]+2*float64(h+1), f, 1e-9, "horizon %d", h+1)
	}
}

func TestHoltForecastLinearInHorizon(t *testing.T) {
	series := timeseries.Synthetic(&timeseries.SyntheticOptions{
		N: 60, Level: 50, Slope: 0.8, Noise: 1, Seed: 5,
	})

	m := NewHolt(0.8, 0.2)
	require.NoError(t, m.Fit(series))

	out, err := m.Forecast(10)
	require.NoError(t, err)

	step := out[1] - out[0]
	for h := 2; h < len(out); h++ {
		assert.InDelta(t, step, out[h]-out[h-1], 1e-9, "increment at horizon %d", h)
	}
	assert.InDelta(t, m.Trend(), step, 1e-9)
}

func TestHoltFittedValues(t *testing.T) {
	m := NewHolt(0.5, 0.5)
	require.NoError(t, m.Fit(timeseries.New([]float64{10, 14, 20})))

	// l_0 = 10, b_0 = 4; fitted_1 = 14;
	// l_1 = 0.5*14 + 0.5*14 = 14, b_1 = 0.5*4 + 0.5*4 = 4; fitted_2 = 18
	fitted := m.Fitted()
	require.Len(t, fitted, 3)
	assert.InDelta(t, 10, fitted[0], 1e-10)
	assert.InDelta(t, 14, fitted[1], 1e-10)
	assert.InDelta(t, 18, fitted[2], 1e-10)
}

func TestHoltTooShort(t *testing.T) {
	m := NewHolt(0.5, 0.5)
	assert.Error(t, m.Fit(timeseries.New([]float64{1})))
}

func TestHoltInvalidParameters(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})
	assert.Error(t, NewHolt(0, 0.5).Fit(series))
	assert.Error(t, NewHolt(0.5, 1.2).Fit(series))
}
