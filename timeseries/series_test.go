package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanIgnoresNaN(t *testing.T) {
	s := New([]float64{1, math.NaN(), 3, math.NaN(), 5})
	assert.InDelta(t, 3.0, s.Mean(), 1e-10)
}

func TestMeanAllNaN(t *testing.T) {
	s := New([]float64{math.NaN(), math.NaN()})
	assert.True(t, math.IsNaN(s.Mean()))
}

func TestVarianceAndStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 32.0/7.0, s.Variance(), 1e-10)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.Std(), 1e-10)
}

func TestMinMaxMedian(t *testing.T) {
	s := New([]float64{3, math.NaN(), 1, 4, 1, 5})
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 5.0, s.Max())
	assert.Equal(t, 3.0, s.Median())
}

func TestSlice(t *testing.T) {
	s := New([]float64{0, 1, 2, 3, 4, 5})
	sub := s.Slice(2, 5)
	assert.Equal(t, []float64{2, 3, 4}, sub.Values)

	// Out-of-range bounds are clamped
	assert.Equal(t, 6, s.Slice(-3, 100).Len())
	assert.Equal(t, 0, s.Slice(4, 2).Len())
}

func TestTrainTestSplit(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	train, test, err := s.TrainTestSplit(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, train.Values)
	assert.Equal(t, []float64{6, 7, 8}, test.Values)

	_, _, err = s.TrainTestSplit(8)
	assert.Error(t, err)
	_, _, err = s.TrainTestSplit(0)
	assert.Error(t, err)
}

func TestMovingAverage(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	ma := s.MovingAverage(3)
	assert.Equal(t, []float64{2, 3, 4}, ma.Values)
}

func TestCenteredMovingAverageOdd(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	trend := s.CenteredMovingAverage(3)
	require.Equal(t, 5, trend.Len())

	assert.True(t, math.IsNaN(trend.Values[0]))
	assert.True(t, math.IsNaN(trend.Values[4]))
	assert.InDelta(t, 2.0, trend.Values[1], 1e-10)
	assert.InDelta(t, 3.0, trend.Values[2], 1e-10)
	assert.InDelta(t, 4.0, trend.Values[3], 1e-10)
}

func TestCenteredMovingAverageEven(t *testing.T) {
	// 2x4 MA: half weight on the first and last of the 5-point window
	s := New([]float64{1, 2, 3, 4, 5, 6})
	trend := s.CenteredMovingAverage(4)
	require.Equal(t, 6, trend.Len())

	for _, i := range []int{0, 1, 4, 5} {
		assert.True(t, math.IsNaN(trend.Values[i]), "edge index %d should be NaN", i)
	}
	// (0.5*1 + 2 + 3 + 4 + 0.5*5) / 4 = 3
	assert.InDelta(t, 3.0, trend.Values[2], 1e-10)
	assert.InDelta(t, 4.0, trend.Values[3], 1e-10)
}

func TestWeeklyRange(t *testing.T) {
	start := time.Date(2010, time.January, 3, 0, 0, 0, 0, time.UTC)
	ts := WeeklyRange(start, 3)
	require.Len(t, ts, 3)
	assert.Equal(t, start, ts[0])
	assert.Equal(t, start.AddDate(0, 0, 7), ts[1])
	assert.Equal(t, start.AddDate(0, 0, 14), ts[2])
}

func TestNewWithTimestampsLengthMismatch(t *testing.T) {
	_, err := NewWithTimestamps(make([]time.Time, 2), []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestSyntheticReproducible(t *testing.T) {
	opts := DefaultSyntheticOptions()
	a := Synthetic(opts)
	b := Synthetic(opts)

	require.Equal(t, opts.N, a.Len())
	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Timestamps[0], opts.Start)
}

func TestSyntheticSeedChangesSeries(t *testing.T) {
	opts := DefaultSyntheticOptions()
	a := Synthetic(opts)

	opts2 := *opts
	opts2.Seed = 7
	b := Synthetic(&opts2)

	assert.NotEqual(t, a.Values, b.Values)
}
