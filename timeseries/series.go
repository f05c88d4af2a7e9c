// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"sort"
	"time"
)

// Series represents a time series with timestamps and values.
// Missing or undefined observations are represented explicitly as NaN,
// never as zero.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// WeeklyRange generates n weekly timestamps starting at start.
func WeeklyRange(start time.Time, n int) []time.Time {
	timestamps := make([]time.Time, n)
	for i := range timestamps {
		timestamps[i] = start.AddDate(0, 0, 7*i)
	}
	return timestamps
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series, ignoring NaN values.
func (s *Series) Mean() float64 {
	sum := 0.0
	count := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// Variance calculates the sample variance of the series, ignoring NaN values.
func (s *Series) Variance() float64 {
	mean := s.Mean()
	if math.IsNaN(mean) {
		return math.NaN()
	}
	sumSq := 0.0
	count := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			diff := v - mean
			sumSq += diff * diff
			count++
		}
	}
	if count < 2 {
		return 0
	}
	return sumSq / float64(count-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series, ignoring NaN values.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series, ignoring NaN values.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series, ignoring NaN values.
func (s *Series) Median() float64 {
	sorted := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// TrainTestSplit splits the series into a training set of the first n-h
// observations and a test set of the final h observations.
func (s *Series) TrainTestSplit(h int) (*Series, *Series, error) {
	if h < 1 || h >= s.Len() {
		return nil, nil, errors.New("holdout length must be in [1, len-1]")
	}
	return s.Slice(0, s.Len()-h), s.Slice(s.Len()-h, s.Len()), nil
}

// MovingAverage calculates a trailing simple moving average with window size.
// The result has len(s)-window+1 values, aligned to the window's last element.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-window+1)
	sum := 0.0

	for i := 0; i < window; i++ {
		sum += s.Values[i]
	}
	result[0] = sum / float64(window)

	for i := window; i < len(s.Values); i++ {
		sum = sum - s.Values[i-window] + s.Values[i]
		result[i-window+1] = sum / float64(window)
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) >= window {
		copy(timestamps, s.Timestamps[window-1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_ma",
	}
}

// CenteredMovingAverage calculates a centered moving average of the given
// window. For even windows a 2xwindow MA is used, giving the first and last
// observation of each window half weight. The result has the same length as
// the series; the first and last window/2 positions are NaN.
func (s *Series) CenteredMovingAverage(window int) *Series {
	n := len(s.Values)
	result := make([]float64, n)
	for i := range result {
		result[i] = math.NaN()
	}

	if window > 0 && window <= n {
		half := window / 2
		if window%2 == 0 {
			for i := half; i < n-half; i++ {
				sum := s.Values[i-half]*0.5 + s.Values[i+half]*0.5
				for j := i - half + 1; j < i+half; j++ {
					sum += s.Values[j]
				}
				result[i] = sum / float64(window)
			}
		} else {
			for i := half; i < n-half; i++ {
				sum := 0.0
				for j := i - half; j <= i+half; j++ {
					sum += s.Values[j]
				}
				result[i] = sum / float64(window)
			}
		}
	}

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_trend",
	}
}
