// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading, transformation, and synthetic data
// generation. Missing observations are carried as explicit NaN values.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Or generate a reproducible synthetic weekly series:
//
//	opts := timeseries.DefaultSyntheticOptions()
//	series := timeseries.Synthetic(opts)
//
// # Basic Statistics
//
// Calculate summary statistics (all NaN-aware):
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//
// # Transformations
//
// Smooth and split the series:
//
//	ma := series.MovingAverage(7)            // Trailing moving average
//	trend := series.CenteredMovingAverage(52) // Centered, NaN at the edges
//	train, test, err := series.TrainTestSplit(12)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "ds",
//	    ValueColumn: "bookings",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
