// Package forecast provides benchmark and exponential smoothing forecast
// methods.
//
// Every method implements the Forecaster interface: fit to a history, then
// forecast h steps ahead. Methods are pure functions of (history,
// parameters); fitting one never mutates the input series.
//
// # Benchmark Methods
//
// The four standard benchmarks:
//
//	naive := &forecast.Naive{}              // last observation
//	snaive := &forecast.SeasonalNaive{Period: 52} // same week last cycle
//	drift := &forecast.Drift{}              // line through first and last
//	mean := &forecast.Mean{}                // historical mean
//
// # Simple Exponential Smoothing
//
// SES discounts older observations geometrically:
//
//	ses := forecast.NewSES(0.3)
//	ses.Fit(series)
//	forecasts, _ := ses.Forecast(12)
//
// The seed for the first smoothed estimate is a policy, not a constant:
// InitialFirst (default), InitialMean, or an explicit InitialValue seed.
// SES.Weights exposes the implied geometric weights for inspection.
//
// # Holt's Linear Trend Method
//
// Holt extends SES with a smoothed trend slope, giving forecasts that are
// linear in the horizon:
//
//	holt := forecast.NewHolt(0.8, 0.2)
//	holt.Fit(series)
//	forecasts, _ := holt.Forecast(12)
package forecast
