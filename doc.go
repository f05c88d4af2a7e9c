// Package gosmooth provides tabular data cleaning and exponential smoothing
// forecasting for time series.
//
// GoSmooth is a Go package for preparing messy wide-format business data and
// forecasting the resulting series with exponential smoothing methods, from
// naive benchmarks up to automatically selected ETS state-space models. It
// follows the methodology from "Forecasting: Principles and Practice".
//
// # Features
//
//   - Field extraction and wide-to-long reshaping of tabular data (CSV, XLSX)
//   - Classical additive and multiplicative seasonal decomposition
//   - Benchmark forecasts (naive, seasonal naive, drift, mean)
//   - Simple exponential smoothing and Holt's linear trend method
//   - ETS (Error, Trend, Seasonal) state-space models
//   - Automatic ETS model selection using information criteria
//   - Residual diagnostics (ACF, Ljung-Box) and accuracy metrics
//
// # Quick Start
//
// Decompose a weekly series and forecast it:
//
//	series := timeseries.New(values)
//	decomp := stats.Decompose(series, 52, "additive")
//
//	ses := forecast.NewSES(0.3)
//	ses.Fit(series)
//	forecasts, _ := ses.Forecast(12)
//
// Let the library pick an ETS model:
//
//	result, _ := autoets.Search(series, 52, autoets.DefaultConfig())
//	forecasts, _ := result.Forecast(12)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: tabular cleaning, reshaping, and date parsing
//   - timeseries: time series data structures and utilities
//   - stats: decomposition, diagnostics, and accuracy metrics
//   - forecast: benchmark and smoothing forecast methods
//   - ets: ETS state-space exponential smoothing models
//   - autoets: automatic ETS model selection
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Hyndman, R.J., Koehler, A.B., Ord, J.K., & Snyder, R.D. (2008).
//     Forecasting with Exponential Smoothing: The State Space Approach
package gosmooth
