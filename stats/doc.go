// Package stats provides decomposition, diagnostics, and accuracy metrics
// for time series.
//
// # Decomposition
//
// Decompose a series into trend, seasonal, and residual components:
//
//	decomp, err := stats.Decompose(series, 52, "additive")
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
//	// decomp.Indices holds the per-phase seasonal estimates
//
// The trend is a centered moving average, so the first and last period/2
// positions of the trend and residual are NaN. For additive decomposition
// the seasonal indices sum to zero over one cycle; for multiplicative they
// average to one. At every index where the trend is defined,
// trend + seasonal + residual reconstructs the original observation exactly.
//
// # Residual Diagnostics
//
// Check fitted-model residuals for leftover autocorrelation:
//
//	acf := stats.ACFWithConfidence(residuals, 20)
//
//	lb := stats.LjungBox(residuals, 10, fitdf)
//	if lb.PValue > 0.05 {
//	    // Residuals look like white noise
//	}
//
// # Forecast Accuracy
//
// Compare forecasts against a held-out test window:
//
//	acc, err := stats.MeasureScaled(test.Values, forecasts, train.Values)
//	// acc.MAE, acc.RMSE, acc.MAPE, acc.MASE
package stats
