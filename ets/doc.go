// Package ets implements ETS (Error, Trend, Seasonal) state-space
// exponential smoothing models.
//
// An ETS model class is identified by three components: the error form
// (additive or multiplicative), the trend form (none, additive, or damped
// additive), and the seasonal form (none, additive, or multiplicative).
// Simple exponential smoothing is ETS(A,N,N); Holt's linear method is
// ETS(A,A,N); the Holt-Winters additive method is ETS(A,A,A).
//
// # Fitting a Model
//
// Smoothing parameters are estimated by minimizing the one-step innovation
// objective with Nelder-Mead; initial states come from a regression start
// and a classical decomposition of the training data:
//
//	model := ets.New(ets.Spec{
//	    Error:    ets.ErrorAdditive,
//	    Trend:    ets.TrendAdditive,
//	    Seasonal: ets.SeasonalAdditive,
//	}, 52)
//	if err := model.Fit(series); err != nil {
//	    return err
//	}
//	forecasts, _ := model.Forecast(12)
//
// Set FixedParams to use the supplied Params without estimation:
//
//	model.Params = ets.Params{Alpha: 0.5}
//	model.FixedParams = true
//
// # Model Comparison
//
// After fitting, AIC, AICc, and BIC are available for comparing classes on
// the same data; the autoets package automates that search.
//
// Multiplicative error or seasonal components require strictly positive
// data, and seasonal models need at least two full cycles of history.
package ets
