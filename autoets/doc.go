// Package autoets implements automatic ETS model selection.
//
// Search fits every feasible combination of error (additive,
// multiplicative), trend (none, additive, damped), and seasonal (none,
// additive, multiplicative) components and selects the class with the
// lowest information criterion, AICc by default:
//
//	result, err := autoets.Search(series, 52, autoets.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Spec)             // e.g. ETS(A,A,A)
//	forecasts, _ := result.Forecast(12)
//
// Candidates that cannot apply to the data — multiplicative components on
// non-positive series, seasonal components without two full cycles of
// history — are skipped, not treated as errors. Ties on the criterion go to
// the first candidate encountered, so the search is deterministic.
package autoets
