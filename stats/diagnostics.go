package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosmooth/timeseries"
)

// ACF calculates the autocorrelation function up to maxLag.
// The result has maxLag+1 values; index 0 is always 1.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if n < 2 || maxLag < 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := series.Mean()
	c0 := 0.0
	for _, v := range series.Values {
		diff := v - mean
		c0 += diff * diff
	}
	if c0 == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	for k := 1; k <= maxLag; k++ {
		ck := 0.0
		for t := k; t < n; t++ {
			ck += (series.Values[t] - mean) * (series.Values[t-k] - mean)
		}
		acf[k] = ck / c0
	}
	return acf
}

// ACFResult holds autocorrelations with a white-noise confidence bound.
type ACFResult struct {
	Values     []float64
	ConfBounds float64 // +/- bound, approximately 1.96/sqrt(n)
}

// ACFWithConfidence calculates the ACF along with 95% confidence bounds
// under the white-noise null.
func ACFWithConfidence(series *timeseries.Series, maxLag int) *ACFResult {
	values := ACF(series, maxLag)
	if values == nil {
		return nil
	}
	return &ACFResult{
		Values:     values,
		ConfBounds: 1.96 / math.Sqrt(float64(series.Len())),
	}
}

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox performs the Ljung-Box test for autocorrelation in residuals.
// The null hypothesis is that there is no autocorrelation up to lag h.
// fitdf is the number of parameters estimated by the fitted model.
func LjungBox(series *timeseries.Series, lags, fitdf int) *LjungBoxResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi := distuv.ChiSquared{K: float64(dof)}
	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}
}
