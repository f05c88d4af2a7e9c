package ets

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gosmooth/stats"
	"github.com/sartorproj/gosmooth/timeseries"
)

const penalty = 1e12

// initialState derives heuristic starting states: seasonal indices from a
// classical decomposition, level and trend from a linear regression over the
// start of the (seasonally adjusted) series.
func (m *Model) initialState(series *timeseries.Series) (*state, error) {
	adjusted := series
	var seasonal []float64

	if m.Spec.Seasonal != SeasonalNone {
		decompType := "additive"
		if m.Spec.Seasonal == SeasonalMultiplicative {
			decompType = "multiplicative"
		}
		decomp, err := stats.Decompose(series, m.Period, decompType)
		if err != nil {
			return nil, err
		}
		seasonal = make([]float64, m.Period)
		copy(seasonal, decomp.Indices)
		adjusted = decomp.SeasonallyAdjusted()
	}

	// Regression over the first stretch of the adjusted series
	window := 10
	if m.Spec.Seasonal != SeasonalNone && 2*m.Period > window {
		window = 2 * m.Period
	}
	if window > adjusted.Len() {
		window = adjusted.Len()
	}
	xs := make([]float64, window)
	ys := make([]float64, window)
	for i := 0; i < window; i++ {
		xs[i] = float64(i)
		ys[i] = adjusted.Values[i]
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(intercept) || math.IsNaN(slope) {
		return nil, errors.New("could not derive initial states")
	}

	st := &state{seasonal: seasonal}
	if m.Spec.Trend != TrendNone {
		// Pre-sample state: the first one-step forecast l+b must target
		// the first observation.
		st.level = intercept - slope
		st.trend = slope
	} else {
		st.level = intercept
	}
	if m.Spec.Error == ErrorMultiplicative && st.level <= 0 {
		st.level = series.Values[0]
	}
	return st, nil
}

// pack lays out the free parameters for the spec as an optimization vector.
func (m *Model) pack(p Params) []float64 {
	x := []float64{p.Alpha}
	if m.Spec.Trend != TrendNone {
		x = append(x, p.Beta)
	}
	if m.Spec.Seasonal != SeasonalNone {
		x = append(x, p.Gamma)
	}
	if m.Spec.Trend == TrendDamped {
		x = append(x, p.Phi)
	}
	return x
}

func (m *Model) unpack(x []float64) Params {
	p := Params{Alpha: x[0]}
	i := 1
	if m.Spec.Trend != TrendNone {
		p.Beta = x[i]
		i++
	}
	if m.Spec.Seasonal != SeasonalNone {
		p.Gamma = x[i]
		i++
	}
	if m.Spec.Trend == TrendDamped {
		p.Phi = x[i]
	}
	return p
}

// admissible reports how far the parameters are outside their constraints.
// Zero means admissible.
func (m *Model) admissible(p Params) float64 {
	v := 0.0
	v += bound(p.Alpha, 1e-4, 0.9999)
	if m.Spec.Trend != TrendNone {
		v += bound(p.Beta, 1e-4, p.Alpha)
	}
	if m.Spec.Seasonal != SeasonalNone {
		v += bound(p.Gamma, 1e-4, 1-p.Alpha)
	}
	if m.Spec.Trend == TrendDamped {
		v += bound(p.Phi, 0.8, 0.98)
	}
	return v
}

func bound(v, lo, hi float64) float64 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}

// estimate minimizes the filter objective over the free smoothing parameters
// with Nelder-Mead, starting from conventional values.
func (m *Model) estimate(series *timeseries.Series, init *state) (Params, error) {
	start := Params{Alpha: 0.3, Beta: 0.1, Gamma: 0.1, Phi: 0.9}
	if m.Spec.Seasonal != SeasonalNone {
		// Gamma must start inside (0, 1-alpha)
		start.Gamma = math.Min(0.1, (1-start.Alpha)/2)
	}

	objective := func(x []float64) float64 {
		p := m.unpack(x)
		if v := m.admissible(p); v > 0 {
			return penalty * (1 + v)
		}
		st := init.clone()
		_, _, obj, ok := m.filter(series.Values, p, st)
		if !ok {
			return penalty
		}
		return obj
	}

	problem := optimize.Problem{Func: objective}
	x0 := m.pack(start)

	result, err := optimize.Minimize(problem, x0, &optimize.Settings{
		MajorIterations: 500,
	}, &optimize.NelderMead{})
	if err != nil {
		// Fall back to the starting point when the optimizer stalls; the
		// starting values are always admissible.
		if objective(x0) < penalty {
			return start, nil
		}
		return Params{}, err
	}

	best := m.unpack(result.X)
	if m.admissible(best) > 0 || objective(result.X) >= penalty {
		return start, nil
	}
	return best, nil
}
