// Package ets implements ETS (Error, Trend, Seasonal) state-space
// exponential smoothing models.
package ets

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gosmooth/timeseries"
)

// ErrorType selects the error component of an ETS model.
type ErrorType int

const (
	ErrorAdditive ErrorType = iota
	ErrorMultiplicative
)

// TrendType selects the trend component of an ETS model.
type TrendType int

const (
	TrendNone TrendType = iota
	TrendAdditive
	TrendDamped
)

// SeasonalType selects the seasonal component of an ETS model.
type SeasonalType int

const (
	SeasonalNone SeasonalType = iota
	SeasonalAdditive
	SeasonalMultiplicative
)

// Spec identifies an ETS model class by its three components.
type Spec struct {
	Error    ErrorType
	Trend    TrendType
	Seasonal SeasonalType
}

// String renders the spec in the conventional ETS(E,T,S) notation,
// e.g. "ETS(A,Ad,M)".
func (s Spec) String() string {
	e := "A"
	if s.Error == ErrorMultiplicative {
		e = "M"
	}
	t := "N"
	switch s.Trend {
	case TrendAdditive:
		t = "A"
	case TrendDamped:
		t = "Ad"
	}
	se := "N"
	switch s.Seasonal {
	case SeasonalAdditive:
		se = "A"
	case SeasonalMultiplicative:
		se = "M"
	}
	return fmt.Sprintf("ETS(%s,%s,%s)", e, t, se)
}

// Params holds the smoothing parameters of an ETS model. Beta and Gamma
// follow the state-space convention: 0 < Beta < Alpha and
// 0 < Gamma < 1-Alpha.
type Params struct {
	Alpha float64 // level smoothing
	Beta  float64 // trend smoothing (trend models only)
	Gamma float64 // seasonal smoothing (seasonal models only)
	Phi   float64 // damping (damped trend only)
}

// Model represents an ETS state-space model.
type Model struct {
	Spec   Spec
	Period int // seasonal period; ignored for non-seasonal specs
	Params Params

	// FixedParams skips parameter estimation and uses Params as given.
	FixedParams bool

	// Fitted quantities
	Variance float64
	AIC      float64
	AICc     float64
	BIC      float64
	LogLik   float64

	level      float64
	trend      float64
	seasonal   []float64
	fittedVals []float64
	residuals  []float64
	data       *timeseries.Series
	isFit      bool
}

// New creates an ETS model of the given class. Period is the seasonal cycle
// length and is only consulted for seasonal specs.
func New(spec Spec, period int) *Model {
	return &Model{Spec: spec, Period: period}
}

// state holds the filter state during a recursion pass.
type state struct {
	level    float64
	trend    float64
	seasonal []float64
}

func (st *state) clone() *state {
	seasonal := make([]float64, len(st.seasonal))
	copy(seasonal, st.seasonal)
	return &state{level: st.level, trend: st.trend, seasonal: seasonal}
}

// Fit estimates the smoothing parameters (unless FixedParams is set) and
// runs the innovations filter over the series.
func (m *Model) Fit(series *timeseries.Series) error {
	n := series.Len()
	if n < 4 {
		return errors.New("series must contain at least four observations")
	}
	if m.Spec.Seasonal != SeasonalNone {
		if m.Period < 2 {
			return errors.New("seasonal models require a period of at least 2")
		}
		if n < 2*m.Period {
			return errors.New("seasonal models require at least two full cycles")
		}
	}
	if m.Spec.Error == ErrorMultiplicative || m.Spec.Seasonal == SeasonalMultiplicative {
		for _, v := range series.Values {
			if v <= 0 {
				return errors.New("multiplicative components require strictly positive data")
			}
		}
	}

	init, err := m.initialState(series)
	if err != nil {
		return err
	}

	if m.FixedParams {
		if err := m.validateParams(); err != nil {
			return err
		}
	} else {
		params, err := m.estimate(series, init)
		if err != nil {
			return err
		}
		m.Params = params
	}

	st := init.clone()
	fitted, resid, objective, ok := m.filter(series.Values, m.Params, st)
	if !ok {
		return errors.New("filter diverged for the fitted parameters")
	}

	m.level = st.level
	m.trend = st.trend
	m.seasonal = st.seasonal
	m.fittedVals = fitted
	m.residuals = resid
	m.data = series
	m.calculateIC(objective, n)
	m.isFit = true
	return nil
}

func (m *Model) validateParams() error {
	p := m.Params
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return errors.New("alpha must be in (0, 1)")
	}
	if m.Spec.Trend != TrendNone && (p.Beta <= 0 || p.Beta >= p.Alpha) {
		return errors.New("beta must be in (0, alpha)")
	}
	if m.Spec.Seasonal != SeasonalNone && (p.Gamma <= 0 || p.Gamma >= 1-p.Alpha) {
		return errors.New("gamma must be in (0, 1-alpha)")
	}
	if m.Spec.Trend == TrendDamped && (p.Phi <= 0 || p.Phi > 1) {
		return errors.New("phi must be in (0, 1]")
	}
	return nil
}

// filter runs the innovations recursion over y, mutating st. It returns the
// one-step fitted values, the forecast errors on the original scale, and the
// estimation objective (-2 log-likelihood up to a constant). ok is false if
// the recursion produced non-finite or invalid states.
func (m *Model) filter(y []float64, p Params, st *state) (fitted, resid []float64, objective float64, ok bool) {
	n := len(y)
	fitted = make([]float64, n)
	resid = make([]float64, n)

	sse := 0.0
	logMu := 0.0
	multErr := m.Spec.Error == ErrorMultiplicative

	for t := 0; t < n; t++ {
		// Trend term carried into this step
		q := st.level
		phi := 1.0
		switch m.Spec.Trend {
		case TrendAdditive:
			q += st.trend
		case TrendDamped:
			phi = p.Phi
			q += phi * st.trend
		}

		// One-step forecast
		var s, mu float64
		switch m.Spec.Seasonal {
		case SeasonalAdditive:
			s = st.seasonal[0]
			mu = q + s
		case SeasonalMultiplicative:
			s = st.seasonal[0]
			mu = q * s
		default:
			mu = q
		}
		if math.IsNaN(mu) || math.IsInf(mu, 0) {
			return nil, nil, 0, false
		}
		if multErr && mu <= 0 {
			return nil, nil, 0, false
		}

		fitted[t] = mu
		resid[t] = y[t] - mu

		// Innovation
		var eps float64
		if multErr {
			eps = (y[t] - mu) / mu
			logMu += math.Log(math.Abs(mu))
		} else {
			eps = y[t] - mu
		}
		sse += eps * eps

		// State updates
		damped := phi * st.trend
		prevSeason := s
		switch {
		case !multErr && m.Spec.Seasonal == SeasonalMultiplicative:
			st.level = q + p.Alpha*eps/prevSeason
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*eps/prevSeason
			}
			m.rotateSeasonal(st, prevSeason+p.Gamma*eps/q)
		case !multErr && m.Spec.Seasonal == SeasonalAdditive:
			st.level = q + p.Alpha*eps
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*eps
			}
			m.rotateSeasonal(st, prevSeason+p.Gamma*eps)
		case !multErr:
			st.level = q + p.Alpha*eps
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*eps
			}
		case m.Spec.Seasonal == SeasonalMultiplicative:
			st.level = q * (1 + p.Alpha*eps)
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*q*eps
			}
			m.rotateSeasonal(st, prevSeason*(1+p.Gamma*eps))
		case m.Spec.Seasonal == SeasonalAdditive:
			st.level = q + p.Alpha*mu*eps
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*mu*eps
			}
			m.rotateSeasonal(st, prevSeason+p.Gamma*mu*eps)
		default:
			st.level = q * (1 + p.Alpha*eps)
			if m.Spec.Trend != TrendNone {
				st.trend = damped + p.Beta*q*eps
			}
		}

		if math.IsNaN(st.level) || math.IsInf(st.level, 0) {
			return nil, nil, 0, false
		}
	}

	if sse <= 0 {
		sse = math.SmallestNonzeroFloat64
	}

	// -2 log-likelihood up to an additive constant; multiplicative errors
	// carry the Jacobian term.
	objective = float64(n) * math.Log(sse/float64(n))
	if multErr {
		objective += 2 * logMu
	}
	return fitted, resid, objective, true
}

func (m *Model) rotateSeasonal(st *state, updated float64) {
	copy(st.seasonal, st.seasonal[1:])
	st.seasonal[len(st.seasonal)-1] = updated
}

// calculateIC calculates the log-likelihood and information criteria.
func (m *Model) calculateIC(objective float64, n int) {
	k := float64(m.nparams())
	nf := float64(n)

	m.LogLik = -0.5 * (objective + nf*math.Log(2*math.Pi) + nf)
	m.AIC = -2*m.LogLik + 2*k
	if nf-k-1 > 0 {
		m.AICc = m.AIC + 2*k*(k+1)/(nf-k-1)
	} else {
		m.AICc = math.Inf(1)
	}
	m.BIC = -2*m.LogLik + k*math.Log(nf)

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}
	dof := n - int(k)
	if dof < 1 {
		dof = n
	}
	m.Variance = sse / float64(dof)
}

// nparams counts smoothing parameters, initial states, and the residual
// variance, the convention used when comparing models by criterion.
func (m *Model) nparams() int {
	k := 2 // alpha + variance
	k++    // initial level
	if m.Spec.Trend != TrendNone {
		k += 2 // beta + initial trend
	}
	if m.Spec.Trend == TrendDamped {
		k++ // phi
	}
	if m.Spec.Seasonal != SeasonalNone {
		k += m.Period // gamma + period-1 free initial seasonal states
	}
	return k
}

// Forecast generates point forecasts h steps ahead from the final state.
func (m *Model) Forecast(h int) ([]float64, error) {
	if !m.isFit {
		return nil, errors.New("model must be fitted before forecasting")
	}
	if h < 1 {
		return nil, errors.New("forecast horizon must be at least 1")
	}

	out := make([]float64, h)
	phiSum := 0.0
	for i := 1; i <= h; i++ {
		q := m.level
		switch m.Spec.Trend {
		case TrendAdditive:
			q += float64(i) * m.trend
		case TrendDamped:
			phiSum += math.Pow(m.Params.Phi, float64(i))
			q += phiSum * m.trend
		}

		switch m.Spec.Seasonal {
		case SeasonalAdditive:
			out[i-1] = q + m.seasonal[(i-1)%m.Period]
		case SeasonalMultiplicative:
			out[i-1] = q * m.seasonal[(i-1)%m.Period]
		default:
			out[i-1] = q
		}
	}
	return out, nil
}

// Fitted returns the one-step-ahead fitted values, one per observation.
func (m *Model) Fitted() []float64 {
	return m.fittedVals
}

// Residuals returns the one-step forecast errors on the original scale.
func (m *Model) Residuals() *timeseries.Series {
	if !m.isFit {
		return nil
	}
	values := make([]float64, len(m.residuals))
	copy(values, m.residuals)
	return &timeseries.Series{
		Timestamps: m.data.Timestamps,
		Values:     values,
		Name:       "residuals",
	}
}

// States returns the final level, trend, and seasonal states.
func (m *Model) States() (level, trend float64, seasonal []float64) {
	out := make([]float64, len(m.seasonal))
	copy(out, m.seasonal)
	return m.level, m.trend, out
}
