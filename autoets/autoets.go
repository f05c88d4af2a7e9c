// Package autoets implements automatic ETS model selection.
package autoets

import (
	"errors"
	"math"

	"github.com/sartorproj/gosmooth/ets"
	"github.com/sartorproj/gosmooth/timeseries"
)

// Config holds configuration for the ETS model search.
type Config struct {
	Criterion           string // Information criterion: "aic", "aicc", or "bic" (default: "aicc")
	AllowMultiplicative bool   // Consider multiplicative error/seasonal candidates
	AllowDamped         bool   // Consider damped trend candidates
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() *Config {
	return &Config{
		Criterion:           "aicc",
		AllowMultiplicative: true,
		AllowDamped:         true,
	}
}

// Result represents the outcome of an ETS model search.
type Result struct {
	Model *ets.Model
	Spec  ets.Spec

	AIC       float64
	AICc      float64
	BIC       float64
	Criterion float64

	ModelsEvaluated int
}

// Search fits every candidate ETS class to the series and returns the one
// with the lowest information criterion. Period is the seasonal cycle
// length; pass 0 or 1 to search non-seasonal classes only.
//
// Candidates that cannot apply are skipped rather than failing the search:
// multiplicative components on non-positive data, and seasonal components
// when the series is shorter than two full cycles. On equal criterion
// values the first candidate encountered wins.
func Search(series *timeseries.Series, period int, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Criterion {
	case "aic", "aicc", "bic":
	default:
		return nil, errors.New(`criterion must be "aic", "aicc", or "bic"`)
	}

	positive := true
	for _, v := range series.Values {
		if v <= 0 {
			positive = false
			break
		}
	}

	errorTypes := []ets.ErrorType{ets.ErrorAdditive}
	if config.AllowMultiplicative && positive {
		errorTypes = append(errorTypes, ets.ErrorMultiplicative)
	}

	trendTypes := []ets.TrendType{ets.TrendNone, ets.TrendAdditive}
	if config.AllowDamped {
		trendTypes = append(trendTypes, ets.TrendDamped)
	}

	seasonalTypes := []ets.SeasonalType{ets.SeasonalNone}
	if period >= 2 && series.Len() >= 2*period {
		seasonalTypes = append(seasonalTypes, ets.SeasonalAdditive)
		if config.AllowMultiplicative && positive {
			seasonalTypes = append(seasonalTypes, ets.SeasonalMultiplicative)
		}
	}

	best := &Result{Criterion: math.Inf(1)}
	evaluated := 0

	for _, e := range errorTypes {
		for _, tr := range trendTypes {
			for _, se := range seasonalTypes {
				spec := ets.Spec{Error: e, Trend: tr, Seasonal: se}
				if forbidden(spec) {
					continue
				}

				model := ets.New(spec, period)
				if err := model.Fit(series); err != nil {
					continue
				}
				evaluated++

				criterion := model.AICc
				switch config.Criterion {
				case "aic":
					criterion = model.AIC
				case "bic":
					criterion = model.BIC
				}
				if math.IsNaN(criterion) {
					continue
				}

				if criterion < best.Criterion {
					best = &Result{
						Model:     model,
						Spec:      spec,
						AIC:       model.AIC,
						AICc:      model.AICc,
						BIC:       model.BIC,
						Criterion: criterion,
					}
				}
			}
		}
	}

	if best.Model == nil {
		return nil, errors.New("no ETS candidate could be fitted to the series")
	}
	best.ModelsEvaluated = evaluated
	return best, nil
}

// forbidden excludes the classically unstable class: additive errors with
// multiplicative seasonality.
func forbidden(spec ets.Spec) bool {
	return spec.Error == ets.ErrorAdditive && spec.Seasonal == ets.SeasonalMultiplicative
}

// Forecast generates forecasts using the selected model.
func (r *Result) Forecast(h int) ([]float64, error) {
	if r.Model == nil {
		return nil, errors.New("no model selected")
	}
	return r.Model.Forecast(h)
}

// Residuals returns the selected model's one-step forecast errors.
func (r *Result) Residuals() *timeseries.Series {
	if r.Model == nil {
		return nil
	}
	return r.Model.Residuals()
}
