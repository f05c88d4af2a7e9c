package stats

import (
	"errors"
	"math"
)

// Accuracy holds forecast accuracy metrics on a held-out set.
type Accuracy struct {
	MAE  float64
	MSE  float64
	RMSE float64
	MAPE float64 // percentage, NaN if any actual value is zero
	MASE float64 // NaN unless computed via AccuracyScaled
}

// Measure calculates accuracy metrics for forecasts against actual values.
func Measure(actual, forecast []float64) (*Accuracy, error) {
	if len(actual) == 0 || len(actual) != len(forecast) {
		return nil, errors.New("actual and forecast must be non-empty and of equal length")
	}

	sumAbs, sumSq, sumPct := 0.0, 0.0, 0.0
	pctOK := true
	for i := range actual {
		e := actual[i] - forecast[i]
		sumAbs += math.Abs(e)
		sumSq += e * e
		if actual[i] == 0 {
			pctOK = false
		} else {
			sumPct += math.Abs(e / actual[i])
		}
	}

	n := float64(len(actual))
	acc := &Accuracy{
		MAE:  sumAbs / n,
		MSE:  sumSq / n,
		MAPE: math.NaN(),
		MASE: math.NaN(),
	}
	acc.RMSE = math.Sqrt(acc.MSE)
	if pctOK {
		acc.MAPE = 100 * sumPct / n
	}
	return acc, nil
}

// MeasureScaled calculates accuracy metrics including MASE, scaling the mean
// absolute error by the in-sample one-step naive error of the training data.
func MeasureScaled(actual, forecast, train []float64) (*Accuracy, error) {
	acc, err := Measure(actual, forecast)
	if err != nil {
		return nil, err
	}
	if len(train) < 2 {
		return nil, errors.New("training data must contain at least two observations")
	}

	naiveAbs := 0.0
	for i := 1; i < len(train); i++ {
		naiveAbs += math.Abs(train[i] - train[i-1])
	}
	scale := naiveAbs / float64(len(train)-1)
	if scale > 0 {
		acc.MASE = acc.MAE / scale
	}
	return acc, nil
}
