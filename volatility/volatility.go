// Package volatility estimates historical volatility from daily closing prices.
package volatility

import (
	"errors"
	"fmt"
	"math"

	"github.com/tantralabs/bspx/models"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultWindow         = 20
	DefaultSpan           = 20.0
	DefaultRealizedPeriod = 30
)

// ErrEmptySeries is returned when there are no bars to compute volatility from.
var ErrEmptySeries = errors.New("input data cannot be empty")

var annualization = math.Sqrt(models.TradingDaysPerYear)

func annualize(vol []float64) {
	for i := range vol {
		vol[i] *= annualization
	}
}

// LogReturns returns ln(p[i]/p[i-1]). The first element is NaN.
func LogReturns(prices []float64) []float64 {
	out := make([]float64, len(prices))
	if len(prices) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(prices); i++ {
		out[i] = math.Log(prices[i] / prices[i-1])
	}
	return out
}

// RollingVol is the sample standard deviation of log returns over each trailing window.
// Windows that reach back past the first return are NaN.
func RollingVol(prices []float64, window int, annualized bool) []float64 {
	returns := LogReturns(prices)
	vol := make([]float64, len(returns))
	for i := range vol {
		if window < 1 || i < window-1 {
			vol[i] = math.NaN()
			continue
		}
		vol[i] = stat.StdDev(returns[i-window+1:i+1], nil)
	}
	if annualized {
		annualize(vol)
	}
	return vol
}

// EWMAVol is the bias corrected exponentially weighted standard deviation of log returns
// with decay 2/(span+1). Every observation is weighted relative to the latest one rather
// than recursively, and a single observation has no deviation.
func EWMAVol(prices []float64, span float64, annualized bool) []float64 {
	returns := LogReturns(prices)
	vol := make([]float64, len(returns))
	decay := 1 - 2/(span+1)

	var (
		started                   bool
		mean, cov                 float64
		oldWeight, sumWt, sumWtSq float64
	)
	for i, x := range returns {
		observed := !math.IsNaN(x)
		switch {
		case started:
			oldWeight *= decay
			sumWt *= decay
			sumWtSq *= decay * decay
			if observed {
				oldMean := mean
				mean = (oldWeight*oldMean + x) / (oldWeight + 1)
				cov = (oldWeight*(cov+(oldMean-mean)*(oldMean-mean)) + (x-mean)*(x-mean)) / (oldWeight + 1)
				sumWt++
				sumWtSq++
				oldWeight++
			}
		case observed:
			started = true
			mean, cov = x, 0
			oldWeight, sumWt, sumWtSq = 1, 1, 1
		}

		vol[i] = math.NaN()
		if !started {
			continue
		}
		numerator := sumWt * sumWt
		if denominator := numerator - sumWtSq; denominator > 0 {
			vol[i] = math.Sqrt(math.Max(numerator/denominator*cov, 0))
		}
	}
	if annualized {
		annualize(vol)
	}
	return vol
}

// Realized is the sample standard deviation of the last period log returns, NaN when
// fewer than two returns are available.
func Realized(prices []float64, period int, annualized bool) float64 {
	returns := LogReturns(prices)
	if len(returns) > 0 {
		returns = returns[1:]
	}
	if period > 0 && len(returns) > period {
		returns = returns[len(returns)-period:]
	}
	if len(returns) < 2 {
		return math.NaN()
	}
	vol := stat.StdDev(returns, nil)
	if annualized {
		vol *= annualization
	}
	return vol
}

// FillColumns sets the LogReturn, RollingVol and EWMAVol columns of rows in place, with
// both volatilities annualized.
func FillColumns(rows []*models.AnnotatedBar, window int, span float64) error {
	if len(rows) == 0 {
		return ErrEmptySeries
	}
	if window < 2 {
		return fmt.Errorf("rolling volatility window must be at least 2, got %d", window)
	}
	if span < 1 {
		return fmt.Errorf("ewma span must be at least 1, got %v", span)
	}

	closes := models.Closes(rows)
	returns := LogReturns(closes)
	rolling := RollingVol(closes, window, true)
	ewma := EWMAVol(closes, span, true)
	for i, r := range rows {
		r.LogReturn = returns[i]
		r.RollingVol = rolling[i]
		r.EWMAVol = ewma[i]
	}
	return nil
}

// AddColumns annotates bars with log returns, rolling and EWMA volatility and drops the
// rows where any of them is undefined.
func AddColumns(bars []*models.Bar, window int, span float64) ([]*models.AnnotatedBar, error) {
	rows := models.Annotate(bars)
	if err := FillColumns(rows, window, span); err != nil {
		return nil, err
	}
	return models.DropUndefined(rows), nil
}
