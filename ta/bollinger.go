package ta

import (
	"fmt"
	"math"

	"github.com/tantralabs/bspx/models"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultBollingerWindow = 20
	DefaultBollingerStd    = 2.0
)

// RollingStdDev returns the sample standard deviation of each trailing window.
func RollingStdDev(in []float64, window int) []float64 {
	out := nans(len(in))
	if window < 1 {
		return out
	}
	for i := window - 1; i < len(in); i++ {
		out[i] = stat.StdDev(in[i-window+1:i+1], nil)
	}
	return out
}

// BollingerBands returns the moving average of close and the bands numStd sample
// standard deviations below and above it.
func BollingerBands(close []float64, window int, numStd float64) (lower, middle, upper []float64) {
	middle = SMA(close, window)
	std := RollingStdDev(close, window)
	lower = make([]float64, len(close))
	upper = make([]float64, len(close))
	for i := range close {
		lower[i] = middle[i] - numStd*std[i]
		upper[i] = middle[i] + numStd*std[i]
	}
	return lower, middle, upper
}

// BollingerSignals emits Buy when close falls through the lower band and Sell when it
// climbs back above it.
func BollingerSignals(close, lower []float64) []int {
	signals := make([]int, len(close))
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] <= lower[i] && close[i-1] > lower[i-1]:
			signals[i] = Buy
		case close[i] >= lower[i] && close[i-1] < lower[i-1]:
			signals[i] = Sell
		}
	}
	return signals
}

// AddBollingerBands fills the band and BollingerSignal columns of rows in place.
func AddBollingerBands(rows []*models.AnnotatedBar, window int, numStd float64) error {
	if window < 2 {
		return fmt.Errorf("bollinger window must be at least 2, got %d", window)
	}
	if numStd < 0 || math.IsNaN(numStd) {
		return fmt.Errorf("bollinger band width must be non-negative, got %v", numStd)
	}

	close := models.Closes(rows)
	lower, middle, upper := BollingerBands(close, window, numStd)
	signals := BollingerSignals(close, lower)
	for i, r := range rows {
		r.LowerBand = lower[i]
		r.MiddleBand = middle[i]
		r.UpperBand = upper[i]
		r.BollingerSignal = signals[i]
	}
	return nil
}
