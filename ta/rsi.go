package ta

import (
	"fmt"
	"math"

	"github.com/tantralabs/bspx/models"
)

const DefaultRSIWindow = 14

// Overbought and oversold RSI levels.
const (
	RSIOverbought = 70
	RSIOversold   = 30
)

// RSI computes the relative strength index from simple moving averages of gains and
// losses. It is NaN until window changes are seen and wherever the average loss is zero.
func RSI(close []float64, window int) []float64 {
	gains := make([]float64, len(close))
	losses := make([]float64, len(close))
	for i := 1; i < len(close); i++ {
		switch delta := close[i] - close[i-1]; {
		case delta > 0:
			gains[i] = delta
		case delta < 0:
			losses[i] = -delta
		}
	}

	avgGain := SMA(gains, window)
	avgLoss := SMA(losses, window)
	rsi := make([]float64, len(close))
	for i := range rsi {
		if avgLoss[i] == 0 {
			rsi[i] = math.NaN()
			continue
		}
		rs := avgGain[i] / avgLoss[i]
		rsi[i] = 100 - 100/(1+rs)
	}
	return rsi
}

// AddRSI fills the RSI column of rows in place.
func AddRSI(rows []*models.AnnotatedBar, window int) error {
	if window < 1 {
		return fmt.Errorf("rsi window must be positive, got %d", window)
	}
	for i, v := range RSI(models.Closes(rows), window) {
		rows[i].RSI = v
	}
	return nil
}
