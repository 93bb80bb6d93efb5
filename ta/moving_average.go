package ta

import (
	"errors"
	"fmt"

	"github.com/tantralabs/bspx/models"
)

const (
	DefaultShortWindow = 20
	DefaultLongWindow  = 50
)

// ErrWindowOrder is returned when the short moving average window is not shorter than the long one.
var ErrWindowOrder = errors.New("short window must be less than long window")

// Crossover signal values.
const (
	Hold = 0
	Buy  = 1
	Sell = -1
)

// MovingAverages returns the short and long simple moving averages of close.
func MovingAverages(close []float64, shortWindow, longWindow int) (shortMA, longMA []float64) {
	return SMA(close, shortWindow), SMA(close, longWindow)
}

// CrossoverSignals marks a golden cross (short crosses above long) with Buy and a death
// cross (short crosses below long) with Sell.
func CrossoverSignals(shortMA, longMA []float64) []int {
	signals := make([]int, len(shortMA))
	for i := 1; i < len(shortMA); i++ {
		switch {
		case shortMA[i] > longMA[i] && shortMA[i-1] <= longMA[i-1]:
			signals[i] = Buy
		case shortMA[i] < longMA[i] && shortMA[i-1] >= longMA[i-1]:
			signals[i] = Sell
		}
	}
	return signals
}

// AddMovingAverages fills the ShortMA, LongMA and MASignal columns of rows in place.
func AddMovingAverages(rows []*models.AnnotatedBar, shortWindow, longWindow int) error {
	if shortWindow >= longWindow {
		return fmt.Errorf("%w: short %d, long %d", ErrWindowOrder, shortWindow, longWindow)
	}
	if shortWindow < 1 {
		return fmt.Errorf("moving average window must be positive, got %d", shortWindow)
	}

	shortMA, longMA := MovingAverages(models.Closes(rows), shortWindow, longWindow)
	signals := CrossoverSignals(shortMA, longMA)
	for i, r := range rows {
		r.ShortMA = shortMA[i]
		r.LongMA = longMA[i]
		r.MASignal = signals[i]
	}
	return nil
}
