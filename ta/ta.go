// Package ta provides the technical analysis indicators used to annotate daily price
// series, built on github.com/markcheno/go-talib. Every indicator returns a slice as long
// as its input, with NaN where the lookback window is not yet full.
package ta

import (
	"fmt"
	"math"

	talib "github.com/markcheno/go-talib"
	"github.com/tantralabs/bspx/models"
)

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA returns the simple moving average of in over window values.
func SMA(in []float64, window int) []float64 {
	if window < 1 || len(in) < window {
		return nans(len(in))
	}
	out := talib.Sma(in, window)
	for i := 0; i < window-1; i++ {
		out[i] = math.NaN()
	}
	return out
}

// CreateEMA Create an EMA
func CreateEMA(close []float64, length int) ([]float64, error) {
	if length <= 1 {
		return nil, fmt.Errorf("length of the ema must be greater than 1, got %d", length)
	}
	if len(close) < length {
		return nans(len(close)), nil
	}
	ema := talib.Ema(close, length)
	for i := 0; i < length-1; i++ {
		ema[i] = math.NaN()
	}
	return ema, nil
}

// GetWma calculates a weighted moving average given a time period, giving more weight to more recent data as opposed to older data
func GetWma(close []float64, inTimePeriod int) []float64 {
	if inTimePeriod < 1 || len(close) < inTimePeriod {
		return nans(len(close))
	}
	wma := talib.Wma(close, inTimePeriod)
	for i := 0; i < inTimePeriod-1; i++ {
		wma[i] = math.NaN()
	}
	return wma
}

// GetMacd calculates MACD, MACDSignal, & MACDHistogram slices. Values before the slow and signal lookbacks are NaN.
func GetMacd(close []float64, inFastPeriod int, inSlowPeriod int, inSignalPeriod int) ([]float64, []float64, []float64) {
	lookback := inSlowPeriod + inSignalPeriod - 2
	if inFastPeriod > inSlowPeriod {
		lookback = inFastPeriod + inSignalPeriod - 2
	}
	if inFastPeriod < 2 || inSlowPeriod < 2 || inSignalPeriod < 1 || len(close) <= lookback {
		return nans(len(close)), nans(len(close)), nans(len(close))
	}
	macd, signal, hist := talib.Macd(close, inFastPeriod, inSlowPeriod, inSignalPeriod)
	for i := 0; i < lookback; i++ {
		macd[i], signal[i], hist[i] = math.NaN(), math.NaN(), math.NaN()
	}
	return macd, signal, hist
}

// GetNATR Get the Normalized Average True Range over length bars
func GetNATR(ohlcv models.OHLCV, length int) []float64 {
	if length < 2 || len(ohlcv.Close) <= length {
		return nans(len(ohlcv.Close))
	}
	natr := talib.Natr(ohlcv.High, ohlcv.Low, ohlcv.Close, length)
	for i := 0; i < length; i++ {
		natr[i] = math.NaN()
	}
	return natr
}
