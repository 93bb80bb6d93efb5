package models

// Represents concise Open, High, Low, Close, and Volume data in a single struct.
type OHLCV struct {
	Date   []Date
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// GetOHLCV breaks the bars down into column slices that are easier to manipulate.
func GetOHLCV(bars []*Bar) (ohlcv OHLCV) {
	ohlcv = OHLCV{
		Date:   make([]Date, len(bars)),
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}

	for i := range bars {
		ohlcv.Date[i] = bars[i].Date
		ohlcv.Open[i] = bars[i].Open
		ohlcv.High[i] = bars[i].High
		ohlcv.Low[i] = bars[i].Low
		ohlcv.Close[i] = bars[i].Close
		ohlcv.Volume[i] = bars[i].Volume
	}
	return
}
