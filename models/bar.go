package models

// Bar is one daily OHLCV observation. The csv tags match the per-ticker cache files.
type Bar struct {
	Date   Date    `csv:"Date" structs:"-"`
	Open   float64 `csv:"Open" structs:"open"`
	High   float64 `csv:"High" structs:"high"`
	Low    float64 `csv:"Low" structs:"low"`
	Close  float64 `csv:"Close" structs:"close"`
	Volume float64 `csv:"Volume" structs:"volume"`
}

// Valid reports whether the bar carries the required open, high, low and close prices.
func (b *Bar) Valid() bool {
	return b != nil && !b.Date.IsZero() && b.Open > 0 && b.High > 0 && b.Low > 0 && b.Close > 0
}
