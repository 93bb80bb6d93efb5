package models

import "math"

// AnnotatedBar is a bar decorated with indicator and volatility columns. Columns whose
// indicator was not requested are left at zero.
type AnnotatedBar struct {
	Bar `structs:",flatten"`

	ShortMA         float64 `csv:"Short_MA" structs:"short_ma"`
	LongMA          float64 `csv:"Long_MA" structs:"long_ma"`
	MASignal        int     `csv:"MA_Signal" structs:"ma_signal"`
	MiddleBand      float64 `csv:"Middle_Band" structs:"middle_band"`
	LowerBand       float64 `csv:"Lower_Band" structs:"lower_band"`
	UpperBand       float64 `csv:"Upper_Band" structs:"upper_band"`
	BollingerSignal int     `csv:"Bollinger_Signal" structs:"bollinger_signal"`
	RSI             float64 `csv:"RSI" structs:"rsi"`
	EMA             float64 `csv:"EMA" structs:"ema"`
	WMA             float64 `csv:"WMA" structs:"wma"`
	MACD            float64 `csv:"MACD" structs:"macd"`
	MACDSignal      float64 `csv:"MACD_Signal" structs:"macd_signal"`
	MACDHist        float64 `csv:"MACD_Hist" structs:"macd_hist"`
	NATR            float64 `csv:"NATR" structs:"natr"`

	LogReturn  float64 `csv:"Log_returns" structs:"log_return"`
	RollingVol float64 `csv:"Rolling_vol" structs:"rolling_vol"`
	EWMAVol    float64 `csv:"Ewma_vol" structs:"ewma_vol"`
}

// Annotate wraps bars without any indicator columns.
func Annotate(bars []*Bar) []*AnnotatedBar {
	out := make([]*AnnotatedBar, len(bars))
	for i, b := range bars {
		out[i] = &AnnotatedBar{Bar: *b}
	}
	return out
}

// Defined reports whether every indicator column holds a number.
func (b *AnnotatedBar) Defined() bool {
	for _, v := range []float64{
		b.ShortMA, b.LongMA, b.MiddleBand, b.LowerBand, b.UpperBand, b.RSI,
		b.EMA, b.WMA, b.MACD, b.MACDSignal, b.MACDHist, b.NATR,
		b.LogReturn, b.RollingVol, b.EWMAVol,
	} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// DropUndefined returns the rows whose indicator columns are all defined, in order.
func DropUndefined(rows []*AnnotatedBar) []*AnnotatedBar {
	out := make([]*AnnotatedBar, 0, len(rows))
	for _, r := range rows {
		if r.Defined() {
			out = append(out, r)
		}
	}
	return out
}

// Bars returns the bars under rows.
func Bars(rows []*AnnotatedBar) []*Bar {
	out := make([]*Bar, len(rows))
	for i, r := range rows {
		out[i] = &r.Bar
	}
	return out
}

// Closes returns the close column.
func Closes(rows []*AnnotatedBar) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Close
	}
	return out
}
