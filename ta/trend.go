package ta

import "github.com/tantralabs/bspx/models"

const (
	DefaultEMAWindow  = 20
	DefaultWMAWindow  = 20
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
	DefaultNATRWindow = 14
)

// AddEMA fills the EMA column with the exponential moving average of closes.
func AddEMA(rows []*models.AnnotatedBar, window int) error {
	ema, err := CreateEMA(models.Closes(rows), window)
	if err != nil {
		return err
	}
	for i, r := range rows {
		r.EMA = ema[i]
	}
	return nil
}

// AddWMA fills the WMA column with the weighted moving average of closes.
func AddWMA(rows []*models.AnnotatedBar, window int) {
	wma := GetWma(models.Closes(rows), window)
	for i, r := range rows {
		r.WMA = wma[i]
	}
}

// AddMACD fills the MACD, signal and histogram columns.
func AddMACD(rows []*models.AnnotatedBar, fast, slow, signal int) {
	macd, sig, hist := GetMacd(models.Closes(rows), fast, slow, signal)
	for i, r := range rows {
		r.MACD, r.MACDSignal, r.MACDHist = macd[i], sig[i], hist[i]
	}
}

// AddNATR fills the NATR column with the normalized average true range in percent.
func AddNATR(rows []*models.AnnotatedBar, window int) {
	natr := GetNATR(models.GetOHLCV(models.Bars(rows)), window)
	for i, r := range rows {
		r.NATR = natr[i]
	}
}
