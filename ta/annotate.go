package ta

import "github.com/tantralabs/bspx/models"

// Options selects the indicators Annotate computes and their windows.
type Options struct {
	MovingAverage bool
	Bollinger     bool
	RSI           bool
	EMA           bool
	WMA           bool
	MACD          bool
	NATR          bool

	ShortWindow     int
	LongWindow      int
	BollingerWindow int
	BollingerStd    float64
	RSIWindow       int
	EMAWindow       int
	WMAWindow       int
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	NATRWindow      int
}

// DefaultOptions draws moving averages and Bollinger bands. Every window is set to its
// default so other indicators only need switching on.
func DefaultOptions() Options {
	return Options{
		MovingAverage:   true,
		Bollinger:       true,
		ShortWindow:     DefaultShortWindow,
		LongWindow:      DefaultLongWindow,
		BollingerWindow: DefaultBollingerWindow,
		BollingerStd:    DefaultBollingerStd,
		RSIWindow:       DefaultRSIWindow,
		EMAWindow:       DefaultEMAWindow,
		WMAWindow:       DefaultWMAWindow,
		MACDFast:        DefaultMACDFast,
		MACDSlow:        DefaultMACDSlow,
		MACDSignal:      DefaultMACDSignal,
		NATRWindow:      DefaultNATRWindow,
	}
}

// Fill computes the selected indicators over the whole of rows, in place.
func Fill(rows []*models.AnnotatedBar, opts Options) error {
	if opts.MovingAverage {
		if err := AddMovingAverages(rows, opts.ShortWindow, opts.LongWindow); err != nil {
			return err
		}
	}
	if opts.Bollinger {
		if err := AddBollingerBands(rows, opts.BollingerWindow, opts.BollingerStd); err != nil {
			return err
		}
	}
	if opts.RSI {
		if err := AddRSI(rows, opts.RSIWindow); err != nil {
			return err
		}
	}
	if opts.EMA {
		if err := AddEMA(rows, opts.EMAWindow); err != nil {
			return err
		}
	}
	if opts.WMA {
		AddWMA(rows, opts.WMAWindow)
	}
	if opts.MACD {
		AddMACD(rows, opts.MACDFast, opts.MACDSlow, opts.MACDSignal)
	}
	if opts.NATR {
		AddNATR(rows, opts.NATRWindow)
	}
	return nil
}

// Annotate computes the selected indicators over the whole series and drops the rows
// where any of them is undefined.
func Annotate(bars []*models.Bar, opts Options) ([]*models.AnnotatedBar, error) {
	rows := models.Annotate(bars)
	if err := Fill(rows, opts); err != nil {
		return nil, err
	}
	return models.DropUndefined(rows), nil
}
