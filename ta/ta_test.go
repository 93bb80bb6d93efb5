package ta

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tantralabs/bspx/models"
)

func sameFloats(t *testing.T, name string, got, expected []float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: length %d, expected %d", name, len(got), len(expected))
	}
	for i := range got {
		if math.IsNaN(expected[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("%s[%d] = %v, expected NaN", name, i, got[i])
			}
			continue
		}
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Errorf("%s[%d] = %v, expected %v", name, i, got[i], expected[i])
		}
	}
}

func sameInts(t *testing.T, name string, got, expected []int) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: length %d, expected %d", name, len(got), len(expected))
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("%s[%d] = %d, expected %d", name, i, got[i], expected[i])
		}
	}
}

var nan = math.NaN()

func makeBars(closes []float64) []*models.Bar {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]*models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = &models.Bar{
			Date:   models.NewDate(start.AddDate(0, 0, i)),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestSMA(t *testing.T) {
	sameFloats(t, "sma", SMA([]float64{1, 2, 3, 4, 5}, 3), []float64{nan, nan, 2, 3, 4})
	sameFloats(t, "short input", SMA([]float64{1, 2}, 3), []float64{nan, nan})
	sameFloats(t, "window 1", SMA([]float64{4, 5}, 1), []float64{4, 5})
}

func TestCrossoverSignals(t *testing.T) {
	short := []float64{nan, 1, 1, 3, 3, 1, 2}
	long := []float64{nan, 2, 2, 2, 2, 2, 2}
	sameInts(t, "signals", CrossoverSignals(short, long), []int{Hold, Hold, Hold, Buy, Hold, Sell, Hold})
}

func TestAddMovingAveragesRejectsWindowOrder(t *testing.T) {
	rows := models.Annotate(makeBars([]float64{1, 2, 3}))
	for _, w := range [][2]int{{50, 20}, {20, 20}} {
		if err := AddMovingAverages(rows, w[0], w[1]); !errors.Is(err, ErrWindowOrder) {
			t.Errorf("windows %v: expected ErrWindowOrder, got %v", w, err)
		}
	}
}

func TestAddMovingAverages(t *testing.T) {
	rows := models.Annotate(makeBars([]float64{3, 2, 1, 2, 6}))
	if err := AddMovingAverages(rows, 1, 3); err != nil {
		t.Fatal(err)
	}
	short := make([]float64, len(rows))
	long := make([]float64, len(rows))
	signals := make([]int, len(rows))
	for i, r := range rows {
		short[i], long[i], signals[i] = r.ShortMA, r.LongMA, r.MASignal
	}
	sameFloats(t, "short", short, []float64{3, 2, 1, 2, 6})
	sameFloats(t, "long", long, []float64{nan, nan, 2, 5.0 / 3, 3})
	sameInts(t, "signal", signals, []int{Hold, Hold, Hold, Buy, Hold})
}

func TestRSI(t *testing.T) {
	got := RSI([]float64{10, 11, 12, 11, 13}, 2)
	sameFloats(t, "rsi", got, []float64{nan, nan, nan, 50, 100 - 100.0/3})
}

func TestRSIBounded(t *testing.T) {
	closes := make([]float64, 200)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/3) + float64(i%7)
	}
	for i, v := range RSI(closes, DefaultRSIWindow) {
		if i < DefaultRSIWindow-1 {
			if !math.IsNaN(v) {
				t.Errorf("rsi[%d] = %v inside the lookback", i, v)
			}
			continue
		}
		if math.IsNaN(v) || v < 0 || v > 100 {
			t.Errorf("rsi[%d] = %v", i, v)
		}
	}
}

func TestBollingerBands(t *testing.T) {
	lower, middle, upper := BollingerBands([]float64{1, 2, 3, 4, 5}, 3, 2)
	sameFloats(t, "lower", lower, []float64{nan, nan, 0, 1, 2})
	sameFloats(t, "middle", middle, []float64{nan, nan, 2, 3, 4})
	sameFloats(t, "upper", upper, []float64{nan, nan, 4, 5, 6})
}

func TestBollingerSignals(t *testing.T) {
	close := []float64{5, 5, 1, 4, 6, 2}
	lower := []float64{nan, 3, 3, 5, 5, 5}
	sameInts(t, "signals", BollingerSignals(close, lower), []int{Hold, Hold, Buy, Hold, Sell, Buy})
}

func TestAnnotate(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5) + float64(i%7)
	}
	bars := makeBars(closes)

	opts := DefaultOptions()
	opts.RSI = true
	rows, err := Annotate(bars, opts)
	if err != nil {
		t.Fatal(err)
	}
	if expected := len(bars) - (DefaultLongWindow - 1); len(rows) != expected {
		t.Fatalf("got %d rows, expected %d", len(rows), expected)
	}
	if !rows[0].Date.Equal(bars[DefaultLongWindow-1].Date.Time) {
		t.Errorf("first row dated %v, expected %v", rows[0].Date, bars[DefaultLongWindow-1].Date)
	}
	for i, r := range rows {
		if !r.Defined() {
			t.Errorf("row %d has undefined columns: %+v", i, r)
		}
		if r.LowerBand > r.MiddleBand || r.MiddleBand > r.UpperBand {
			t.Errorf("row %d bands out of order: %v %v %v", i, r.LowerBand, r.MiddleBand, r.UpperBand)
		}
	}
	if bars[0].Close != closes[0] {
		t.Error("Annotate modified its input")
	}
}

func TestAnnotateOnlySelected(t *testing.T) {
	rows, err := Annotate(makeBars([]float64{1, 2, 3, 4, 5}), Options{Bollinger: true, BollingerWindow: 3, BollingerStd: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, expected 3", len(rows))
	}
	if rows[0].ShortMA != 0 || rows[0].RSI != 0 {
		t.Errorf("unselected columns were filled: %+v", rows[0])
	}
}

func TestAnnotateTrendColumns(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 50 + float64(i%9)
	}
	bars := makeBars(closes)
	opts := Options{
		EMA: true, WMA: true, MACD: true, NATR: true,
		EMAWindow: 10, WMAWindow: 5, MACDFast: 12, MACDSlow: 26, MACDSignal: 9, NATRWindow: 14,
	}
	rows, err := Annotate(bars, opts)
	if err != nil {
		t.Fatal(err)
	}
	if expected := len(bars) - (26 + 9 - 2); len(rows) != expected {
		t.Fatalf("got %d rows, expected %d", len(rows), expected)
	}

	all := models.Annotate(bars)
	if err := Fill(all, opts); err != nil {
		t.Fatal(err)
	}
	ema, _ := CreateEMA(closes, 10)
	macd, signal, hist := GetMacd(closes, 12, 26, 9)
	natr := GetNATR(models.GetOHLCV(bars), 14)
	wma := GetWma(closes, 5)
	for i, r := range all {
		got := []float64{r.EMA, r.WMA, r.MACD, r.MACDSignal, r.MACDHist, r.NATR}
		sameFloats(t, "row", got, []float64{ema[i], wma[i], macd[i], signal[i], hist[i], natr[i]})
	}
	if all[59].ShortMA != 0 || all[59].RSI != 0 {
		t.Errorf("unselected columns were filled: %+v", all[59])
	}

	opts.EMAWindow = 1
	if err := Fill(models.Annotate(bars), opts); err == nil {
		t.Error("expected an error for an ema window of 1")
	}
}

func TestAnnotateRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.ShortWindow, opts.LongWindow = 50, 20
	if _, err := Annotate(makeBars([]float64{1, 2, 3}), opts); !errors.Is(err, ErrWindowOrder) {
		t.Errorf("expected ErrWindowOrder, got %v", err)
	}
}

func TestCreateEMA(t *testing.T) {
	if _, err := CreateEMA([]float64{1, 2, 3}, 1); err == nil {
		t.Error("expected an error for length 1")
	}
	ema, err := CreateEMA([]float64{1, 2, 3, 4, 5, 6}, 3)
	if err != nil {
		t.Fatal(err)
	}
	sameFloats(t, "ema", ema, []float64{nan, nan, 2, 3, 4, 5})
}

func TestGetWma(t *testing.T) {
	sameFloats(t, "wma", GetWma([]float64{1, 2, 3, 4}, 2), []float64{nan, 5.0 / 3, 8.0 / 3, 11.0 / 3})
}

func TestGetMacd(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 50 + float64(i%9)
	}
	macd, signal, hist := GetMacd(closes, 12, 26, 9)
	lookback := 26 + 9 - 2
	for i := range closes {
		if i < lookback {
			if !math.IsNaN(macd[i]) || !math.IsNaN(signal[i]) || !math.IsNaN(hist[i]) {
				t.Errorf("macd[%d] defined inside the lookback", i)
			}
			continue
		}
		if math.Abs(hist[i]-(macd[i]-signal[i])) > 1e-9 {
			t.Errorf("hist[%d] = %v, expected %v", i, hist[i], macd[i]-signal[i])
		}
	}
}

func TestGetNATR(t *testing.T) {
	ohlcv := models.GetOHLCV(makeBars([]float64{10, 10, 10, 10, 10, 10}))
	natr := GetNATR(ohlcv, 3)
	sameFloats(t, "natr", natr, []float64{nan, nan, nan, 20, 20, 20})
}
