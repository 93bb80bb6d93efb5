package data

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/tantralabs/bspx/models"
)

type chartIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// YahooProvider downloads daily bars from the Yahoo Finance chart API.
type YahooProvider struct {
	chart func(*chart.Params) chartIterator
}

// NewYahooProvider returns a provider backed by the public chart endpoint.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		chart: func(p *chart.Params) chartIterator { return chart.Get(p) },
	}
}

func toDatetime(t time.Time) *datetime.Datetime {
	return datetime.New(&t)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Bars returns the daily bars of ticker from start up to end.
func (y *YahooProvider) Bars(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error) {
	params := &chart.Params{
		Symbol:   ticker,
		Start:    toDatetime(start),
		End:      toDatetime(end),
		Interval: datetime.OneDay,
	}
	params.Context = &ctx

	var bars []*models.Bar
	iter := y.chart(params)
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, &models.Bar{
			Date:   models.NewDate(time.Unix(int64(b.Timestamp), 0).UTC()),
			Open:   toFloat(b.Open),
			High:   toFloat(b.High),
			Low:    toFloat(b.Low),
			Close:  toFloat(b.Close),
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("downloading %s: %w", ticker, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("downloading %s: %w", ticker, ErrNoData)
	}
	return bars, nil
}
