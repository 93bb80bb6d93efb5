package data

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/tantralabs/bspx/models"
)

const candlesQuery = `select timestamp, open, high, low, close, volume from candles
where symbol = $1 and exchange = $2 and interval = $3 and timestamp >= $4 and timestamp <= $5
order by timestamp`

// candle is a row of the candles table. Timestamps are unix milliseconds.
type candle struct {
	Timestamp int64   `db:"timestamp"`
	Open      float64 `db:"open"`
	High      float64 `db:"high"`
	Low       float64 `db:"low"`
	Close     float64 `db:"close"`
	Volume    float64 `db:"volume"`
}

func (c candle) bar() *models.Bar {
	return &models.Bar{
		Date:   models.NewDate(time.Unix(0, c.Timestamp*int64(time.Millisecond)).UTC()),
		Open:   c.Open,
		High:   c.High,
		Low:    c.Low,
		Close:  c.Close,
		Volume: c.Volume,
	}
}

type selecter interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// PostgresProvider reads bars from the candles table of a local psql database.
type PostgresProvider struct {
	db       selecter
	Exchange string
	Interval string
}

// NewPostgresProvider opens dsn and serves candles recorded for exchange at interval.
func NewPostgresProvider(dsn, exchange, interval string) (*PostgresProvider, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresProvider{db: db, Exchange: exchange, Interval: interval}, nil
}

// Close closes the underlying connection pool.
func (p *PostgresProvider) Close() error {
	if db, ok := p.db.(*sqlx.DB); ok {
		return db.Close()
	}
	return nil
}

// Bars selects the candles of ticker between start and end.
func (p *PostgresProvider) Bars(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error) {
	candles := []candle{}
	err := p.db.SelectContext(ctx, &candles, candlesQuery, ticker, p.Exchange, p.Interval, start.Unix()*1000, end.Unix()*1000)
	if err != nil {
		return nil, fmt.Errorf("selecting %s candles: %w", ticker, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w for %s %s on the %s interval between %s and %s", ErrNoData, p.Exchange, ticker, p.Interval, start.Format(models.DateLayout), end.Format(models.DateLayout))
	}

	bars := make([]*models.Bar, len(candles))
	for i, c := range candles {
		bars[i] = c.bar()
	}
	return bars, nil
}
