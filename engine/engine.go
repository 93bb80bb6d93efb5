// Package engine runs the fetch, annotate, price and export pipeline over the configured
// tickers, once or on a cron schedule.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/robfig/cron"
	"github.com/tantralabs/bspx/data"
	"github.com/tantralabs/bspx/logger"
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/options"
	"github.com/tantralabs/bspx/report"
	"github.com/tantralabs/bspx/settings"
	"github.com/tantralabs/bspx/ta"
	"github.com/tantralabs/bspx/volatility"
)

// ErrNoVolatility is returned when a series is too short to estimate realized volatility.
var ErrNoVolatility = errors.New("not enough bars to estimate realized volatility")

type sink interface {
	LogSeries(ctx context.Context, ticker string, rows []*models.AnnotatedBar) error
	LogChain(ctx context.Context, ticker string, rows []models.ChainRow) error
	Close() error
}

// Result is everything computed for one ticker.
type Result struct {
	Ticker     string
	Series     []*models.AnnotatedBar
	Spot       float64
	Volatility float64
	Chain      []models.ChainRow
}

// Engine prices option chains off the bars the manager serves.
type Engine struct {
	Config  settings.Config
	Manager *data.Manager

	influx sink
	closer io.Closer
	now    func() time.Time
}

// NewEngine wires the provider, cache and optional Influx sink named by config.
func NewEngine(config settings.Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{Config: config, now: time.Now}

	var provider data.Provider
	switch config.Provider {
	case settings.Postgres:
		pg, err := data.NewPostgresProvider(config.Postgres.DSN, config.Postgres.Exchange, config.Postgres.Interval)
		if err != nil {
			return nil, err
		}
		provider, e.closer = pg, pg
	default:
		provider = data.NewYahooProvider()
	}
	e.Manager = data.NewManager(provider, data.NewCache(config.CacheDir))

	if config.Influx.URL != "" {
		influx, err := report.NewInflux(config.Influx)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.influx = influx
		logger.Infof("Logging to influx %s, run %s", config.Influx.URL, influx.RunID)
	}
	return e, nil
}

// Close releases the database connections.
func (e *Engine) Close() error {
	var err error
	if e.influx != nil {
		err = e.influx.Close()
	}
	if e.closer != nil {
		if cerr := e.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Process annotates bars and prices the default chain around the last close with the
// realized volatility of the series.
func (e *Engine) Process(ticker string, bars []*models.Bar) (*Result, error) {
	rows := models.Annotate(bars)
	if err := ta.Fill(rows, e.Config.TAOptions()); err != nil {
		return nil, err
	}
	if err := volatility.FillColumns(rows, e.Config.VolWindow, e.Config.VolSpan); err != nil {
		return nil, err
	}
	closes := models.Closes(rows)
	vol := volatility.Realized(closes, e.Config.RealizedPeriod, true)
	if math.IsNaN(vol) || vol <= 0 {
		return nil, ErrNoVolatility
	}

	dc, err := e.Config.DayCountValue()
	if err != nil {
		return nil, err
	}
	spot := closes[len(closes)-1]
	chain := options.Chain{
		Symbol:     ticker,
		Spot:       spot,
		Rate:       e.Config.RiskFreeRate,
		Volatility: vol,
		Now:        e.now(),
		Convention: e.Config.Convention(),
	}
	priced, err := chain.BuildAvailableOptions(dc)
	if err != nil {
		return nil, err
	}
	return &Result{
		Ticker:     ticker,
		Series:     models.DropUndefined(rows),
		Spot:       spot,
		Volatility: vol,
		Chain:      priced,
	}, nil
}

// Export writes a result to the output directory and, when configured, to Influx.
func (e *Engine) Export(ctx context.Context, r *Result) error {
	if e.Config.OutputDir != "" {
		if err := report.WriteSeries(e.Config.OutputDir, r.Ticker, r.Series); err != nil {
			return err
		}
		if err := report.WriteChain(e.Config.OutputDir, r.Ticker, r.Chain); err != nil {
			return err
		}
	}
	if e.influx != nil {
		if err := e.influx.LogSeries(ctx, r.Ticker, r.Series); err != nil {
			return err
		}
		if err := e.influx.LogChain(ctx, r.Ticker, r.Chain); err != nil {
			return err
		}
	}
	return nil
}

// Run fetches every configured ticker, then processes and exports each one. Tickers that
// fail are logged and left out of the results; Run only fails when the context ends or
// no ticker succeeds.
func (e *Engine) Run(ctx context.Context) ([]*Result, error) {
	start, end, err := e.Config.Range()
	if err != nil {
		return nil, err
	}
	stockData := e.Manager.GetStockData(ctx, e.Config.Tickers, start, end)

	var results []*Result
	for _, ticker := range data.CleanTickers(e.Config.Tickers) {
		bars, ok := stockData[ticker]
		if !ok {
			continue
		}
		log := logger.With("ticker", ticker)
		r, err := e.Process(ticker, bars)
		if err != nil {
			log.Warnf("Warning: skipping %s: %v", ticker, err)
			continue
		}
		if err := e.Export(ctx, r); err != nil {
			log.Errorf("Couldn't export %s: %v", ticker, err)
			continue
		}
		log.Infow("Priced chain", "spot", r.Spot, "realized_vol", r.Volatility, "series_rows", len(r.Series), "contracts", len(r.Chain))
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("none of %v could be priced", e.Config.Tickers)
	}
	return results, nil
}

// Schedule runs the pipeline on the six field cron spec until ctx ends.
func (e *Engine) Schedule(ctx context.Context, spec string) error {
	c := cron.New()
	err := c.AddFunc(spec, func() {
		if _, err := e.Run(ctx); err != nil {
			logger.Errorf("Scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}
	logger.Infof("Running on schedule %q", spec)
	c.Start()
	<-ctx.Done()
	c.Stop()
	return nil
}
