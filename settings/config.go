// Package settings loads the run configuration from a JSON file or an AWS secret, then
// applies BSPX_* environment overrides.
package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/tantralabs/bspx/greeks"
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/report"
	"github.com/tantralabs/bspx/ta"
	"github.com/tantralabs/bspx/volatility"
	"go.uber.org/multierr"
)

// Providers a config may name.
const (
	Yahoo    = "yahoo"
	Postgres = "postgres"
)

// PostgresConfig addresses the candles table read by the postgres provider.
type PostgresConfig struct {
	DSN      string `json:"dsn" structs:"-"`
	Exchange string `json:"exchange"`
	Interval string `json:"interval"`
}

// Indicators selects the indicator columns and their windows.
type Indicators struct {
	MovingAverage   bool    `json:"moving_average" envconfig:"MOVING_AVERAGE"`
	Bollinger       bool    `json:"bollinger" envconfig:"BOLLINGER"`
	RSI             bool    `json:"rsi" envconfig:"RSI"`
	ShortWindow     int     `json:"short_window" envconfig:"SHORT_WINDOW"`
	LongWindow      int     `json:"long_window" envconfig:"LONG_WINDOW"`
	BollingerWindow int     `json:"bollinger_window" envconfig:"BOLLINGER_WINDOW"`
	BollingerStd    float64 `json:"bollinger_std" envconfig:"BOLLINGER_STD"`
	RSIWindow       int     `json:"rsi_window" envconfig:"RSI_WINDOW"`

	EMA        bool `json:"ema" envconfig:"EMA"`
	WMA        bool `json:"wma" envconfig:"WMA"`
	MACD       bool `json:"macd" envconfig:"MACD"`
	NATR       bool `json:"natr" envconfig:"NATR"`
	EMAWindow  int  `json:"ema_window" envconfig:"EMA_WINDOW"`
	WMAWindow  int  `json:"wma_window" envconfig:"WMA_WINDOW"`
	MACDFast   int  `json:"macd_fast" envconfig:"MACD_FAST"`
	MACDSlow   int  `json:"macd_slow" envconfig:"MACD_SLOW"`
	MACDSignal int  `json:"macd_signal" envconfig:"MACD_SIGNAL"`
	NATRWindow int  `json:"natr_window" envconfig:"NATR_WINDOW"`
}

// Config describes one run: which tickers to fetch and from where, how to annotate them
// and how to price their option chains.
type Config struct {
	CacheDir  string              `json:"cache_dir" envconfig:"CACHE_DIR"`
	OutputDir string              `json:"output_dir" envconfig:"OUTPUT_DIR"`
	Provider  string              `json:"provider" envconfig:"PROVIDER"`
	Postgres  PostgresConfig      `json:"postgres" envconfig:"POSTGRES"`
	Influx    report.InfluxConfig `json:"influx" envconfig:"INFLUX"`

	Tickers []string `json:"tickers" envconfig:"TICKERS"`
	Start   string   `json:"start" envconfig:"START"`
	End     string   `json:"end" envconfig:"END"`

	Indicators     Indicators `json:"indicators" envconfig:"INDICATORS"`
	VolWindow      int        `json:"vol_window" envconfig:"VOL_WINDOW"`
	VolSpan        float64    `json:"vol_span" envconfig:"VOL_SPAN"`
	RealizedPeriod int        `json:"realized_period" envconfig:"REALIZED_PERIOD"`

	RiskFreeRate float64 `json:"risk_free_rate" envconfig:"RISK_FREE_RATE"`
	DayCount     string  `json:"day_count" envconfig:"DAY_COUNT"`
	PercentPoint bool    `json:"percent_point" envconfig:"PERCENT_POINT"`
	CalendarDays float64 `json:"calendar_days" envconfig:"CALENDAR_DAYS"`

	LogLevel string `json:"log_level" envconfig:"LOG_LEVEL"`
	Schedule string `json:"schedule" envconfig:"SCHEDULE"`
}

// DefaultConfig fetches a year of AAPL from Yahoo with moving averages and Bollinger
// bands, and quotes Greeks per percentage point over a 365 day calendar year.
func DefaultConfig() Config {
	opts := ta.DefaultOptions()
	end := time.Now().UTC()
	return Config{
		CacheDir:  "data/raw",
		OutputDir: "data/processed",
		Provider:  Yahoo,
		Postgres:  PostgresConfig{Exchange: "nasdaq", Interval: "1d"},
		Influx:    report.InfluxConfig{Database: "bspx"},
		Tickers:   []string{"AAPL"},
		Start:     models.NewDate(end.AddDate(-1, 0, 0)).String(),
		End:       models.NewDate(end).String(),
		Indicators: Indicators{
			MovingAverage:   opts.MovingAverage,
			Bollinger:       opts.Bollinger,
			RSI:             opts.RSI,
			ShortWindow:     opts.ShortWindow,
			LongWindow:      opts.LongWindow,
			BollingerWindow: opts.BollingerWindow,
			BollingerStd:    opts.BollingerStd,
			RSIWindow:       opts.RSIWindow,
			EMAWindow:       opts.EMAWindow,
			WMAWindow:       opts.WMAWindow,
			MACDFast:        opts.MACDFast,
			MACDSlow:        opts.MACDSlow,
			MACDSignal:      opts.MACDSignal,
			NATRWindow:      opts.NATRWindow,
		},
		VolWindow:      volatility.DefaultWindow,
		VolSpan:        volatility.DefaultSpan,
		RealizedPeriod: volatility.DefaultRealizedPeriod,
		RiskFreeRate:   0.05,
		DayCount:       models.Calendar.String(),
		PercentPoint:   true,
		CalendarDays:   models.CalendarDaysPerYear,
		LogLevel:       "info",
	}
}

// TAOptions returns the indicator selection as ta options.
func (c Config) TAOptions() ta.Options {
	return ta.Options{
		MovingAverage:   c.Indicators.MovingAverage,
		Bollinger:       c.Indicators.Bollinger,
		RSI:             c.Indicators.RSI,
		ShortWindow:     c.Indicators.ShortWindow,
		LongWindow:      c.Indicators.LongWindow,
		BollingerWindow: c.Indicators.BollingerWindow,
		BollingerStd:    c.Indicators.BollingerStd,
		RSIWindow:       c.Indicators.RSIWindow,
		EMA:             c.Indicators.EMA,
		WMA:             c.Indicators.WMA,
		MACD:            c.Indicators.MACD,
		NATR:            c.Indicators.NATR,
		EMAWindow:       c.Indicators.EMAWindow,
		WMAWindow:       c.Indicators.WMAWindow,
		MACDFast:        c.Indicators.MACDFast,
		MACDSlow:        c.Indicators.MACDSlow,
		MACDSignal:      c.Indicators.MACDSignal,
		NATRWindow:      c.Indicators.NATRWindow,
	}
}

// Range parses the start and end dates.
func (c Config) Range() (start, end time.Time, err error) {
	s, err := models.ParseDate(c.Start)
	if err != nil {
		return start, end, fmt.Errorf("start: %w", err)
	}
	e, err := models.ParseDate(c.End)
	if err != nil {
		return start, end, fmt.Errorf("end: %w", err)
	}
	if !s.Before(e.Time) {
		return start, end, fmt.Errorf("start %s is not before end %s", s, e)
	}
	return s.Time, e.Time, nil
}

// DayCountValue parses the theta day count.
func (c Config) DayCountValue() (models.DayCount, error) {
	return models.ParseDayCount(c.DayCount)
}

// Convention returns the units Greeks are quoted in.
func (c Config) Convention() greeks.Convention {
	return greeks.Convention{
		TradingDaysPerYear:  models.TradingDaysPerYear,
		CalendarDaysPerYear: c.CalendarDays,
		PercentPoint:        c.PercentPoint,
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs error
	switch c.Provider {
	case Yahoo:
	case Postgres:
		if c.Postgres.DSN == "" {
			errs = multierr.Append(errs, errors.New("postgres provider needs a dsn"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if c.CacheDir == "" {
		errs = multierr.Append(errs, errors.New("cache_dir is empty"))
	}
	if len(c.Tickers) == 0 {
		errs = multierr.Append(errs, errors.New("no tickers"))
	}
	if _, _, err := c.Range(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := c.DayCountValue(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := c.Convention().Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Indicators.MovingAverage && c.Indicators.ShortWindow >= c.Indicators.LongWindow {
		errs = multierr.Append(errs, ta.ErrWindowOrder)
	}
	if c.Indicators.EMA && c.Indicators.EMAWindow < 2 {
		errs = multierr.Append(errs, fmt.Errorf("ema window %d is too short", c.Indicators.EMAWindow))
	}
	if c.Indicators.MACD && c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		errs = multierr.Append(errs, fmt.Errorf("macd fast period %d is not shorter than slow period %d", c.Indicators.MACDFast, c.Indicators.MACDSlow))
	}
	if c.VolWindow < 2 || c.VolSpan < 1 || c.RealizedPeriod < 2 {
		errs = multierr.Append(errs, fmt.Errorf("volatility windows %d, %v, %d are too short", c.VolWindow, c.VolSpan, c.RealizedPeriod))
	}
	return errs
}
