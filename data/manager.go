package data

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/tantralabs/bspx/logger"
	"github.com/tantralabs/bspx/models"
)

// Manager serves bars from the cache, falling back to a provider and caching what it downloads.
type Manager struct {
	Provider Provider
	Cache    *Cache
}

// NewManager returns a manager reading through cache to provider.
func NewManager(provider Provider, cache *Cache) *Manager {
	return &Manager{Provider: provider, Cache: cache}
}

// CleanTickers trims and upper-cases tickers, dropping empty ones.
func CleanTickers(tickers []string) []string {
	cleaned := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}

// validBars keeps the bars that carry every required price.
func validBars(bars []*models.Bar) []*models.Bar {
	valid := make([]*models.Bar, 0, len(bars))
	for _, b := range bars {
		if b.Valid() {
			valid = append(valid, b)
		}
	}
	return valid
}

// GetStockData returns the bars of every ticker that could be loaded. Tickers are fetched
// one after the other; a ticker that can be neither loaded nor downloaded is logged and
// skipped.
func (m *Manager) GetStockData(ctx context.Context, tickers []string, start, end time.Time) map[string][]*models.Bar {
	data := make(map[string][]*models.Bar)
	for _, ticker := range CleanTickers(tickers) {
		if ctx.Err() != nil {
			logger.Errorf("Stopped fetching before %s: %v", ticker, ctx.Err())
			break
		}
		bars, err := m.getTickerData(ctx, ticker, start, end)
		if err != nil {
			logger.Warnf("Warning: skipping %s: %v", ticker, err)
			continue
		}
		data[ticker] = bars
	}
	return data
}

func (m *Manager) getTickerData(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error) {
	var bars []*models.Bar
	cached := m.Cache.Exists(ticker)
	if cached {
		var err error
		if bars, err = m.Cache.Load(ticker); err != nil {
			logger.Warnf("Warning: Couldn't load cached data for %s: %v", ticker, err)
			bars = nil
		} else {
			logger.Debugf("Loaded %d cached bars for %s", len(bars), ticker)
		}
	}

	if bars == nil {
		var err error
		if bars, err = m.Provider.Bars(ctx, ticker, start, end); err != nil {
			return nil, err
		}
		logger.Infof("Downloaded %d bars for %s", len(bars), ticker)
	}

	clean := validBars(bars)
	if len(clean) == 0 {
		return nil, ErrInvalidData
	}
	if dropped := len(bars) - len(clean); dropped > 0 {
		logger.Warnf("Warning: dropped %d bars of %s missing open, high, low or close", dropped, ticker)
	}

	if !cached {
		if err := m.Cache.Store(ticker, clean); err != nil && !errors.Is(err, os.ErrExist) {
			logger.Errorf("Couldn't cache %s: %v", ticker, err)
		}
	}
	return clean, nil
}
