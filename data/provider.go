// Package data fetches daily bars from market data providers and caches them on disk.
package data

import (
	"context"
	"errors"
	"time"

	"github.com/tantralabs/bspx/models"
)

// ErrNoData is returned by providers that have no bars for a ticker in the requested range.
var ErrNoData = errors.New("no data")

// ErrInvalidData is returned when none of the bars of a ticker has every required price.
var ErrInvalidData = errors.New("invalid data structure: no bar has open, high, low and close prices")

// Provider supplies daily bars for a ticker between start and end, ordered by date.
type Provider interface {
	Bars(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error)
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error)

func (f ProviderFunc) Bars(ctx context.Context, ticker string, start, end time.Time) ([]*models.Bar, error) {
	return f(ctx, ticker, start, end)
}
