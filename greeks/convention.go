// Package greeks computes Black-Scholes sensitivities in closed form from a pricing.State,
// and by central finite differences over any pricing.PricingFunc.
package greeks

import (
	"fmt"

	"github.com/tantralabs/bspx/models"
)

// Convention fixes the units theta, vega and rho are quoted in. Sources disagree on
// whether a calendar year has 365 or 365.25 days and on whether vega and rho are per unit
// or per percentage point move, so every calculator carries one explicitly.
type Convention struct {
	TradingDaysPerYear  float64
	CalendarDaysPerYear float64

	// PercentPoint quotes vega and rho per 1 percentage point move (divided by 100)
	// instead of per unit move.
	PercentPoint bool
}

var (
	// UnitConvention quotes vega and rho per unit move, as in Hull's worked examples.
	UnitConvention = Convention{
		TradingDaysPerYear:  models.TradingDaysPerYear,
		CalendarDaysPerYear: models.CalendarDaysPerYear,
	}

	// PercentPointConvention quotes vega and rho per 1 percentage point move.
	PercentPointConvention = Convention{
		TradingDaysPerYear:  models.TradingDaysPerYear,
		CalendarDaysPerYear: models.CalendarDaysPerYear,
		PercentPoint:        true,
	}

	// ActualCalendarConvention counts 365.25 calendar days a year.
	ActualCalendarConvention = Convention{
		TradingDaysPerYear:  models.TradingDaysPerYear,
		CalendarDaysPerYear: 365.25,
		PercentPoint:        true,
	}
)

// DaysPerYear returns the theta divisor for a day count.
func (c Convention) DaysPerYear(dc models.DayCount) float64 {
	switch dc {
	case models.Trading:
		return c.TradingDaysPerYear
	case models.Calendar:
		return c.CalendarDaysPerYear
	}
	panic(fmt.Sprintf("undefined day count %d", int(dc)))
}

// MoveScale is the divisor applied to vega and rho: 100 per percentage point, else 1.
func (c Convention) MoveScale() float64 {
	if c.PercentPoint {
		return 100
	}
	return 1
}

// Validate rejects non-positive day counts.
func (c Convention) Validate() error {
	if c.TradingDaysPerYear <= 0 || c.CalendarDaysPerYear <= 0 {
		return fmt.Errorf("invalid convention %+v: days per year must be positive", c)
	}
	return nil
}
