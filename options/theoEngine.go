// Package options lays out strike and expiry grids and prices them as option chains.
package options

import (
	"fmt"
	"math"
	"time"

	"github.com/tantralabs/bspx/greeks"
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
	"github.com/tantralabs/bspx/pricing"
	"github.com/tantralabs/bspx/utils"
)

// Number of expiries and strikes listed by default
const NumWeekly = 2
const NumMonthly = 3
const NumStrikes = 10

// StrikeInterval returns a strike spacing of roughly 2.5% of spot, rounded to 1, 2.5 or 5
// times a power of ten.
func StrikeInterval(spot float64) float64 {
	if spot <= 0 {
		return 1
	}
	raw := spot * 0.025
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, step := range []float64{1, 2.5, 5} {
		if raw <= step*magnitude {
			return step * magnitude
		}
	}
	return 10 * magnitude
}

// Ladder returns numStrikes+1 strikes spaced interval apart around spot rounded to the
// interval. Strikes that would not be positive are dropped.
func Ladder(spot float64, interval float64, numStrikes int) []float64 {
	midStrike := utils.RoundToNearest(spot, interval)
	minStrike := midStrike - (interval * math.Floor(float64(numStrikes)/2))
	maxStrike := midStrike + (interval * math.Ceil(float64(numStrikes)/2))
	var strikes []float64
	for _, strike := range utils.Arange(minStrike, maxStrike, interval) {
		if strike > 0 {
			strikes = append(strikes, strike)
		}
	}
	return strikes
}

// Expiries returns the next numWeekly Fridays followed by the last Friday of each of the
// next numMonthly months, sorted and without duplicates. Expiries are UTC midnights
// whatever the location of currentTime.
func Expiries(currentTime time.Time, numWeekly, numMonthly int) []time.Time {
	currentTime = currentTime.UTC()
	var expiries []time.Time
	seen := make(map[models.Date]bool)
	add := func(t time.Time) {
		day := models.NewDate(t)
		if !seen[day] && t.After(currentTime) {
			seen[day] = true
			expiries = append(expiries, day.Time)
		}
	}

	nextFriday := utils.GetNextFriday(currentTime)
	for i := 0; i < numWeekly; i++ {
		add(nextFriday)
		nextFriday = nextFriday.AddDate(0, 0, 7)
	}
	year, month, _ := currentTime.Date()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i, added := 0, 0; added < numMonthly; i++ {
		monthly := utils.GetLastFridayOfMonth(firstOfMonth.AddDate(0, i, 0))
		if monthly.After(currentTime) {
			add(monthly)
			added++
		}
	}

	// weeklies may land after the first monthly
	for i := 1; i < len(expiries); i++ {
		for j := i; j > 0 && expiries[j].Before(expiries[j-1]); j-- {
			expiries[j], expiries[j-1] = expiries[j-1], expiries[j]
		}
	}
	return expiries
}

// Chain prices European options on one underlying.
type Chain struct {
	Symbol     string
	Spot       float64
	Rate       float64
	Volatility float64
	Now        time.Time
	Convention greeks.Convention
}

// TimeToExpiry returns the life of an option expiring at expiry in calendar years, never
// less than one day.
func (c Chain) TimeToExpiry(expiry time.Time) float64 {
	return utils.YearFraction(c.Now, expiry, c.Convention.CalendarDaysPerYear)
}

// Price prices a call and a put at every strike for one expiry. All strikes go through a
// single vectorized state. Rows are ordered by strike, call before put.
func (c Chain) Price(strikes []float64, expiry time.Time, dc models.DayCount) ([]models.ChainRow, error) {
	if len(strikes) == 0 {
		return nil, nil
	}
	if err := c.Convention.Validate(); err != nil {
		return nil, err
	}
	T := c.TimeToExpiry(expiry)
	state, err := pricing.Build(num.Scalar(c.Spot), num.Vector(strikes...), num.Scalar(T), num.Scalar(c.Rate), num.Scalar(c.Volatility))
	if err != nil {
		return nil, fmt.Errorf("pricing %s chain expiring %s: %w", c.Symbol, models.NewDate(expiry), err)
	}

	analytical := greeks.NewAnalytical(c.Convention)
	prices := pricing.Prices(state)
	sides := []struct {
		optionType models.OptionType
		price      num.Array
		greeks     models.Greeks
	}{
		{models.Call, prices.Call, analytical.Calculate(state, models.Call, dc)},
		{models.Put, prices.Put, analytical.Calculate(state, models.Put, dc)},
	}

	rows := make([]models.ChainRow, 0, 2*len(strikes))
	for i, strike := range strikes {
		for _, side := range sides {
			rows = append(rows, models.ChainRow{
				Symbol:       utils.GetOptionSymbol(c.Symbol, expiry, strike, side.optionType),
				Expiry:       models.NewDate(expiry),
				OptionType:   side.optionType.String(),
				Strike:       strike,
				Spot:         c.Spot,
				TimeToExpiry: T,
				Volatility:   c.Volatility,
				Rate:         c.Rate,
				Price:        side.price.At(i),
				Delta:        side.greeks.Delta.At(i),
				Theta:        side.greeks.Theta.At(i),
				Gamma:        side.greeks.Gamma.At(i),
				Vega:         side.greeks.Vega.At(i),
				Rho:          side.greeks.Rho.At(i),
			})
		}
	}
	return rows, nil
}

// BuildAvailableOptions prices the default ladder around spot for every default expiry.
func (c Chain) BuildAvailableOptions(dc models.DayCount) ([]models.ChainRow, error) {
	strikes := Ladder(c.Spot, StrikeInterval(c.Spot), NumStrikes)
	var rows []models.ChainRow
	for _, expiry := range Expiries(c.Now, NumWeekly, NumMonthly) {
		priced, err := c.Price(strikes, expiry, dc)
		if err != nil {
			return nil, err
		}
		rows = append(rows, priced...)
	}
	return rows, nil
}
