package greeks

import (
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
	"github.com/tantralabs/bspx/pricing"
)

// Delta is N(d1) for a call and N(d1) - 1 for a put.
func Delta(s pricing.State, optionType models.OptionType) num.Array {
	switch optionType {
	case models.Call:
		return s.Map(func(p pricing.Point) float64 { return p.CdfD1 })
	case models.Put:
		return s.Map(func(p pricing.Point) float64 { return p.CdfD1 - 1 })
	}
	panic(models.UndefinedOptionTypeError{Value: optionType})
}

// Gamma is the same for calls and puts.
func Gamma(s pricing.State) num.Array {
	return s.Map(func(p pricing.Point) float64 {
		return p.PdfD1 / (p.S * p.VolSqrtT)
	})
}

// Analytical computes the convention dependent Greeks from a pre-built state.
type Analytical struct {
	Convention Convention
}

// NewAnalytical returns closed form Greeks quoted in convention c.
func NewAnalytical(c Convention) Analytical {
	return Analytical{Convention: c}
}

// Theta is the price decay per day, where a year has the number of days dc selects.
func (a Analytical) Theta(s pricing.State, optionType models.OptionType, dc models.DayCount) num.Array {
	days := a.Convention.DaysPerYear(dc)
	decay := func(p pricing.Point) float64 {
		return -p.S * p.PdfD1 * p.Vol / (2 * p.SqrtT)
	}

	switch optionType {
	case models.Call:
		return s.Map(func(p pricing.Point) float64 {
			return (decay(p) - p.R*p.K*p.Discount*p.CdfD2) / days
		})
	case models.Put:
		return s.Map(func(p pricing.Point) float64 {
			return (decay(p) + p.R*p.K*p.Discount*p.CdfND2) / days
		})
	}
	panic(models.UndefinedOptionTypeError{Value: optionType})
}

// Vega is the same for calls and puts.
func (a Analytical) Vega(s pricing.State) num.Array {
	scale := a.Convention.MoveScale()
	return s.Map(func(p pricing.Point) float64 {
		return p.S * p.SqrtT * p.PdfD1 / scale
	})
}

// Rho is K T e^(-rT) N(d2) for a call and -K T e^(-rT) N(-d2) for a put.
func (a Analytical) Rho(s pricing.State, optionType models.OptionType) num.Array {
	scale := a.Convention.MoveScale()

	switch optionType {
	case models.Call:
		return s.Map(func(p pricing.Point) float64 {
			return p.K * p.T * p.Discount * p.CdfD2 / scale
		})
	case models.Put:
		return s.Map(func(p pricing.Point) float64 {
			return -p.K * p.T * p.Discount * p.CdfND2 / scale
		})
	}
	panic(models.UndefinedOptionTypeError{Value: optionType})
}

// Calculate bundles all five Greeks.
func (a Analytical) Calculate(s pricing.State, optionType models.OptionType, dc models.DayCount) models.Greeks {
	optionType.MustValidate()
	return models.Greeks{
		Delta: Delta(s, optionType),
		Theta: a.Theta(s, optionType, dc),
		Gamma: Gamma(s),
		Vega:  a.Vega(s),
		Rho:   a.Rho(s, optionType),
	}
}
