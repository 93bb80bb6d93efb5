package pricing

import (
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
)

// PricingFunc prices an option from raw market parameters. Any model with this signature
// can be handed to the finite difference Greeks.
type PricingFunc func(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error)

// c = S * N(d1) - K * e^(-rT) * N(d2)
func callPrice(p Point) float64 {
	return p.S*p.CdfD1 - p.K*p.Discount*p.CdfD2
}

// p = K * e^(-rT) * N(-d2) - S * N(-d1)
func putPrice(p Point) float64 {
	return p.K*p.Discount*p.CdfND2 - p.S*p.CdfND1
}

// CallPrice returns the Black-Scholes price of a European call.
func CallPrice(s State) num.Array {
	return s.Map(callPrice)
}

// PutPrice returns the Black-Scholes price of a European put.
func PutPrice(s State) num.Array {
	return s.Map(putPrice)
}

// Price dispatches to CallPrice or PutPrice. It panics with
// models.UndefinedOptionTypeError for any other option type.
func Price(s State, optionType models.OptionType) num.Array {
	switch optionType {
	case models.Call:
		return CallPrice(s)
	case models.Put:
		return PutPrice(s)
	}
	panic(models.UndefinedOptionTypeError{Value: optionType})
}

// Prices returns both sides.
func Prices(s State) models.OptionPrice {
	return models.OptionPrice{
		Call: CallPrice(s),
		Put:  PutPrice(s),
	}
}

// BlackScholes builds a state from raw inputs and prices one side. It is the PricingFunc
// of this package.
func BlackScholes(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	if err := optionType.Validate(); err != nil {
		return num.Array{}, err
	}
	state, err := Build(S, K, T, r, vol)
	if err != nil {
		return num.Array{}, err
	}
	return Price(state, optionType), nil
}

var _ PricingFunc = BlackScholes
