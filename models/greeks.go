package models

import "github.com/tantralabs/bspx/num"

// OptionPrice holds call and put prices with the shape of the state they came from.
type OptionPrice struct {
	Call num.Array
	Put  num.Array
}

func (p OptionPrice) String() string {
	return "OptionPrice(call=" + p.Call.String() + ", put=" + p.Put.String() + ")"
}

// Greeks bundles the five first-order sensitivities of one option side.
type Greeks struct {
	Delta num.Array // Change in price wrt. 1 unit change in spot
	Theta num.Array // Change in price per day of decay
	Gamma num.Array // Change in delta wrt. 1 unit change in spot
	Vega  num.Array // Change in price wrt. volatility, in the unit of the convention used
	Rho   num.Array // Change in price wrt. the risk free rate, in the unit of the convention used
}
