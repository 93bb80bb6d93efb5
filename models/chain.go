package models

// ChainRow is the price and Greeks of one contract in an option chain.
type ChainRow struct {
	Symbol       string  `csv:"symbol" structs:"-"`
	Expiry       Date    `csv:"expiry" structs:"-"`
	OptionType   string  `csv:"type" structs:"-"`
	Strike       float64 `csv:"strike" structs:"strike"`
	Spot         float64 `csv:"spot" structs:"spot"`
	TimeToExpiry float64 `csv:"time_to_expiry" structs:"time_to_expiry"`
	Volatility   float64 `csv:"volatility" structs:"volatility"`
	Rate         float64 `csv:"rate" structs:"rate"`
	Price        float64 `csv:"price" structs:"price"`
	Delta        float64 `csv:"delta" structs:"delta"`
	Theta        float64 `csv:"theta" structs:"theta"`
	Gamma        float64 `csv:"gamma" structs:"gamma"`
	Vega         float64 `csv:"vega" structs:"vega"`
	Rho          float64 `csv:"rho" structs:"rho"`
}
