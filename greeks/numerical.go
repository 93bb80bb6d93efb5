package greeks

import (
	"math"

	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
	"github.com/tantralabs/bspx/pricing"
)

// Bump is the relative step of every central difference.
const Bump = 1e-4

// Minimum magnitude of r the rho bump is taken relative to.
const minRateBump = 0.01

// Numerical approximates Greeks by re-pricing bumped inputs with Price. Errors returned by
// Price are passed through as is.
type Numerical struct {
	Price      pricing.PricingFunc
	Convention Convention
}

// NewNumerical returns finite difference Greeks over price quoted in convention c.
func NewNumerical(price pricing.PricingFunc, c Convention) Numerical {
	return Numerical{Price: price, Convention: c}
}

func relativeStep(x num.Array) num.Array {
	return num.Map(x, func(v float64) float64 { return Bump * math.Abs(v) })
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }

// bumped returns x+h and x-h.
func bumped(x, h num.Array) (up, down num.Array, err error) {
	if up, err = num.Zip(x, h, add); err != nil {
		return
	}
	down, err = num.Zip(x, h, sub)
	return
}

// central returns (up - down) / (2h * divisor).
func central(up, down, h num.Array, divisor float64) (num.Array, error) {
	return num.MapN(func(xs []float64) float64 {
		return (xs[0] - xs[1]) / (2 * xs[2] * divisor)
	}, up, down, h)
}

// Delta is (P(S+h) - P(S-h)) / 2h.
func (n Numerical) Delta(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	h := relativeStep(S)
	sUp, sDown, err := bumped(S, h)
	if err != nil {
		return num.Array{}, err
	}
	up, err := n.Price(sUp, K, T, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	down, err := n.Price(sDown, K, T, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	return central(up, down, h, 1)
}

// Theta is -(P(T+h) - P(T-h)) / 2h per calendar day.
func (n Numerical) Theta(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	h := relativeStep(T)
	tUp, tDown, err := bumped(T, h)
	if err != nil {
		return num.Array{}, err
	}
	up, err := n.Price(S, K, tUp, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	down, err := n.Price(S, K, tDown, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	return central(up, down, h, -n.Convention.CalendarDaysPerYear)
}

// Gamma is (P(S+h) + P(S-h) - 2P(S)) / h^2.
func (n Numerical) Gamma(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	h := relativeStep(S)
	sUp, sDown, err := bumped(S, h)
	if err != nil {
		return num.Array{}, err
	}
	up, err := n.Price(sUp, K, T, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	down, err := n.Price(sDown, K, T, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	mid, err := n.Price(S, K, T, r, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	return num.MapN(func(xs []float64) float64 {
		return (xs[0] + xs[1] - 2*xs[2]) / (xs[3] * xs[3])
	}, up, down, mid, h)
}

// Vega is (P(vol+h) - P(vol-h)) / 2h, divided by 100 under a percentage point convention.
func (n Numerical) Vega(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	h := relativeStep(vol)
	volUp, volDown, err := bumped(vol, h)
	if err != nil {
		return num.Array{}, err
	}
	up, err := n.Price(S, K, T, r, volUp, optionType)
	if err != nil {
		return num.Array{}, err
	}
	down, err := n.Price(S, K, T, r, volDown, optionType)
	if err != nil {
		return num.Array{}, err
	}
	return central(up, down, h, n.Convention.MoveScale())
}

// Rho is (P(r+h) - P(r-h)) / 2h with h = max(|r|, 0.01) * Bump, divided by 100 under a
// percentage point convention.
func (n Numerical) Rho(S, K, T, r, vol num.Array, optionType models.OptionType) (num.Array, error) {
	h := num.Map(r, func(v float64) float64 { return math.Max(math.Abs(v), minRateBump) * Bump })
	rUp, rDown, err := bumped(r, h)
	if err != nil {
		return num.Array{}, err
	}
	up, err := n.Price(S, K, T, rUp, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	down, err := n.Price(S, K, T, rDown, vol, optionType)
	if err != nil {
		return num.Array{}, err
	}
	return central(up, down, h, n.Convention.MoveScale())
}

// Calculate bundles all five Greeks, stopping at the first error.
func (n Numerical) Calculate(S, K, T, r, vol num.Array, optionType models.OptionType) (models.Greeks, error) {
	var g models.Greeks
	var err error
	if g.Delta, err = n.Delta(S, K, T, r, vol, optionType); err != nil {
		return models.Greeks{}, err
	}
	if g.Theta, err = n.Theta(S, K, T, r, vol, optionType); err != nil {
		return models.Greeks{}, err
	}
	if g.Gamma, err = n.Gamma(S, K, T, r, vol, optionType); err != nil {
		return models.Greeks{}, err
	}
	if g.Vega, err = n.Vega(S, K, T, r, vol, optionType); err != nil {
		return models.Greeks{}, err
	}
	if g.Rho, err = n.Rho(S, K, T, r, vol, optionType); err != nil {
		return models.Greeks{}, err
	}
	return g, nil
}
