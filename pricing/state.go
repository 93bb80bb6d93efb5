// Package pricing builds the Black-Scholes state and prices European calls and puts from it.
package pricing

import (
	"math"

	"github.com/chobie/go-gaussian"
	"github.com/tantralabs/bspx/num"
)

var norm = gaussian.NewGaussian(0, 1)

// Point is the Black-Scholes state of a single element.
type Point struct {
	S   float64 // Asset price
	K   float64 // Strike price
	T   float64 // Time to expiration (in years)
	R   float64 // Risk free rate (annualized)
	Vol float64 // Volatility (annualized)

	D1     float64
	D2     float64
	CdfD1  float64 // N(d1), call delta
	CdfD2  float64 // N(d2), risk neutral probability of finishing in the money
	CdfND1 float64 // N(-d1), put delta magnitude
	CdfND2 float64 // N(-d2)
	PdfD1  float64 // n(d1), standard normal density at d1

	SqrtT    float64 // sqrt(T)
	Discount float64 // exp(-rT)
	VolSqrtT float64 // vol * sqrt(T), total volatility
}

// Requires S, K, T and vol > 0.
func newPoint(S, K, T, r, vol float64) Point {
	sqrtT := math.Sqrt(T)
	volSqrtT := vol * sqrtT

	d1 := (math.Log(S/K) + (r+0.5*vol*vol)*T) / volSqrtT
	d2 := d1 - volSqrtT

	return Point{
		S:        S,
		K:        K,
		T:        T,
		R:        r,
		Vol:      vol,
		D1:       d1,
		D2:       d2,
		CdfD1:    norm.Cdf(d1),
		CdfD2:    norm.Cdf(d2),
		CdfND1:   norm.Cdf(-d1),
		CdfND2:   norm.Cdf(-d2),
		PdfD1:    norm.Pdf(d1),
		SqrtT:    sqrtT,
		Discount: math.Exp(-r * T),
		VolSqrtT: volSqrtT,
	}
}

// State holds validated Black-Scholes inputs and every intermediate quantity the price and
// Greek formulas read. All fields share the broadcast shape of the inputs. A State is
// never modified after Build; build a new one when an input changes.
type State struct {
	points []Point
	scalar bool
}

// Build validates the five market parameters and derives d1, d2, their normal CDF and PDF
// values, the discount factor and the time scaled volatility.
//
// S, K, T and vol must be strictly positive in every element, otherwise Build returns an
// *InvalidInputError naming the first offending parameter. r is unconstrained. Inputs
// must broadcast to a common shape, otherwise Build returns a *num.ShapeError.
func Build(S, K, T, r, vol num.Array) (State, error) {
	if err := validateInputs(S, K, T, vol); err != nil {
		return State{}, err
	}
	n, scalar, err := num.Broadcast(S, K, T, r, vol)
	if err != nil {
		return State{}, err
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = newPoint(S.At(i), K.At(i), T.At(i), r.At(i), vol.At(i))
	}
	return State{points: points, scalar: scalar}, nil
}

// BuildScalar is Build for a single set of market parameters.
func BuildScalar(S, K, T, r, vol float64) (State, error) {
	return Build(num.Scalar(S), num.Scalar(K), num.Scalar(T), num.Scalar(r), num.Scalar(vol))
}

// Len returns the number of elements in the state.
func (s State) Len() int {
	return len(s.points)
}

// IsScalar reports whether every input was a scalar.
func (s State) IsScalar() bool {
	return s.scalar
}

// At returns a copy of element i.
func (s State) At(i int) Point {
	return s.points[i]
}

// Map evaluates f on every element and returns the results in the state's shape.
func (s State) Map(f func(p Point) float64) num.Array {
	return num.Generate(len(s.points), s.scalar, func(i int, _ []float64) float64 {
		return f(s.points[i])
	})
}

// S returns the spot prices.
func (s State) S() num.Array { return s.Map(func(p Point) float64 { return p.S }) }

// K returns the strikes.
func (s State) K() num.Array { return s.Map(func(p Point) float64 { return p.K }) }

// T returns the times to expiry in years.
func (s State) T() num.Array { return s.Map(func(p Point) float64 { return p.T }) }

// R returns the continuously compounded risk free rates.
func (s State) R() num.Array { return s.Map(func(p Point) float64 { return p.R }) }

// Vol returns the annualized volatilities.
func (s State) Vol() num.Array { return s.Map(func(p Point) float64 { return p.Vol }) }

// D1 returns d1.
func (s State) D1() num.Array { return s.Map(func(p Point) float64 { return p.D1 }) }

// D2 returns d2 = d1 - vol*sqrt(T).
func (s State) D2() num.Array { return s.Map(func(p Point) float64 { return p.D2 }) }

// CdfD1 returns N(d1).
func (s State) CdfD1() num.Array { return s.Map(func(p Point) float64 { return p.CdfD1 }) }

// CdfD2 returns N(d2).
func (s State) CdfD2() num.Array { return s.Map(func(p Point) float64 { return p.CdfD2 }) }

// CdfND1 returns N(-d1).
func (s State) CdfND1() num.Array { return s.Map(func(p Point) float64 { return p.CdfND1 }) }

// CdfND2 returns N(-d2).
func (s State) CdfND2() num.Array { return s.Map(func(p Point) float64 { return p.CdfND2 }) }

// PdfD1 returns the standard normal density at d1.
func (s State) PdfD1() num.Array { return s.Map(func(p Point) float64 { return p.PdfD1 }) }

// SqrtT returns sqrt(T).
func (s State) SqrtT() num.Array { return s.Map(func(p Point) float64 { return p.SqrtT }) }

// Discount returns exp(-r*T).
func (s State) Discount() num.Array { return s.Map(func(p Point) float64 { return p.Discount }) }

// VolSqrtT returns vol*sqrt(T).
func (s State) VolSqrtT() num.Array { return s.Map(func(p Point) float64 { return p.VolSqrtT }) }
