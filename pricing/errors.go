package pricing

import (
	"errors"
	"fmt"

	"github.com/tantralabs/bspx/num"
)

// ErrInvalidInput matches every *InvalidInputError with errors.Is.
var ErrInvalidInput = errors.New("invalid black-scholes input")

// InvalidInputError reports a market parameter with at least one non-positive element.
type InvalidInputError struct {
	Param     string    // Short name: S, K, T or vol
	Name      string    // Human readable name
	Got       num.Array // The full value that was passed in
	Offending []float64 // The elements that violate the bound, in order
}

func (e *InvalidInputError) Error() string {
	if e.Got.IsScalar() {
		return fmt.Sprintf("%s '%s' must be positive, got: %v", e.Name, e.Param, e.Got)
	}
	return fmt.Sprintf("%s '%s' must be positive, got: %v (offending values: %v)", e.Name, e.Param, e.Got, e.Offending)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func nonPositive(v float64) bool {
	return v <= 0
}

func checkPositive(param, name string, a num.Array) error {
	offending := a.Filter(nonPositive)
	if len(offending) == 0 {
		return nil
	}
	return &InvalidInputError{
		Param:     param,
		Name:      name,
		Got:       a,
		Offending: offending,
	}
}

func validateInputs(S, K, T, vol num.Array) error {
	if err := checkPositive("S", "Asset price", S); err != nil {
		return err
	}
	if err := checkPositive("K", "Strike price", K); err != nil {
		return err
	}
	if err := checkPositive("T", "Time to maturity", T); err != nil {
		return err
	}
	return checkPositive("vol", "Volatility", vol)
}
