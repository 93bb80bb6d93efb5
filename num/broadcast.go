package num

import (
	"fmt"
	"strings"
)

// ShapeError reports operands that cannot be broadcast to a common shape.
type ShapeError struct {
	Lens []int
}

func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Lens))
	for i, n := range e.Lens {
		parts[i] = fmt.Sprintf("(%d,)", n)
	}
	return "operands could not be broadcast together with shapes " + strings.Join(parts, " ")
}

// Broadcast returns the common length of arrays and whether the result is a scalar.
// Scalars and length-1 vectors stretch to any length.
func Broadcast(arrays ...Array) (n int, scalar bool, err error) {
	n, scalar = 1, true
	for _, a := range arrays {
		if a.scalar {
			continue
		}
		scalar = false
		switch {
		case len(a.data) == 1:
		case n == 1:
			n = len(a.data)
		case len(a.data) != n:
			lens := make([]int, len(arrays))
			for i, b := range arrays {
				lens[i] = len(b.data)
			}
			return 0, false, &ShapeError{Lens: lens}
		}
	}
	return n, scalar, nil
}

// Map applies f to every element of a.
func Map(a Array, f func(float64) float64) Array {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return wrap(out, a.scalar)
}

// Zip applies f elementwise to the broadcast of a and b.
func Zip(a, b Array, f func(x, y float64) float64) (Array, error) {
	n, scalar, err := Broadcast(a, b)
	if err != nil {
		return Array{}, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(a.At(i), b.At(i))
	}
	return wrap(out, scalar), nil
}

// MapN applies f elementwise to the broadcast of arrays. The slice passed to f is
// reused between calls and holds one element from each array, in argument order.
func MapN(f func(xs []float64) float64, arrays ...Array) (Array, error) {
	n, scalar, err := Broadcast(arrays...)
	if err != nil {
		return Array{}, err
	}
	return Generate(n, scalar, func(i int, xs []float64) float64 {
		return f(xs)
	}, arrays...), nil
}

// Generate builds an Array of length n by calling f for every index with the i-th
// element of each array. Callers must have checked the shapes with Broadcast.
func Generate(n int, scalar bool, f func(i int, xs []float64) float64, arrays ...Array) Array {
	out := make([]float64, n)
	xs := make([]float64, len(arrays))
	for i := range out {
		for j, a := range arrays {
			xs[j] = a.At(i)
		}
		out[i] = f(i, xs)
	}
	return wrap(out, scalar)
}
