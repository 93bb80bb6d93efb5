// Package num provides the scalar-or-vector value every pricing function operates on.
//
// An Array is either a single float64 or a one-dimensional vector. Binary and n-ary
// operations broadcast scalars (and length-1 vectors) against vectors; vectors of
// different lengths are incompatible.
package num

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Array is an immutable scalar or vector of float64 values.
type Array struct {
	data   []float64
	scalar bool
}

// Scalar returns a scalar Array.
func Scalar(v float64) Array {
	return Array{data: []float64{v}, scalar: true}
}

// Vector returns a vector Array holding a copy of vs.
func Vector(vs ...float64) Array {
	data := make([]float64, len(vs))
	copy(data, vs)
	return Array{data: data}
}

// Full returns a vector of length n filled with v.
func Full(n int, v float64) Array {
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}
	return Array{data: data}
}

// wrap takes ownership of data without copying.
func wrap(data []float64, scalar bool) Array {
	return Array{data: data, scalar: scalar}
}

// IsScalar reports whether a is a scalar. The zero Array is an empty vector.
func (a Array) IsScalar() bool {
	return a.scalar
}

// Len returns the number of elements; 1 for a scalar.
func (a Array) Len() int {
	return len(a.data)
}

// At returns element i, broadcasting scalars and length-1 vectors to any index.
func (a Array) At(i int) float64 {
	if len(a.data) == 1 {
		return a.data[0]
	}
	return a.data[i]
}

// Float returns the first element. It panics on an empty vector.
func (a Array) Float() float64 {
	return a.data[0]
}

// Values returns a copy of the underlying elements.
func (a Array) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Filter returns the elements for which keep is true, in order.
func (a Array) Filter(keep func(float64) bool) []float64 {
	var out []float64
	for _, v := range a.data {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Equal reports whether a and b have the same shape and identical elements.
func (a Array) Equal(b Array) bool {
	return a.scalar == b.scalar && floats.Equal(a.data, b.data)
}

// EqualApprox reports whether a and b have the same shape and every pair of elements
// agrees within tol, absolute or relative.
func (a Array) EqualApprox(b Array, tol float64) bool {
	return a.scalar == b.scalar && floats.EqualApprox(a.data, b.data, tol)
}

func (a Array) String() string {
	if a.scalar {
		return strconv.FormatFloat(a.data[0], 'g', -1, 64)
	}
	parts := make([]string, len(a.data))
	for i, v := range a.data {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
