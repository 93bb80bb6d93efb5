package num

import (
	"errors"
	"testing"
)

func TestBroadcast(t *testing.T) {
	cases := []struct {
		name   string
		arrays []Array
		n      int
		scalar bool
		fail   bool
	}{
		{"scalars", []Array{Scalar(1), Scalar(2)}, 1, true, false},
		{"scalar and vector", []Array{Scalar(1), Vector(1, 2, 3)}, 3, false, false},
		{"equal vectors", []Array{Vector(1, 2), Vector(3, 4)}, 2, false, false},
		{"length one vector stretches", []Array{Vector(1), Vector(3, 4, 5)}, 3, false, false},
		{"length one vector keeps vector shape", []Array{Vector(1), Scalar(2)}, 1, false, false},
		{"mismatched vectors", []Array{Vector(1, 2), Vector(1, 2, 3)}, 0, false, true},
		{"empty against non-empty", []Array{Vector(), Vector(1, 2)}, 0, false, true},
		{"empty against scalar", []Array{Vector(), Scalar(1)}, 0, false, false},
	}
	for _, c := range cases {
		n, scalar, err := Broadcast(c.arrays...)
		if c.fail {
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Errorf("%s: expected ShapeError, got %v", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if n != c.n || scalar != c.scalar {
			t.Errorf("%s: got (%d, %v), expected (%d, %v)", c.name, n, scalar, c.n, c.scalar)
		}
	}
}

func TestZipBroadcastsScalar(t *testing.T) {
	got, err := Zip(Vector(1, 2, 3), Scalar(10), func(x, y float64) float64 { return x * y })
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Vector(10, 20, 30)) {
		t.Errorf("got %v", got)
	}

	got, err = Zip(Scalar(2), Scalar(3), func(x, y float64) float64 { return x + y })
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsScalar() || got.Float() != 5 {
		t.Errorf("expected scalar 5, got %v", got)
	}
}

func TestMapNIsElementwise(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(4, 5, 6)
	c := Scalar(0.5)
	got, err := MapN(func(xs []float64) float64 { return (xs[0] + xs[1]) * xs[2] }, a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		want := (a.At(i) + b.At(i)) * 0.5
		if got.At(i) != want {
			t.Errorf("element %d: got %v, expected %v", i, got.At(i), want)
		}
	}
}

func TestArrayIsImmutable(t *testing.T) {
	src := []float64{1, 2, 3}
	a := Vector(src...)
	src[0] = 100
	if a.At(0) != 1 {
		t.Errorf("Vector aliases its input")
	}
	vals := a.Values()
	vals[1] = 100
	if a.At(1) != 2 {
		t.Errorf("Values aliases the array")
	}
}

func TestFilter(t *testing.T) {
	a := Vector(3, -1, 0, 2)
	bad := a.Filter(func(v float64) bool { return v <= 0 })
	if len(bad) != 2 || bad[0] != -1 || bad[1] != 0 {
		t.Errorf("Filter = %v", bad)
	}
	if got := Vector().Filter(func(float64) bool { return true }); len(got) != 0 {
		t.Errorf("Filter of empty vector = %v", got)
	}
}

func TestString(t *testing.T) {
	if s := Scalar(1.5).String(); s != "1.5" {
		t.Errorf("got %q", s)
	}
	if s := Vector(1, 2.5).String(); s != "[1 2.5]" {
		t.Errorf("got %q", s)
	}
}
