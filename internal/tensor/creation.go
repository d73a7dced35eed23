package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	t, err := New(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Uses math/rand, which is appropriate for numerical experiments.
func Rand(shape Shape) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = rand.Float64() //nolint:gosec // G404: not used for security
	}
	return t
}

// Arange creates a 1D tensor with values start, start+1, ..., end-1.
func Arange(start, end int) *Dense {
	if end <= start {
		panic("arange: end must be greater than start")
	}
	t := Zeros(Shape{end - start})
	for i := range t.data {
		t.data[i] = float64(start + i)
	}
	return t
}

// Eye creates an n-by-n identity matrix.
func Eye(n int) *Dense {
	t := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}

// Diag creates a square matrix with the given values on the diagonal.
func Diag(diag []float64) *Dense {
	n := len(diag)
	t := Zeros(Shape{n, n})
	for i, v := range diag {
		t.Set(v, i, i)
	}
	return t
}
