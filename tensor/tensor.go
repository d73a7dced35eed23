// Copyright 2025 The TenNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tennet-ml/tennet/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} describes a 3D tensor with dimensions 2×3×4;
// an empty Shape describes a scalar.
type Shape = tensor.Shape

// Dense is an N-dimensional dense array of float64 values.
type Dense = tensor.Dense

// Backend is the compute interface consumed by the contraction engines.
type Backend = tensor.Backend

// SVDResult holds the thin singular value decomposition A = U * diag(Sigma) * VT.
type SVDResult = tensor.SVDResult

// Creation functions

// New creates a zero-initialized Dense with the given shape.
func New(shape Shape) (*Dense, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand(shape Shape) *Dense {
	return tensor.Rand(shape)
}

// Arange creates a 1D tensor with values start, start+1, ..., end-1.
func Arange(start, end int) *Dense {
	return tensor.Arange(start, end)
}

// Eye creates an n-by-n identity matrix.
func Eye(n int) *Dense {
	return tensor.Eye(n)
}

// Diag creates a square matrix with the given values on the diagonal.
func Diag(diag []float64) *Dense {
	return tensor.Diag(diag)
}

// SVD computes the thin singular value decomposition of a 2D tensor.
func SVD(t *Dense) (*SVDResult, error) {
	return tensor.SVD(t)
}
