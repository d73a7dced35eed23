// Package tensor provides the dense float64 array core for the TenNet toolkit.
package tensor

import (
	"fmt"

	"github.com/tennet-ml/tennet/internal/parallel"
)

// Dense is an N-dimensional dense array of float64 values in row-major
// (C) order. The zero value is not usable; construct with New, FromSlice
// or one of the creation functions.
type Dense struct {
	data   []float64
	shape  Shape
	stride []int
}

// New creates a zero-initialized Dense with the given shape.
func New(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a Dense from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Dense) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major memory strides.
func (t *Dense) Strides() []int {
	return t.stride
}

// NumElements returns the total number of elements.
func (t *Dense) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying flat data slice (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Dense) At(indices ...int) float64 {
	return t.data[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Dense) Set(value float64, indices ...int) {
	t.data[t.offsetOf(indices)] = value
}

func (t *Dense) offsetOf(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Dense) Clone() *Dense {
	c := &Dense{
		data:   make([]float64, len(t.data)),
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
	}
	copy(c.data, t.data)
	return c
}

// Equal reports whether two tensors have the same shape and identical
// element values.
func (t *Dense) Equal(other *Dense) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Dense) String() string {
	return fmt.Sprintf("Dense%v (%d elements)", t.shape, t.NumElements())
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Dense) Reshape(newShape Shape) (*Dense, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: invalid shape: %w", err)
	}
	if t.NumElements() != newShape.NumElements() {
		return nil, fmt.Errorf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.shape, newShape)
	}
	out := &Dense{
		data:   make([]float64, len(t.data)),
		shape:  newShape.Clone(),
		stride: newShape.ComputeStrides(),
	}
	copy(out.data, t.data)
	return out, nil
}

// Transpose returns a new contiguous tensor with axes reordered per the
// given permutation. If axes is empty, all dimensions are reversed (for
// 2D this is the standard transpose). Panics on an invalid permutation.
func (t *Dense) Transpose(axes ...int) *Dense {
	ndim := len(t.shape)

	// Default: reverse all dimensions.
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = t.shape[ax]
	}

	out := &Dense{
		data:   make([]float64, len(t.data)),
		shape:  newShape,
		stride: newShape.ComputeStrides(),
	}
	transposeData(out, t, axes)
	return out
}

// transposeData gathers elements from src into the contiguous dst layout.
// The outer output dimension is split across goroutines for large tensors.
func transposeData(dst, src *Dense, axes []int) {
	ndim := len(dst.shape)
	if ndim == 0 {
		dst.data[0] = src.data[0]
		return
	}

	outStrides := dst.stride
	inner := outStrides[0] // elements per slice of the leading output axis

	cfg := parallel.DefaultConfig()
	parallel.For(dst.shape[0], func(row int) {
		coords := make([]int, ndim)
		coords[0] = row
		base := row * inner
		for k := 0; k < inner; k++ {
			rem := k
			for i := 1; i < ndim; i++ {
				coords[i] = rem / outStrides[i]
				rem %= outStrides[i]
			}
			inIdx := 0
			for i, ax := range axes {
				inIdx += coords[i] * src.stride[ax]
			}
			dst.data[base+k] = src.data[inIdx]
		}
	}, cfg)
}
