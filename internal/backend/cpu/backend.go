// Package cpu implements the CPU compute backend with gonum-backed
// matrix multiplication.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tennet-ml/tennet/internal/tensor"
)

// Backend implements tensor.Backend on the CPU.
type Backend struct{}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (cpu *Backend) Name() string {
	return "CPU"
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
// The heavy lifting is delegated to gonum, which wraps the float64
// buffers without copying.
func (cpu *Backend) MatMul(a, b *tensor.Dense) *tensor.Dense {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := tensor.Zeros(tensor.Shape{m, n})

	am := mat.NewDense(m, k, a.Data())
	bm := mat.NewDense(k, n, b.Data())
	cm := mat.NewDense(m, n, result.Data())
	cm.Mul(am, bm)

	return result
}

// Transpose returns a contiguous tensor with axes reordered per the
// given permutation.
func (cpu *Backend) Transpose(t *tensor.Dense, axes ...int) *tensor.Dense {
	return t.Transpose(axes...)
}

// Reshape returns a tensor with the same data and a new shape.
// Panics if the element counts differ: by the time a backend reshape
// runs, the caller has already established the counts match.
func (cpu *Backend) Reshape(t *tensor.Dense, newShape tensor.Shape) *tensor.Dense {
	out, err := t.Reshape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}
