package contract

import (
	"github.com/pkg/errors"

	"github.com/tennet-ml/tennet/internal/tensor"
)

// Trace sums the diagonal of two equal-sized axes of a single tensor,
// reducing its rank by two. The traced axes are permuted to the front,
// the remainder is flattened, and the diagonal slices are accumulated.
// The surviving axes keep their original relative order.
func (e *Engine) Trace(t *tensor.Dense, axes []int) (*tensor.Dense, error) {
	if len(axes) != 2 {
		return nil, errors.Wrapf(ErrInvalidAxisCount, "got %d axes", len(axes))
	}

	sh := t.Shape()
	ndim := len(sh)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, errors.Errorf("trace: axis %d out of range for %dD tensor", ax, ndim)
		}
	}
	if axes[0] == axes[1] {
		return nil, errors.Errorf("trace: axes must be distinct, got (%d, %d)", axes[0], axes[1])
	}
	if sh[axes[0]] != sh[axes[1]] {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"tensor[%d] = %d, tensor[%d] = %d", axes[0], sh[axes[0]], axes[1], sh[axes[1]])
	}

	d := sh[axes[0]]
	var keep []int
	for k := 0; k < ndim; k++ {
		if k != axes[0] && k != axes[1] {
			keep = append(keep, k)
		}
	}
	keepShape := make(tensor.Shape, 0, len(keep))
	for _, k := range keep {
		keepShape = append(keepShape, sh[k])
	}
	rest := keepShape.NumElements()

	perm := append([]int{axes[0], axes[1]}, keep...)
	p := e.backend.Reshape(e.backend.Transpose(t, perm...), tensor.Shape{d, d, rest})

	sum := make([]float64, rest)
	data := p.Data()
	for i := 0; i < d; i++ {
		base := (i*d + i) * rest
		for k, v := range data[base : base+rest] {
			sum[k] += v
		}
	}

	out, err := tensor.FromSlice(sum, keepShape)
	if err != nil {
		// Element counts were derived from the input shape; a mismatch
		// here is a programming error, not a user-facing condition.
		panic(err)
	}
	return out, nil
}
