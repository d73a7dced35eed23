package contract

import (
	"github.com/pkg/errors"

	"github.com/tennet-ml/tennet/internal/tensor"
)

// TensorDot contracts two tensors over a matched list of axis pairs.
// The flat axes list holds the positions in a first and the matched
// positions in b second. Each tensor is permuted so its free axes
// (original relative order preserved) and contracted axes are grouped,
// reshaped to 2D, multiplied, and the product is reshaped to the free
// axes of a followed by the free axes of b.
func (e *Engine) TensorDot(a, b *tensor.Dense, axes []int) (*tensor.Dense, error) {
	if len(axes)%2 != 0 {
		return nil, errors.Wrapf(ErrOddAxisList, "got %d axis indices", len(axes))
	}
	half := len(axes) / 2
	axesA, axesB := axes[:half], axes[half:]

	ash, bsh := a.Shape(), b.Shape()
	for k := 0; k < half; k++ {
		if axesA[k] < 0 || axesA[k] >= len(ash) {
			return nil, errors.Errorf("tensordot: axis %d out of range for %dD tensor a", axesA[k], len(ash))
		}
		if axesB[k] < 0 || axesB[k] >= len(bsh) {
			return nil, errors.Errorf("tensordot: axis %d out of range for %dD tensor b", axesB[k], len(bsh))
		}
		if ash[axesA[k]] != bsh[axesB[k]] {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"a[%d] = %d, b[%d] = %d", axesA[k], ash[axesA[k]], axesB[k], bsh[axesB[k]])
		}
	}

	freeA := freeAxes(len(ash), axesA)
	freeB := freeAxes(len(bsh), axesB)

	linked := 1
	for _, ax := range axesA {
		linked *= ash[ax]
	}
	freeSizeA := 1
	for _, ax := range freeA {
		freeSizeA *= ash[ax]
	}
	freeSizeB := 1
	for _, ax := range freeB {
		freeSizeB *= bsh[ax]
	}

	// a -> [free..., contracted...], b -> [contracted..., free...]
	permA := append(cloneRow(freeA), axesA...)
	permB := append(cloneRow(axesB), freeB...)

	ma := e.backend.Reshape(e.backend.Transpose(a, permA...), tensor.Shape{freeSizeA, linked})
	mb := e.backend.Reshape(e.backend.Transpose(b, permB...), tensor.Shape{linked, freeSizeB})
	res := e.backend.MatMul(ma, mb)

	outShape := make(tensor.Shape, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		outShape = append(outShape, ash[ax])
	}
	for _, ax := range freeB {
		outShape = append(outShape, bsh[ax])
	}
	return e.backend.Reshape(res, outShape), nil
}

// freeAxes lists the axes of a rank-ndim tensor not named in contracted,
// in ascending order.
func freeAxes(ndim int, contracted []int) []int {
	free := make([]int, 0, ndim)
	for k := 0; k < ndim; k++ {
		if indexOf(contracted, k) < 0 {
			free = append(free, k)
		}
	}
	return free
}
