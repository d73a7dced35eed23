package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVDResult holds the thin singular value decomposition A = U * diag(Sigma) * VT.
type SVDResult struct {
	U     *Dense
	Sigma []float64
	VT    *Dense
}

// SVD computes the thin singular value decomposition of a 2D tensor.
func SVD(t *Dense) (*SVDResult, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("svd: only 2D tensors supported, got %dD", len(t.shape))
	}
	r, c := t.shape[0], t.shape[1]

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(r, c, t.data), mat.SVDThin); !ok {
		return nil, fmt.Errorf("svd: factorization failed for shape %v", t.shape)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	k := len(sigma)
	uOut := Zeros(Shape{r, k})
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			uOut.Set(u.At(i, j), i, j)
		}
	}
	// gonum yields V; the conventional factorization uses its transpose.
	vtOut := Zeros(Shape{k, c})
	for i := 0; i < k; i++ {
		for j := 0; j < c; j++ {
			vtOut.Set(v.At(j, i), i, j)
		}
	}

	return &SVDResult{U: uOut, Sigma: sigma, VT: vtOut}, nil
}
