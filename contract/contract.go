// Copyright 2025 The TenNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/tennet-ml/tennet/internal/backend/cpu"
	"github.com/tennet-ml/tennet/internal/contract"
	"github.com/tennet-ml/tennet/tensor"
)

// Sentinel errors returned by the contraction pipeline; match with errors.Is.
var (
	ErrInvalidLabelCount = contract.ErrInvalidLabelCount
	ErrOddAxisList       = contract.ErrOddAxisList
	ErrShapeMismatch     = contract.ErrShapeMismatch
	ErrInvalidAxisCount  = contract.ErrInvalidAxisCount
)

// Engine drives contractions through a compute backend. The
// package-level functions use a shared Engine bound to the CPU backend;
// construct an Engine directly to use another backend.
type Engine = contract.Engine

// NewEngine creates an Engine bound to the given backend.
func NewEngine(backend tensor.Backend) *Engine {
	return contract.NewEngine(backend)
}

var defaultEngine = contract.NewEngine(cpu.New())

// Contract reduces the tensor list to a single tensor according to the
// per-axis label rows. See the package documentation for the labeling
// scheme.
func Contract(tensors []*tensor.Dense, labels [][]int) (*tensor.Dense, error) {
	return defaultEngine.Contract(tensors, labels)
}

// ContractionPlan returns the ordered pairwise merge plan Contract
// would execute for the given inputs, without touching tensor data.
// Each pair indexes the working list as it stands at that step; the
// merge result replaces the first index and the second is removed.
func ContractionPlan(tensors []*tensor.Dense, labels [][]int) ([][2]int, error) {
	return defaultEngine.ContractionPlan(tensors, labels)
}

// TensorDot contracts two tensors over matched axis pairs: the first
// half of axes lists positions in a, the second half the matched
// positions in b. The result's axes are the free axes of a followed by
// the free axes of b.
func TensorDot(a, b *tensor.Dense, axes []int) (*tensor.Dense, error) {
	return defaultEngine.TensorDot(a, b, axes)
}

// Trace sums the diagonal of two equal-sized axes of a single tensor,
// reducing its rank by two.
func Trace(t *tensor.Dense, axes []int) (*tensor.Dense, error) {
	return defaultEngine.Trace(t, axes)
}
