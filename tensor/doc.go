// Copyright 2025 The TenNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 array type used throughout
// the TenNet tensor-network toolkit.
//
// # Overview
//
// Dense is an N-dimensional array in row-major order with:
//   - Shape introspection and element access
//   - Axis permutation (Transpose) and Reshape
//   - Constructors: Zeros, Ones, Full, Rand, Arange, Eye, Diag
//   - Thin singular value decomposition (SVD)
//
// # Basic Usage
//
//	t := tensor.Arange(0, 12)
//	m, err := t.Reshape(tensor.Shape{3, 4})
//	if err != nil {
//	    // shapes with a different element count are rejected
//	}
//	mt := m.Transpose() // Shape: [4, 3]
//
// # Backends
//
// Compute-heavy operations are routed through the Backend interface.
// The cpu backend (backend/cpu) is the reference implementation; its
// matrix multiplication is backed by gonum.
package tensor
