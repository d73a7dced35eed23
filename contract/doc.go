// Copyright 2025 The TenNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package contract computes generalized tensor contractions in the
// einsum style: given dense tensors and an integer label per axis, it
// sums matched axes against each other and returns the single resulting
// tensor.
//
// # Labels
//
// A positive label names a contraction and must appear on exactly two
// axes across the whole tensor list — on two different tensors
// (ordinary contraction) or twice on one tensor (a trace). A negative
// label names a free axis, may appear at most once, and survives into
// the output; output axes are ordered by descending label value.
//
// # Basic Usage
//
//	a := tensor.Arange(0, 6)
//	am, _ := a.Reshape(tensor.Shape{2, 3})
//	b := tensor.Arange(0, 12)
//	bm, _ := b.Reshape(tensor.Shape{3, 4})
//
//	// Matrix product: contract label 1 over a's axis 1 and b's axis 0.
//	out, err := contract.Contract(
//	    []*tensor.Dense{am, bm},
//	    [][]int{{-1, 1}, {1, -2}},
//	)
//	// out has shape [2, 4]
//
// # Planning
//
// Contraction order is chosen greedily: each step scores every tensor
// pair by the total size of their shared axes relative to the product
// of their element counts, and merges the best pair. ContractionPlan
// exposes the chosen order without executing any arithmetic.
//
// # Errors
//
// Failures are reported through a closed set of sentinel errors
// (ErrInvalidLabelCount, ErrOddAxisList, ErrShapeMismatch,
// ErrInvalidAxisCount) matched with errors.Is; messages carry the
// offending labels, axes and sizes.
package contract
