// Copyright 2025 The TenNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
//
// Example:
//
//	backend := cpu.New()
//	engine := contract.NewEngine(backend)
package cpu

import (
	"github.com/tennet-ml/tennet/internal/backend/cpu"
)

// Backend implements tensor.Backend on the CPU. Matrix multiplication
// is delegated to gonum; permutation and reshape are pure Go.
type Backend = cpu.Backend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
