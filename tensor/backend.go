// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/stride/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: strided CPU kernels
//
// Decorator backends for additional functionality:
//   - autodiff: Automatic differentiation (wraps any backend)
type Backend = tensor.Backend

// Ops is the generic operation set: Map, Zip and Reduce.
type Ops = tensor.Ops

// Function types accepted and returned by Ops.
type (
	UnaryFunc  = tensor.UnaryFunc
	BinaryFunc = tensor.BinaryFunc
	MapFunc    = tensor.MapFunc
	ZipFunc    = tensor.ZipFunc
	ReduceFunc = tensor.ReduceFunc
)
