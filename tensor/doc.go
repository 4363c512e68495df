// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the stride tensor engine.
//
// A tensor is flat float64 storage read through a shape and per-dimension
// strides. Strides are kept separately from the shape, so Permute and View
// produce new tensors that share storage with the original.
//
// # Broadcasting
//
// Elementwise operations broadcast their operands: shapes are aligned from
// the trailing dimension, and a dimension of size 1 stretches to match the
// other operand.
//
//	a := [2,2]  [[1 2] [3 4]]
//	b := [2,1]  [[10] [20]]
//	a + b       [[11 12] [23 24]]
//
// # Backends
//
// Every computation runs through a Backend. Backends expose three generic
// constructors, Map, Zip and Reduce, and named operations built from them.
// Wrapping a backend with autodiff.New records the named operations for
// reverse-mode differentiation.
package tensor
