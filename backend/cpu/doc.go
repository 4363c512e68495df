// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// The backend is built on three strided kernels:
//   - Map: applies a unary function, broadcasting the input into the output
//   - Zip: applies a binary function to two independently broadcast inputs
//   - Reduce: folds a binary function over the dims collapsed to size 1
//
// Each kernel walks storage positionally when every operand shares the
// output's dense layout, and otherwise translates every output ordinal to a
// logical index, broadcasts it onto each input and maps it through that
// input's strides. Setting Config.FastPath to false forces the second path.
//
// # Basic Usage
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	rows := x.Sum(1) // [2,1]: [6 15]
//
// # Observability
//
// Kernel calls are counted in the stride_kernel_invocations_total and
// stride_kernel_elements_total Prometheus counters, and logged at debug
// level to Config.Logger.
package cpu
