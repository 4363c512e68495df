// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides reverse-mode automatic differentiation over single
// float64 values, plus a central-difference derivative check.
//
// Example:
//
//	x := scalar.New(3)
//	y := x.Mul(x).Add(x) // x² + x
//	y.Backward()
//	fmt.Println(x.Derivative) // 7
package scalar

import "github.com/born-ml/stride/internal/scalar"

// Scalar is a float64 that records the operations used to produce it.
type Scalar = scalar.Scalar

// Function is a differentiable operation on float64 values.
type Function = scalar.Function

// Context carries values from Forward to Backward.
type Context = scalar.Context

// History records how a Scalar was computed.
type History = scalar.History

// ErrDerivativeMismatch is returned by DerivativeCheck.
var ErrDerivativeMismatch = scalar.ErrDerivativeMismatch

// New creates a leaf Scalar.
func New(v float64) *Scalar {
	return scalar.New(v)
}

// Apply runs fn on the inputs and records it for Backward.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	return scalar.Apply(fn, inputs...)
}

// CentralDifference approximates the partial derivative of f at vals
// with respect to vals[arg].
func CentralDifference(f func(vals ...float64) float64, vals []float64, arg int, epsilon float64) float64 {
	return scalar.CentralDifference(f, vals, arg, epsilon)
}

// DerivativeCheck compares backward derivatives of f against central differences.
func DerivativeCheck(f func(in ...*Scalar) *Scalar, scalars ...*Scalar) error {
	return scalar.DerivativeCheck(f, scalars...)
}
