// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/born-ml/stride/autodiff"
//	    "github.com/born-ml/stride/backend/cpu"
//	    "github.com/born-ml/stride/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, backend)
//	    y := x.Mul(x).Sum()
//
//	    grads := autodiff.Backward(y, backend)
//	    _ = grads[x.Raw()] // [2 4]
//	}
package autodiff

import (
	"github.com/born-ml/stride/internal/autodiff"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/rs/zerolog"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// Option configures a Backend.
type Option = autodiff.Option

// New creates a new autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B, opts ...Option) *Backend[B] {
	return autodiff.New(backend, opts...)
}

// WithLogger sets the logger that receives tape debug events.
func WithLogger(logger zerolog.Logger) Option {
	return autodiff.WithLogger(logger)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes gradients via backpropagation.
func Backward[B BackwardCapable](t *tensor.Tensor[B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
