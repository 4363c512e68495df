// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/stride/internal/backend/cpu"
	"github.com/born-ml/stride/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Config controls the CPU backend.
type Config = internalcpu.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/stride/backend/cpu"
//	    "github.com/born-ml/stride/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with the given configuration.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// Kernel types and constructors for direct use on raw storage.
type (
	MapKernel    = internalcpu.MapKernel
	ZipKernel    = internalcpu.ZipKernel
	ReduceKernel = internalcpu.ReduceKernel
)

// TensorMap returns the strided map kernel for fn.
func TensorMap(fn tensor.UnaryFunc) MapKernel {
	return internalcpu.TensorMap(fn)
}

// TensorZip returns the strided zip kernel for fn.
func TensorZip(fn tensor.BinaryFunc) ZipKernel {
	return internalcpu.TensorZip(fn)
}

// TensorReduce returns the strided reduce kernel for fn.
func TensorReduce(fn tensor.BinaryFunc) ReduceKernel {
	return internalcpu.TensorReduce(fn)
}
