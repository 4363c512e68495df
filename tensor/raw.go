// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/stride/internal/tensor"

// RawTensor is the low-level tensor: storage, shape and strides.
// Backends operate on RawTensors; most users work with Tensor instead.
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled RawTensor with row-major strides.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// RawFromSlice creates a contiguous RawTensor holding a copy of data.
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.RawFromSlice(data, shape)
}

// NewRawStrided wraps storage with explicit strides without copying.
func NewRawStrided(storage []float64, shape Shape, strides []int) (*RawTensor, error) {
	return tensor.NewRawStrided(storage, shape, strides)
}

// IndexToPosition converts a logical index into a storage offset.
func IndexToPosition(index, strides []int) int {
	return tensor.IndexToPosition(index, strides)
}

// Count writes the logical index of a row-major ordinal into outIndex.
func Count(ordinal int, shape Shape, outIndex []int) {
	tensor.Count(ordinal, shape, outIndex)
}

// BroadcastIndex maps an index of a broadcast shape onto an operand's index.
func BroadcastIndex(bigIndex []int, bigShape, shape Shape, outIndex []int) {
	tensor.BroadcastIndex(bigIndex, bigShape, shape, outIndex)
}
