// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/stride/internal/tensor"

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a float64 tensor bound to backend B.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
type Tensor[B Backend] = tensor.Tensor[B]

// Errors returned by shape, view and reduction operations.
var (
	ErrIncompatibleShapes   = tensor.ErrIncompatibleShapes
	ErrUnsupportedReduction = tensor.ErrUnsupportedReduction
	ErrInvalidShape         = tensor.ErrInvalidShape
	ErrInvalidDim           = tensor.ErrInvalidDim
	ErrNotContiguous        = tensor.ErrNotContiguous
	ErrIndexOutOfRange      = tensor.ErrIndexOutOfRange
)

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with value.
func Full[B Backend](shape Shape, value float64, b B) *Tensor[B] {
	return tensor.Full(shape, value, b)
}

// Scalar creates a single-element tensor of shape [1].
func Scalar[B Backend](value float64, b B) *Tensor[B] {
	return tensor.Scalar(value, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	return tensor.FromSlice(data, shape, b)
}

// New wraps a RawTensor with a backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return tensor.New(raw, b)
}

// BroadcastShape returns the shape two operands broadcast to.
//
// Example:
//
//	shape, err := tensor.BroadcastShape(Shape{3, 1}, Shape{1, 4}) // [3 4]
func BroadcastShape(a, b Shape) (Shape, error) {
	return tensor.BroadcastShape(a, b)
}
