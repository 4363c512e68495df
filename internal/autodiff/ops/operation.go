// Package ops defines the differentiable tensor operations recorded on the
// gradient tape.
//
// Each operation keeps its inputs and output from the forward pass and maps
// an output gradient to one gradient per input:
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - NegOp, InvOp, ExpOp, LogOp, SigmoidOp, ReLUOp: elementwise derivatives
//   - SumOp: the gradient is broadcast back over the reduced dims
//   - CompareOp: LT and EQ are piecewise constant, so gradients are zero
//   - PermuteOp, ViewOp: the gradient is permuted or reshaped back
//
// Gradients of broadcast operands are summed back to the operand's shape
// with the backend's Reduce engine.
package ops

import "github.com/born-ml/stride/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input, shaped like that input.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}

// unaryOp holds the shared state of single-input operations.
type unaryOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// Inputs returns the input tensor [x].
func (op *unaryOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *unaryOp) Output() *tensor.RawTensor {
	return op.output
}

// binaryOp holds the shared state of two-input operations.
type binaryOp struct {
	inputs []*tensor.RawTensor // [a, b]
	output *tensor.RawTensor
}

// Inputs returns the input tensors [a, b].
func (op *binaryOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *binaryOp) Output() *tensor.RawTensor {
	return op.output
}
