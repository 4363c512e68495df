package ops

import "github.com/born-ml/stride/internal/tensor"

// AddOp represents an element-wise addition operation: output = a + b.
type AddOp struct{ binaryOp }

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *tensor.RawTensor) *AddOp {
	return &AddOp{binaryOp{inputs: []*tensor.RawTensor{a, b}, output: output}}
}

// Backward passes the output gradient to both inputs, summed over any
// dimensions they were broadcast along.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, a.Shape(), backend),
		reduceBroadcast(outputGrad, b.Shape(), backend),
	}
}

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{ binaryOp }

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *tensor.RawTensor) *MulOp {
	return &MulOp{binaryOp{inputs: []*tensor.RawTensor{a, b}, output: output}}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := reduceBroadcast(backend.Mul(outputGrad, b), a.Shape(), backend)
	gradB := reduceBroadcast(backend.Mul(outputGrad, a), b.Shape(), backend)
	return []*tensor.RawTensor{gradA, gradB}
}

// CompareOp represents LT or EQ. Both are piecewise constant, so no gradient
// flows through them; Backward returns zeros of each input's shape.
type CompareOp struct{ binaryOp }

// NewCompareOp creates a new CompareOp.
func NewCompareOp(a, b, output *tensor.RawTensor) *CompareOp {
	return &CompareOp{binaryOp{inputs: []*tensor.RawTensor{a, b}, output: output}}
}

// Backward returns zero gradients.
func (op *CompareOp) Backward(_ *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		tensor.ZerosRaw(op.inputs[0].Shape()),
		tensor.ZerosRaw(op.inputs[1].Shape()),
	}
}
