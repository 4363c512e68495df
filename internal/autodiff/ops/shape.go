package ops

import "github.com/born-ml/stride/internal/tensor"

// SumOp represents a sum over dims that keeps them as size 1.
// Every input element contributed once, so the output gradient is broadcast
// back over the reduced dims.
type SumOp struct{ unaryOp }

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{unaryOp{input: input, output: output}}
}

// Backward expands the output gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expandTo(outputGrad, op.input.Shape(), backend)}
}

// PermuteOp represents a reordering of dimensions.
//
// Backward:
//
//	∂L/∂input = permute(∂L/∂output, inverse(order))
type PermuteOp struct {
	unaryOp
	order []int
}

// NewPermuteOp creates a new PermuteOp.
func NewPermuteOp(input, output *tensor.RawTensor, order []int) *PermuteOp {
	return &PermuteOp{
		unaryOp: unaryOp{input: input, output: output},
		order:   append([]int(nil), order...),
	}
}

// Backward permutes the gradient with the inverse order.
func (op *PermuteOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.order))
	for i, ax := range op.order {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Permute(outputGrad, inverse...)}
}

// ViewOp represents a reshape. The gradient is viewed back to the input shape.
type ViewOp struct{ unaryOp }

// NewViewOp creates a new ViewOp.
func NewViewOp(input, output *tensor.RawTensor) *ViewOp {
	return &ViewOp{unaryOp{input: input, output: output}}
}

// Backward reshapes the gradient to the input shape.
func (op *ViewOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.View(outputGrad, op.input.Shape())}
}
