package ops

import (
	"fmt"

	"github.com/born-ml/stride/internal/operators"
	"github.com/born-ml/stride/internal/tensor"
)

// reduceBroadcast sums a gradient back to the shape of the operand it flows to.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
//
// The sum is a Reduce into a buffer of the target shape, which covers leading
// dims missing from the target as well as size-1 dims.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad
	}

	out := tensor.ZerosRaw(targetShape)
	if _, err := backend.Reduce(operators.Add, 0)(grad, nil, out); err != nil {
		panic(fmt.Sprintf("reduce broadcast %v -> %v: %v", grad.Shape(), targetShape, err))
	}
	return out
}

// expandTo broadcasts grad into a fresh tensor of the given shape.
func expandTo(grad *tensor.RawTensor, shape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	out, err := backend.Map(operators.ID)(grad, tensor.ZerosRaw(shape))
	if err != nil {
		panic(fmt.Sprintf("expand %v -> %v: %v", grad.Shape(), shape, err))
	}
	return out
}
