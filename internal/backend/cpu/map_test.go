package cpu

import (
	"testing"

	"github.com/born-ml/stride/internal/operators"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestTensorMap_Identity(t *testing.T) {
	in := []float64{1.5, -2, 3, 0, 7, 8}
	shape := tensor.Shape{2, 3}
	out := make([]float64, 6)

	TensorMap(operators.ID)(out, shape, shape.ComputeStrides(), in, shape, shape.ComputeStrides())
	assert.Equal(t, in, out)
}

func TestTensorMap_Broadcast(t *testing.T) {
	// [3] broadcast into [2,3]
	in := []float64{1, 2, 3}
	inShape := tensor.Shape{3}
	outShape := tensor.Shape{2, 3}
	out := make([]float64, 6)

	TensorMap(operators.Neg)(out, outShape, outShape.ComputeStrides(), in, inShape, inShape.ComputeStrides())
	assert.Equal(t, []float64{-1, -2, -3, -1, -2, -3}, out)
}

func TestTensorMap_PermutedInput(t *testing.T) {
	// storage [1..6] as [2,3]; permuted view is [3,2] with strides [1,3]
	in := []float64{1, 2, 3, 4, 5, 6}
	inShape := tensor.Shape{3, 2}
	outShape := tensor.Shape{3, 2}
	out := make([]float64, 6)

	path := mapKernel(operators.ID, true)(out, outShape, outShape.ComputeStrides(), in, inShape, []int{1, 3})
	assert.Equal(t, pathGeneral, path)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out)
}

func TestMapKernel_PathsAgree(t *testing.T) {
	in := []float64{-3, -1, 0, 0.5, 2, 9}
	shape := tensor.Shape{3, 2}
	strides := shape.ComputeStrides()

	fast := make([]float64, 6)
	general := make([]float64, 6)
	assert.Equal(t, pathFast, mapKernel(operators.ReLU, true)(fast, shape, strides, in, shape, strides))
	assert.Equal(t, pathGeneral, mapKernel(operators.ReLU, false)(general, shape, strides, in, shape, strides))
	assert.Equal(t, fast, general)
}

func TestTensorMap_ShortOutputPanics(t *testing.T) {
	shape := tensor.Shape{4}
	assert.Panics(t, func() {
		TensorMap(operators.ID)(make([]float64, 2), shape, shape.ComputeStrides(), make([]float64, 4), shape, shape.ComputeStrides())
	})
}
