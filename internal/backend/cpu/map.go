package cpu

import "github.com/born-ml/stride/internal/tensor"

// MapKernel fills out so that every logical index i of outShape holds
// fn(in[BroadcastIndex(i, outShape, inShape)]).
// out must be dense; it is written in row-major ordinal order.
type MapKernel func(
	out []float64, outShape tensor.Shape, outStrides []int,
	in []float64, inShape tensor.Shape, inStrides []int,
)

// TensorMap returns the map kernel for fn.
//
// When input and output share a dense layout the kernel walks storage
// positionally. Otherwise each output ordinal is converted to an index,
// broadcast onto the input and translated through the input strides.
func TensorMap(fn tensor.UnaryFunc) MapKernel {
	k := mapKernel(fn, true)
	return func(out []float64, outShape tensor.Shape, outStrides []int, in []float64, inShape tensor.Shape, inStrides []int) {
		k(out, outShape, outStrides, in, inShape, inStrides)
	}
}

func mapKernel(fn tensor.UnaryFunc, fastPath bool) func(
	out []float64, outShape tensor.Shape, outStrides []int,
	in []float64, inShape tensor.Shape, inStrides []int,
) kernelPath {
	return func(out []float64, outShape tensor.Shape, outStrides []int, in []float64, inShape tensor.Shape, inStrides []int) kernelPath {
		size := outShape.NumElements()
		checkStorage("map", out, outShape)

		if fastPath && sameDenseLayout(outShape, outStrides, layout{inShape, inStrides}) {
			checkStorage("map", in, inShape)
			for i := 0; i < size; i++ {
				out[i] = fn(in[i])
			}
			return pathFast
		}

		outIndex := make([]int, len(outShape))
		inIndex := make([]int, len(inShape))
		for i := 0; i < size; i++ {
			tensor.Count(i, outShape, outIndex)
			tensor.BroadcastIndex(outIndex, outShape, inShape, inIndex)
			out[i] = fn(in[tensor.IndexToPosition(inIndex, inStrides)])
		}
		return pathGeneral
	}
}
