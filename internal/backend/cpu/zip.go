package cpu

import "github.com/born-ml/stride/internal/tensor"

// ZipKernel fills out so that every logical index i of outShape holds
// fn(a[BroadcastIndex(i, outShape, aShape)], b[BroadcastIndex(i, outShape, bShape)]).
// out must be dense; it is written in row-major ordinal order.
type ZipKernel func(
	out []float64, outShape tensor.Shape, outStrides []int,
	a []float64, aShape tensor.Shape, aStrides []int,
	b []float64, bShape tensor.Shape, bStrides []int,
)

// TensorZip returns the zip kernel for fn.
// Each operand is broadcast independently onto the output shape.
func TensorZip(fn tensor.BinaryFunc) ZipKernel {
	k := zipKernel(fn, true)
	return func(out []float64, outShape tensor.Shape, outStrides []int, a []float64, aShape tensor.Shape, aStrides []int, b []float64, bShape tensor.Shape, bStrides []int) {
		k(out, outShape, outStrides, a, aShape, aStrides, b, bShape, bStrides)
	}
}

func zipKernel(fn tensor.BinaryFunc, fastPath bool) func(
	out []float64, outShape tensor.Shape, outStrides []int,
	a []float64, aShape tensor.Shape, aStrides []int,
	b []float64, bShape tensor.Shape, bStrides []int,
) kernelPath {
	return func(out []float64, outShape tensor.Shape, outStrides []int, a []float64, aShape tensor.Shape, aStrides []int, b []float64, bShape tensor.Shape, bStrides []int) kernelPath {
		size := outShape.NumElements()
		checkStorage("zip", out, outShape)

		if fastPath && sameDenseLayout(outShape, outStrides, layout{aShape, aStrides}, layout{bShape, bStrides}) {
			checkStorage("zip", a, aShape)
			checkStorage("zip", b, bShape)
			for i := 0; i < size; i++ {
				out[i] = fn(a[i], b[i])
			}
			return pathFast
		}

		outIndex := make([]int, len(outShape))
		aIndex := make([]int, len(aShape))
		bIndex := make([]int, len(bShape))
		for i := 0; i < size; i++ {
			tensor.Count(i, outShape, outIndex)
			tensor.BroadcastIndex(outIndex, outShape, aShape, aIndex)
			tensor.BroadcastIndex(outIndex, outShape, bShape, bIndex)
			x := a[tensor.IndexToPosition(aIndex, aStrides)]
			y := b[tensor.IndexToPosition(bIndex, bStrides)]
			out[i] = fn(x, y)
		}
		return pathGeneral
	}
}
