package cpu

import (
	"fmt"

	"github.com/born-ml/stride/internal/tensor"
)

// ReduceKernel folds a into out. out has the same rank as a; every dimension
// of out is either 1 (reduced) or equal to a's. reduceShape holds a's size
// for reduced dims and 1 elsewhere, and reduceSize is its element count.
//
// Each output cell is folded starting from its existing value, visiting the
// reduced positions in row-major order over reduceShape.
type ReduceKernel func(
	out []float64, outShape tensor.Shape, outStrides []int,
	a []float64, aShape tensor.Shape, aStrides []int,
	reduceShape tensor.Shape, reduceSize int,
)

// TensorReduce returns the reduce kernel for fn.
func TensorReduce(fn tensor.BinaryFunc) ReduceKernel {
	k := reduceKernel(fn, true)
	return func(out []float64, outShape tensor.Shape, outStrides []int, a []float64, aShape tensor.Shape, aStrides []int, reduceShape tensor.Shape, reduceSize int) {
		k(out, outShape, outStrides, a, aShape, aStrides, reduceShape, reduceSize)
	}
}

func reduceKernel(fn tensor.BinaryFunc, fastPath bool) func(
	out []float64, outShape tensor.Shape, outStrides []int,
	a []float64, aShape tensor.Shape, aStrides []int,
	reduceShape tensor.Shape, reduceSize int,
) kernelPath {
	return func(out []float64, outShape tensor.Shape, outStrides []int, a []float64, aShape tensor.Shape, aStrides []int, reduceShape tensor.Shape, reduceSize int) kernelPath {
		if len(outShape) != len(aShape) || len(reduceShape) != len(aShape) {
			panic(fmt.Sprintf("reduce: rank mismatch (out %d, a %d, reduce %d)",
				len(outShape), len(aShape), len(reduceShape)))
		}
		checkStorage("reduce", out, outShape)

		if outShape.NumElements() == 1 {
			acc := out[0]
			if fastPath && aShape.IsContiguous(aStrides) && len(a) == aShape.NumElements() {
				for _, v := range a {
					acc = fn(acc, v)
				}
			} else {
				index := make([]int, len(aShape))
				for i := 0; i < aShape.NumElements(); i++ {
					tensor.Count(i, aShape, index)
					acc = fn(acc, a[tensor.IndexToPosition(index, aStrides)])
				}
			}
			out[0] = acc
			return pathFull
		}

		outIndex := make([]int, len(outShape))
		reduceIndex := make([]int, len(reduceShape))
		aIndex := make([]int, len(aShape))
		for i := 0; i < outShape.NumElements(); i++ {
			tensor.Count(i, outShape, outIndex)
			acc := out[i]
			for j := 0; j < reduceSize; j++ {
				tensor.Count(j, reduceShape, reduceIndex)
				for d := range aIndex {
					aIndex[d] = outIndex[d] + reduceIndex[d]
				}
				acc = fn(acc, a[tensor.IndexToPosition(aIndex, aStrides)])
			}
			out[i] = acc
		}
		return pathGeneral
	}
}
