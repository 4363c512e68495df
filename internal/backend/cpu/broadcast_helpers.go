package cpu

import (
	"fmt"

	"github.com/born-ml/stride/internal/tensor"
)

// kernelPath names the iteration strategy a kernel took.
type kernelPath string

const (
	pathFast    kernelPath = "fast"    // positional, no index translation
	pathGeneral kernelPath = "general" // per-ordinal index translation
	pathFull    kernelPath = "full"    // reduction into a single cell
)

// sameDenseLayout reports whether every operand has the output's shape and a
// dense row-major layout, so storage positions line up one to one.
func sameDenseLayout(outShape tensor.Shape, outStrides []int, operands ...layout) bool {
	if !outShape.IsContiguous(outStrides) {
		return false
	}
	for _, op := range operands {
		if !op.shape.Equal(outShape) || !op.shape.IsContiguous(op.strides) {
			return false
		}
	}
	return true
}

type layout struct {
	shape   tensor.Shape
	strides []int
}

// checkStorage panics if storage cannot hold every element of a dense layout.
// It guards the positional fast paths, which never translate indices.
func checkStorage(op string, storage []float64, shape tensor.Shape) {
	if len(storage) < shape.NumElements() {
		panic(fmt.Sprintf("%s: storage holds %d values, shape %v needs %d",
			op, len(storage), shape, shape.NumElements()))
	}
}

// broadcastInto checks that shape broadcasts into target without growing it.
func broadcastInto(shape, target tensor.Shape) error {
	union, err := tensor.BroadcastShape(target, shape)
	if err != nil {
		return err
	}
	if !union.Equal(target) {
		return fmt.Errorf("%w: %v does not broadcast into output %v", tensor.ErrIncompatibleShapes, shape, target)
	}
	return nil
}

// normalizeDims resolves negative dims and checks range.
// No dims selects every dimension.
func normalizeDims(dims []int, ndim int) ([]int, error) {
	if len(dims) == 0 {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	out := make([]int, len(dims))
	for i, d := range dims {
		if d < 0 {
			d += ndim
		}
		if d < 0 || d >= ndim {
			return nil, fmt.Errorf("%w: %d out of range for %dD tensor", tensor.ErrInvalidDim, dims[i], ndim)
		}
		out[i] = d
	}
	return out, nil
}
