// Package cpu implements the CPU backend: strided map, zip and reduce kernels
// and the named tensor operations built from them.
package cpu

import (
	"fmt"

	"github.com/born-ml/stride/internal/tensor"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend runs tensor operations on the CPU, one kernel call at a time.
type CPUBackend struct {
	cfg Config
}

// New creates a CPU backend with DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a CPU backend with the given configuration.
func NewWithConfig(cfg Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the backend configuration.
func (cpu *CPUBackend) Config() Config {
	return cpu.cfg
}

// Map returns an elementwise unary operation.
//
// With a nil out the result is a fresh tensor shaped like a. A supplied out
// is filled in place; it must be contiguous and a must broadcast into it.
func (cpu *CPUBackend) Map(fn tensor.UnaryFunc) tensor.MapFunc {
	k := mapKernel(fn, cpu.cfg.FastPath)
	return func(a, out *tensor.RawTensor) (*tensor.RawTensor, error) {
		if out == nil {
			out = tensor.ZerosRaw(a.Shape())
		} else {
			if !out.IsContiguous() {
				return nil, fmt.Errorf("map output %v: %w", out.Shape(), tensor.ErrNotContiguous)
			}
			if err := broadcastInto(a.Shape(), out.Shape()); err != nil {
				return nil, err
			}
		}

		outStorage, outShape, outStrides := out.Tuple()
		inStorage, inShape, inStrides := a.Tuple()
		path := k(outStorage, outShape, outStrides, inStorage, inShape, inStrides)
		cpu.record("map", path, out)
		return out, nil
	}
}

// Zip returns an elementwise binary operation.
// Both operands are broadcast to their common shape; the result is fresh.
func (cpu *CPUBackend) Zip(fn tensor.BinaryFunc) tensor.ZipFunc {
	k := zipKernel(fn, cpu.cfg.FastPath)
	return func(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
		shape := a.Shape()
		if !a.Shape().Equal(b.Shape()) {
			var err error
			if shape, err = tensor.BroadcastShape(a.Shape(), b.Shape()); err != nil {
				return nil, err
			}
		}
		out := tensor.ZerosRaw(shape)

		outStorage, outShape, outStrides := out.Tuple()
		aStorage, aShape, aStrides := a.Tuple()
		bStorage, bShape, bStrides := b.Tuple()
		path := k(outStorage, outShape, outStrides, aStorage, aShape, aStrides, bStorage, bShape, bStrides)
		cpu.record("zip", path, out)
		return out, nil
	}
}

// Reduce returns a reduction that folds with fn, seeded with start.
//
// With a nil out, every dim listed in dims collapses to 1 (negative dims count
// from the end, no dims collapses all of them) and the fresh output is filled
// with start. A supplied out is used as the destination instead and dims are
// ignored: out is viewed with leading 1s up to a's rank, each of its dims must
// be 1 or match a, and its existing values seed the fold.
func (cpu *CPUBackend) Reduce(fn tensor.BinaryFunc, start float64) tensor.ReduceFunc {
	k := reduceKernel(fn, cpu.cfg.FastPath)
	return func(a *tensor.RawTensor, dims []int, out *tensor.RawTensor) (*tensor.RawTensor, error) {
		target, err := reduceTarget(a, dims, out, start)
		if err != nil {
			return nil, err
		}

		aShape := a.Shape()
		reduceShape := make(tensor.Shape, len(aShape))
		for i, d := range target.Shape() {
			reduceShape[i] = 1
			if d == 1 {
				reduceShape[i] = aShape[i]
			}
		}

		outStorage, outShape, outStrides := target.Tuple()
		aStorage, _, aStrides := a.Tuple()
		path := k(outStorage, outShape, outStrides, aStorage, aShape, aStrides, reduceShape, reduceShape.NumElements())
		cpu.record("reduce", path, target)

		if out != nil {
			return out, nil
		}
		return target, nil
	}
}

// reduceTarget returns the rank-aligned destination for a reduction of a.
// A supplied out is returned as a view sharing its storage.
func reduceTarget(a *tensor.RawTensor, dims []int, out *tensor.RawTensor, start float64) (*tensor.RawTensor, error) {
	aShape := a.Shape()
	if out == nil {
		axes, err := normalizeDims(dims, len(aShape))
		if err != nil {
			return nil, err
		}
		shape := aShape.Clone()
		for _, d := range axes {
			shape[d] = 1
		}
		return tensor.FullRaw(shape, start)
	}

	if out.Dims() > len(aShape) {
		return nil, fmt.Errorf("%w: output %v has more dimensions than input %v",
			tensor.ErrUnsupportedReduction, out.Shape(), aShape)
	}
	if !out.IsContiguous() {
		return nil, fmt.Errorf("reduce output %v: %w", out.Shape(), tensor.ErrNotContiguous)
	}

	padded := make([]int, len(aShape))
	offset := len(aShape) - out.Dims()
	for i := range padded {
		padded[i] = 1
		if i >= offset {
			padded[i] = out.Shape()[i-offset]
		}
		if padded[i] != 1 && padded[i] != aShape[i] {
			return nil, fmt.Errorf("%w: cannot reduce %v into %v (dimension %d: %d vs %d)",
				tensor.ErrUnsupportedReduction, aShape, out.Shape(), i, aShape[i], padded[i])
		}
	}
	return out.View(padded...)
}

func (cpu *CPUBackend) record(op string, path kernelPath, out *tensor.RawTensor) {
	observe(op, path, out.NumElements())
	cpu.cfg.Logger.Debug().
		Str("op", op).
		Str("path", string(path)).
		Ints("out_shape", []int(out.Shape())).
		Msg("kernel")
}
