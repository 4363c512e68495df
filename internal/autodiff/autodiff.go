// Package autodiff implements automatic differentiation using the decorator pattern.
//
// AutodiffBackend wraps any Backend implementation and adds gradient tracking
// through a GradientTape.
//
// Architecture:
//   - Decorator pattern: AutodiffBackend[B] wraps any Backend implementation
//   - GradientTape: Records operations during forward pass
//   - Operation interface: Each op implements its backward pass
//   - Reverse-mode AD: Computes gradients using the chain rule
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1}, backend)
//	y := x.Mul(x) // y = x²
//
//	grads := autodiff.Backward(y, backend)
//	fmt.Println(grads[x.Raw()]) // dy/dx = 2x = 4
package autodiff

import (
	"github.com/born-ml/stride/internal/autodiff/ops"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/rs/zerolog"
)

// Verify that AutodiffBackend implements Backend.
var _ tensor.Backend = (*AutodiffBackend[*tensor.MockBackend])(nil)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
// It implements the tensor.Backend interface and records named operations in
// a GradientTape. The generic Map, Zip and Reduce constructors pass through
// unrecorded, since an arbitrary float function has no known derivative.
//
// Type parameter B must satisfy the tensor.Backend interface.
type AutodiffBackend[B tensor.Backend] struct {
	inner B             // Wrapped backend
	tape  *GradientTape // Records operations for backpropagation
}

// Option configures an AutodiffBackend.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger that receives tape debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B, opts ...Option) *AutodiffBackend[B] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	tape := NewGradientTape()
	tape.logger = o.logger
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  tape,
	}
}

// Tape returns the gradient tape for manual control.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Map passes through to the wrapped backend without recording.
func (b *AutodiffBackend[B]) Map(fn tensor.UnaryFunc) tensor.MapFunc {
	return b.inner.Map(fn)
}

// Zip passes through to the wrapped backend without recording.
func (b *AutodiffBackend[B]) Zip(fn tensor.BinaryFunc) tensor.ZipFunc {
	return b.inner.Zip(fn)
}

// Reduce passes through to the wrapped backend without recording.
func (b *AutodiffBackend[B]) Reduce(fn tensor.BinaryFunc, start float64) tensor.ReduceFunc {
	return b.inner.Reduce(fn, start)
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Add(x, y)
	b.tape.Record(ops.NewAddOp(x, y, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Mul(x, y)
	b.tape.Record(ops.NewMulOp(x, y, result))
	return result
}

// LT compares element-wise and records the operation.
func (b *AutodiffBackend[B]) LT(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.LT(x, y)
	b.tape.Record(ops.NewCompareOp(x, y, result))
	return result
}

// EQ compares element-wise and records the operation.
func (b *AutodiffBackend[B]) EQ(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.EQ(x, y)
	b.tape.Record(ops.NewCompareOp(x, y, result))
	return result
}

// Neg negates and records the operation.
func (b *AutodiffBackend[B]) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Neg(x)
	b.tape.Record(ops.NewNegOp(x, result))
	return result
}

// Inv computes 1/x and records the operation.
func (b *AutodiffBackend[B]) Inv(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Inv(x)
	b.tape.Record(ops.NewInvOp(x, result))
	return result
}

// Exp computes e^x and records the operation.
func (b *AutodiffBackend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Exp(x)
	b.tape.Record(ops.NewExpOp(x, result))
	return result
}

// Log computes the natural logarithm and records the operation.
func (b *AutodiffBackend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Log(x)
	b.tape.Record(ops.NewLogOp(x, result))
	return result
}

// Sigmoid computes σ(x) and records the operation.
func (b *AutodiffBackend[B]) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sigmoid(x)
	b.tape.Record(ops.NewSigmoidOp(x, result))
	return result
}

// ReLU computes max(0, x) and records the operation.
func (b *AutodiffBackend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.ReLU(x)
	b.tape.Record(ops.NewReLUOp(x, result))
	return result
}

// LogBack delegates to the inner backend. Derivative ops are not recorded.
func (b *AutodiffBackend[B]) LogBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.LogBack(x, d)
}

// InvBack delegates to the inner backend.
func (b *AutodiffBackend[B]) InvBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.InvBack(x, d)
}

// ReLUBack delegates to the inner backend.
func (b *AutodiffBackend[B]) ReLUBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.ReLUBack(x, d)
}

// SigmoidBack delegates to the inner backend.
func (b *AutodiffBackend[B]) SigmoidBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.SigmoidBack(x, d)
}

// ExpBack delegates to the inner backend.
func (b *AutodiffBackend[B]) ExpBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.ExpBack(x, d)
}

// Sum reduces along dims and records the operation.
func (b *AutodiffBackend[B]) Sum(x *tensor.RawTensor, dims ...int) *tensor.RawTensor {
	result := b.inner.Sum(x, dims...)
	b.tape.Record(ops.NewSumOp(x, result))
	return result
}

// Permute reorders dimensions and records the operation.
//
// The result shares storage with x but is a distinct tensor, so it must be
// recorded for gradients to reach x.
func (b *AutodiffBackend[B]) Permute(x *tensor.RawTensor, order ...int) *tensor.RawTensor {
	result := b.inner.Permute(x, order...)
	b.tape.Record(ops.NewPermuteOp(x, result, order))
	return result
}

// View reshapes and records the operation.
func (b *AutodiffBackend[B]) View(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	result := b.inner.View(x, shape)
	b.tape.Record(ops.NewViewOp(x, result))
	return result
}
