package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively, coordinate by coordinate, and serves
// as a reference when checking the strided kernels of real backends.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Map applies fn to every coordinate of the output.
func (m *MockBackend) Map(fn UnaryFunc) MapFunc {
	return func(a, out *RawTensor) (*RawTensor, error) {
		if out == nil {
			out = zeros(a.Shape())
		}
		if _, err := broadcastInto(a.Shape(), out.Shape()); err != nil {
			return nil, err
		}
		forEachCoord(out.Shape(), func(coord []int) {
			out.Set(fn(a.At(project(coord, a.Shape())...)), coord...)
		})
		return out, nil
	}
}

// Zip applies fn to every coordinate of the broadcast shape.
func (m *MockBackend) Zip(fn BinaryFunc) ZipFunc {
	return func(a, b *RawTensor) (*RawTensor, error) {
		shape, err := BroadcastShape(a.Shape(), b.Shape())
		if err != nil {
			return nil, err
		}
		out := zeros(shape)
		forEachCoord(shape, func(coord []int) {
			x := a.At(project(coord, a.Shape())...)
			y := b.At(project(coord, b.Shape())...)
			out.Set(fn(x, y), coord...)
		})
		return out, nil
	}
}

// Reduce folds every element of a into the output cell obtained by zeroing
// the reduced coordinates.
func (m *MockBackend) Reduce(fn BinaryFunc, start float64) ReduceFunc {
	return func(a *RawTensor, dims []int, out *RawTensor) (*RawTensor, error) {
		if out != nil {
			return nil, fmt.Errorf("%w: mock backend only reduces into fresh outputs", ErrUnsupportedReduction)
		}
		shape := a.Shape().Clone()
		if len(dims) == 0 {
			for i := range shape {
				shape[i] = 1
			}
		}
		for _, d := range dims {
			if d < 0 {
				d += len(shape)
			}
			if d < 0 || d >= len(shape) {
				return nil, fmt.Errorf("%w: %d for shape %v", ErrInvalidDim, d, a.Shape())
			}
			shape[d] = 1
		}
		out = zeros(shape)
		out.Fill(start)
		forEachCoord(a.Shape(), func(coord []int) {
			target := project(coord, shape)
			out.Set(fn(out.At(target...), a.At(coord...)), target...)
		})
		return out, nil
	}
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.mustZip(a, b, func(x, y float64) float64 { return x + y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.mustZip(a, b, func(x, y float64) float64 { return x * y })
}

// LT returns 1 where a < b.
func (m *MockBackend) LT(a, b *RawTensor) *RawTensor {
	return m.mustZip(a, b, func(x, y float64) float64 { return boolToFloat(x < y) })
}

// EQ returns 1 where a == b.
func (m *MockBackend) EQ(a, b *RawTensor) *RawTensor {
	return m.mustZip(a, b, func(x, y float64) float64 { return boolToFloat(x == y) })
}

// Neg negates every element.
func (m *MockBackend) Neg(x *RawTensor) *RawTensor {
	return m.mustMap(x, func(v float64) float64 { return -v })
}

// Inv computes 1/x.
func (m *MockBackend) Inv(x *RawTensor) *RawTensor {
	return m.mustMap(x, func(v float64) float64 { return 1 / v })
}

// Exp computes e^x.
func (m *MockBackend) Exp(x *RawTensor) *RawTensor {
	return m.mustMap(x, math.Exp)
}

// Log computes ln(x).
func (m *MockBackend) Log(x *RawTensor) *RawTensor {
	return m.mustMap(x, math.Log)
}

// Sigmoid computes 1/(1+e^-x).
func (m *MockBackend) Sigmoid(x *RawTensor) *RawTensor {
	return m.mustMap(x, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// ReLU computes max(0, x).
func (m *MockBackend) ReLU(x *RawTensor) *RawTensor {
	return m.mustMap(x, func(v float64) float64 { return math.Max(0, v) })
}

// LogBack computes d/x.
func (m *MockBackend) LogBack(x, d *RawTensor) *RawTensor {
	return m.mustZip(x, d, func(v, g float64) float64 { return g / v })
}

// InvBack computes -d/x².
func (m *MockBackend) InvBack(x, d *RawTensor) *RawTensor {
	return m.mustZip(x, d, func(v, g float64) float64 { return -g / (v * v) })
}

// ReLUBack passes d where x > 0.
func (m *MockBackend) ReLUBack(x, d *RawTensor) *RawTensor {
	return m.mustZip(x, d, func(v, g float64) float64 { return g * boolToFloat(v > 0) })
}

// SigmoidBack computes σ(x)(1-σ(x))*d.
func (m *MockBackend) SigmoidBack(x, d *RawTensor) *RawTensor {
	return m.mustZip(x, d, func(v, g float64) float64 {
		s := 1 / (1 + math.Exp(-v))
		return g * s * (1 - s)
	})
}

// ExpBack computes e^x*d.
func (m *MockBackend) ExpBack(x, d *RawTensor) *RawTensor {
	return m.mustZip(x, d, func(v, g float64) float64 { return g * math.Exp(v) })
}

// Sum sums along dims.
func (m *MockBackend) Sum(x *RawTensor, dims ...int) *RawTensor {
	out, err := m.Reduce(func(a, b float64) float64 { return a + b }, 0)(x, dims, nil)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}
	return out
}

// Permute reorders dimensions.
func (m *MockBackend) Permute(x *RawTensor, order ...int) *RawTensor {
	out, err := x.Permute(order...)
	if err != nil {
		panic(fmt.Sprintf("permute: %v", err))
	}
	return out
}

// View reshapes a copy of x.
func (m *MockBackend) View(x *RawTensor, shape Shape) *RawTensor {
	out, err := x.Contiguous().View(shape...)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return out
}

func (m *MockBackend) mustMap(x *RawTensor, fn UnaryFunc) *RawTensor {
	out, err := m.Map(fn)(x, nil)
	if err != nil {
		panic(err)
	}
	return out
}

func (m *MockBackend) mustZip(a, b *RawTensor, fn BinaryFunc) *RawTensor {
	out, err := m.Zip(fn)(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

// broadcastInto checks that shape broadcasts into target without growing it.
func broadcastInto(shape, target Shape) (Shape, error) {
	union, err := BroadcastShape(target, shape)
	if err != nil {
		return nil, err
	}
	if !union.Equal(target) {
		return nil, fmt.Errorf("%w: %v does not broadcast into %v", ErrIncompatibleShapes, shape, target)
	}
	return union, nil
}

// forEachCoord visits every coordinate of shape in row-major order.
func forEachCoord(shape Shape, f func(coord []int)) {
	coord := make([]int, len(shape))
	for n := shape.NumElements(); n > 0; n-- {
		f(coord)
		for d := len(shape) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
}

// project maps a coordinate of a broadcast shape onto a trailing-aligned shape.
func project(coord []int, shape Shape) []int {
	offset := len(coord) - len(shape)
	out := make([]int, len(shape))
	for i := range shape {
		out[i] = coord[i+offset] % shape[i]
	}
	return out
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
