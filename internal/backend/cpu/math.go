package cpu

import (
	"fmt"

	"github.com/born-ml/stride/internal/operators"
	"github.com/born-ml/stride/internal/tensor"
)

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("add", operators.Add, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("mul", operators.Mul, a, b)
}

// LT returns 1.0 where a < b and 0.0 elsewhere.
func (cpu *CPUBackend) LT(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("lt", operators.LT, a, b)
}

// EQ returns 1.0 where a == b and 0.0 elsewhere.
func (cpu *CPUBackend) EQ(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("eq", operators.EQ, a, b)
}

// Neg computes -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("neg", operators.Neg, x)
}

// Inv computes 1/x.
func (cpu *CPUBackend) Inv(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("inv", operators.Inv, x)
}

// Exp computes e^x.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("exp", operators.Exp, x)
}

// Log computes ln(x + operators.Epsilon).
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("log", operators.Log, x)
}

// Sigmoid computes 1/(1+e^-x).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("sigmoid", operators.Sigmoid, x)
}

// ReLU computes max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustMap("relu", operators.ReLU, x)
}

// LogBack returns d/x elementwise: the gradient of Log scaled by d.
func (cpu *CPUBackend) LogBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("log_back", operators.LogBack, x, d)
}

// InvBack returns -d/x² elementwise.
func (cpu *CPUBackend) InvBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("inv_back", operators.InvBack, x, d)
}

// ReLUBack passes d through where x > 0.
func (cpu *CPUBackend) ReLUBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("relu_back", operators.ReLUBack, x, d)
}

// SigmoidBack returns sigmoid(x)*(1-sigmoid(x))*d elementwise.
func (cpu *CPUBackend) SigmoidBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("sigmoid_back", operators.SigmoidBack, x, d)
}

// ExpBack returns e^x*d elementwise.
func (cpu *CPUBackend) ExpBack(x, d *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mustZip("exp_back", operators.ExpBack, x, d)
}

// Sum adds elements along dims, keeping each reduced dim with size 1.
// No dims sums everything.
//
// Example:
//
//	x, _ := tensor.RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := backend.Sum(x, 1)  // shape: [2, 1], values: [6 15]
//	z := backend.Sum(x)     // shape: [1, 1], values: [21]
func (cpu *CPUBackend) Sum(x *tensor.RawTensor, dims ...int) *tensor.RawTensor {
	out, err := cpu.Reduce(operators.Add, 0)(x, dims, nil)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}
	return out
}

// Permute reorders dimensions without copying.
func (cpu *CPUBackend) Permute(x *tensor.RawTensor, order ...int) *tensor.RawTensor {
	out, err := x.Permute(order...)
	if err != nil {
		panic(fmt.Sprintf("permute: %v", err))
	}
	return out
}

// View reshapes x. Contiguous tensors share storage with the result;
// others are copied first.
func (cpu *CPUBackend) View(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if !x.IsContiguous() {
		x = x.Contiguous()
	}
	out, err := x.View(shape...)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return out
}

func (cpu *CPUBackend) mustMap(name string, fn tensor.UnaryFunc, x *tensor.RawTensor) *tensor.RawTensor {
	out, err := cpu.Map(fn)(x, nil)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return out
}

func (cpu *CPUBackend) mustZip(name string, fn tensor.BinaryFunc, a, b *tensor.RawTensor) *tensor.RawTensor {
	out, err := cpu.Zip(fn)(a, b)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return out
}
