package tensor

import "fmt"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones(Shape{3, 1}, backend)
//	b := tensor.Ones(Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting: t + (-other).
func (t *Tensor[B]) Sub(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Add(t.raw, t.backend.Neg(other.raw)), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting: t * (1/other).
func (t *Tensor[B]) Div(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.Mul(t.raw, t.backend.Inv(other.raw)), t.backend)
}

// LT returns 1.0 where t < other and 0.0 elsewhere.
func (t *Tensor[B]) LT(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.LT(t.raw, other.raw), t.backend)
}

// GT returns 1.0 where t > other and 0.0 elsewhere.
func (t *Tensor[B]) GT(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.LT(other.raw, t.raw), t.backend)
}

// EQ returns 1.0 where t == other and 0.0 elsewhere.
func (t *Tensor[B]) EQ(other *Tensor[B]) *Tensor[B] {
	return New(t.backend.EQ(t.raw, other.raw), t.backend)
}

// Neg returns -t.
func (t *Tensor[B]) Neg() *Tensor[B] {
	return New(t.backend.Neg(t.raw), t.backend)
}

// Inv returns 1/t.
func (t *Tensor[B]) Inv() *Tensor[B] {
	return New(t.backend.Inv(t.raw), t.backend)
}

// Exp computes the element-wise exponential.
func (t *Tensor[B]) Exp() *Tensor[B] {
	return New(t.backend.Exp(t.raw), t.backend)
}

// Log computes the element-wise natural logarithm.
func (t *Tensor[B]) Log() *Tensor[B] {
	return New(t.backend.Log(t.raw), t.backend)
}

// Sigmoid applies the logistic function element-wise.
func (t *Tensor[B]) Sigmoid() *Tensor[B] {
	return New(t.backend.Sigmoid(t.raw), t.backend)
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor[B]) ReLU() *Tensor[B] {
	return New(t.backend.ReLU(t.raw), t.backend)
}

// Sum sums along dims, keeping each as size 1. No dims sums everything.
//
// Example:
//
//	x := tensor.Ones(Shape{2, 3}, backend)
//	x.Sum(1) // Shape: [2, 1], values [3 3]
//	x.Sum()  // Shape: [1, 1], value 6
func (t *Tensor[B]) Sum(dims ...int) *Tensor[B] {
	return New(t.backend.Sum(t.raw, dims...), t.backend)
}

// Mean averages along dims, keeping each as size 1. No dims averages everything.
func (t *Tensor[B]) Mean(dims ...int) *Tensor[B] {
	sum := t.Sum(dims...)
	n := t.NumElements() / sum.NumElements()
	return sum.Mul(Full(Shape{1}, 1/float64(n), t.backend))
}

// Map applies fn element-wise without recording it for differentiation.
func (t *Tensor[B]) Map(fn UnaryFunc) *Tensor[B] {
	out, err := t.backend.Map(fn)(t.raw, nil)
	if err != nil {
		panic(fmt.Sprintf("map: %v", err))
	}
	return New(out, t.backend)
}

// Zip combines t and other element-wise with fn without recording it for
// differentiation.
func (t *Tensor[B]) Zip(fn BinaryFunc, other *Tensor[B]) *Tensor[B] {
	out, err := t.backend.Zip(fn)(t.raw, other.raw)
	if err != nil {
		panic(fmt.Sprintf("zip: %v", err))
	}
	return New(out, t.backend)
}
