package tensor

// Permute reorders dimensions without copying data.
//
// Example:
//
//	x := tensor.Zeros(Shape{2, 3, 4}, backend)
//	y := x.Permute(2, 0, 1) // Shape: [4, 2, 3]
func (t *Tensor[B]) Permute(order ...int) *Tensor[B] {
	return New(t.backend.Permute(t.raw, order...), t.backend)
}

// Transpose swaps the last two dimensions.
func (t *Tensor[B]) Transpose() *Tensor[B] {
	n := len(t.Shape())
	if n < 2 {
		return t
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	order[n-2], order[n-1] = order[n-1], order[n-2]
	return t.Permute(order...)
}

// View reinterprets the data under a new shape with the same number of
// elements. Non-contiguous tensors are copied first.
func (t *Tensor[B]) View(shape ...int) *Tensor[B] {
	return New(t.backend.View(t.raw, Shape(shape)), t.backend)
}

// Contiguous returns a row-major copy of the tensor.
// The copy is not recorded by autodiff backends; use View to keep gradients flowing.
func (t *Tensor[B]) Contiguous() *Tensor[B] {
	return New(t.raw.Contiguous(), t.backend)
}
