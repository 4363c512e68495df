package tensor

import "fmt"

// Tensor is a float64 tensor bound to a computation backend B.
// All arithmetic is delegated to the backend, so wrapping the backend with
// an autodiff decorator records every operation for backpropagation.
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, backend)
//	b, _ := tensor.FromSlice([]float64{10, 20}, Shape{2, 1}, backend)
//	c := a.Add(b) // [[11 12] [23 24]]
type Tensor[B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[B Backend](raw *RawTensor, b B) *Tensor[B] {
	return &Tensor[B]{
		raw:     raw,
		backend: b,
	}
}

// Shape returns the tensor's shape.
func (t *Tensor[B]) Shape() Shape {
	return t.raw.Shape()
}

// Strides returns the tensor's memory strides.
func (t *Tensor[B]) Strides() []int {
	return t.raw.Strides()
}

// NumElements returns the total number of elements.
func (t *Tensor[B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[B]) Backend() B {
	return t.backend
}

// Values returns the logical elements in row-major order (a copy).
func (t *Tensor[B]) Values() []float64 {
	return t.raw.Values()
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[B]) Item() float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("item: only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.raw.Values()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[B]) At(indices ...int) float64 {
	return t.raw.At(indices...)
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[B]) Set(value float64, indices ...int) {
	t.raw.Set(value, indices...)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[B]) String() string {
	return fmt.Sprintf("Tensor%v on %s: %v", t.raw.Shape(), t.backend.Name(), t.raw.Values())
}

// Detach returns a tensor that is not connected to any recorded operation.
// Storage is shared, so in-place writes through either tensor are visible
// to both.
func (t *Tensor[B]) Detach() *Tensor[B] {
	return New(t.raw.alias(), t.backend)
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[B]) Clone() *Tensor[B] {
	return New(t.raw.Clone(), t.backend)
}
