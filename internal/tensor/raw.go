package tensor

import (
	"fmt"
	"iter"
	"strings"
)

// RawTensor is the low-level tensor representation: flat float64 storage
// interpreted through a shape and per-dimension strides.
//
// Strides are tracked independently of the shape so that views such as
// Permute can reinterpret the same storage without copying. Views share
// storage with the tensor they were created from.
type RawTensor struct {
	storage []float64 // Flat storage, possibly shared with other views
	shape   Shape     // Tensor dimensions
	stride  []int     // Memory strides
}

// NewRaw creates a zero-filled RawTensor with row-major strides.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &RawTensor{
		storage: make([]float64, shape.NumElements()),
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
	}, nil
}

// zeros creates a zero-filled RawTensor of the given shape.
// Panics on an invalid shape.
func zeros(shape Shape) *RawTensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return raw
}

// FullRaw creates a RawTensor filled with value.
func FullRaw(shape Shape, value float64) (*RawTensor, error) {
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	raw.Fill(value)
	return raw, nil
}

// RawFromSlice creates a contiguous RawTensor from data.
// The slice is copied.
func RawFromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	storage := make([]float64, len(data))
	copy(storage, data)
	return &RawTensor{
		storage: storage,
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
	}, nil
}

// NewRawStrided wraps existing storage with an explicit shape and strides.
// The storage is not copied. Every reachable position must lie inside storage.
func NewRawStrided(storage []float64, shape Shape, strides []int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: shape %v has %d dims, strides %v have %d",
			ErrInvalidShape, shape, len(shape), strides, len(strides))
	}

	last := 0
	for i, dim := range shape {
		if strides[i] < 0 {
			return nil, fmt.Errorf("%w: negative stride %d at dimension %d", ErrInvalidShape, strides[i], i)
		}
		last += (dim - 1) * strides[i]
	}
	if last >= len(storage) {
		return nil, fmt.Errorf("%w: shape %v with strides %v reaches position %d, storage has %d",
			ErrIndexOutOfRange, shape, strides, last, len(storage))
	}

	stride := make([]int, len(strides))
	copy(stride, strides)
	return &RawTensor{
		storage: storage,
		shape:   shape.Clone(),
		stride:  stride,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Storage returns the flat storage.
//
// WARNING: Direct access to underlying memory shared by all views.
func (r *RawTensor) Storage() []float64 {
	return r.storage
}

// Tuple returns (storage, shape, strides) for kernel consumption.
func (r *RawTensor) Tuple() ([]float64, Shape, []int) {
	return r.storage, r.shape, r.stride
}

// NumElements returns the total number of logical elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Dims returns the tensor's rank.
func (r *RawTensor) Dims() int {
	return len(r.shape)
}

// IsContiguous reports whether the tensor is laid out densely in row-major
// order, so that storage position equals row-major ordinal.
func (r *RawTensor) IsContiguous() bool {
	return r.shape.IsContiguous(r.stride)
}

// Position returns the flat storage offset of a logical index.
func (r *RawTensor) Position(index ...int) (int, error) {
	if len(index) != len(r.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(r.shape), len(index))
	}
	for i, idx := range index {
		if idx < 0 || idx >= r.shape[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfRange, idx, i, r.shape[i])
		}
	}
	return IndexToPosition(index, r.stride), nil
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) At(index ...int) float64 {
	pos, err := r.Position(index...)
	if err != nil {
		panic(fmt.Sprintf("at: %v", err))
	}
	return r.storage[pos]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) Set(value float64, index ...int) {
	pos, err := r.Position(index...)
	if err != nil {
		panic(fmt.Sprintf("set: %v", err))
	}
	r.storage[pos] = value
}

// Fill sets every logical element to value.
func (r *RawTensor) Fill(value float64) {
	if r.IsContiguous() && len(r.storage) == r.NumElements() {
		for i := range r.storage {
			r.storage[i] = value
		}
		return
	}

	index := make([]int, len(r.shape))
	for i := 0; i < r.NumElements(); i++ {
		Count(i, r.shape, index)
		r.storage[IndexToPosition(index, r.stride)] = value
	}
}

// Indices yields every logical index in row-major order.
// The yielded slice is reused between iterations; copy it to keep it.
func (r *RawTensor) Indices() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		index := make([]int, len(r.shape))
		for i := 0; i < r.NumElements(); i++ {
			Count(i, r.shape, index)
			if !yield(index) {
				return
			}
		}
	}
}

// alias returns a new header over the same storage, shape and strides.
func (r *RawTensor) alias() *RawTensor {
	return &RawTensor{
		storage: r.storage,
		shape:   r.shape.Clone(),
		stride:  append([]int(nil), r.stride...),
	}
}

// View reinterprets the storage under a new shape without copying.
// The tensor must be contiguous and the element counts must agree.
func (r *RawTensor) View(shape ...int) (*RawTensor, error) {
	newShape := Shape(shape)
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if !r.IsContiguous() {
		return nil, fmt.Errorf("view %v -> %v: %w", r.shape, newShape, ErrNotContiguous)
	}
	if newShape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("%w: cannot view %v as %v (%d vs %d elements)",
			ErrIncompatibleShapes, r.shape, newShape, r.NumElements(), newShape.NumElements())
	}

	return &RawTensor{
		storage: r.storage,
		shape:   newShape.Clone(),
		stride:  newShape.ComputeStrides(),
	}, nil
}

// Permute reorders the dimensions without copying.
// order must be a permutation of [0, rank).
//
// Example:
//
//	x, _ := tensor.RawFromSlice(data, tensor.Shape{2, 3})
//	xT, _ := x.Permute(1, 0) // Shape: [3, 2], shares storage with x
func (r *RawTensor) Permute(order ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(order) != ndim {
		return nil, fmt.Errorf("%w: permutation %v for %dD tensor", ErrInvalidDim, order, ndim)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	stride := make([]int, ndim)
	for i, ax := range order {
		if ax < 0 || ax >= ndim || seen[ax] {
			return nil, fmt.Errorf("%w: permutation %v for %dD tensor", ErrInvalidDim, order, ndim)
		}
		seen[ax] = true
		shape[i] = r.shape[ax]
		stride[i] = r.stride[ax]
	}

	return &RawTensor{
		storage: r.storage,
		shape:   shape,
		stride:  stride,
	}, nil
}

// Contiguous returns a row-major copy of the logical elements.
func (r *RawTensor) Contiguous() *RawTensor {
	out := zeros(r.shape)
	index := make([]int, len(r.shape))
	for i := range out.storage {
		Count(i, r.shape, index)
		out.storage[i] = r.storage[IndexToPosition(index, r.stride)]
	}
	return out
}

// Clone creates a deep, contiguous copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	return r.Contiguous()
}

// Values returns the logical elements in row-major order.
func (r *RawTensor) Values() []float64 {
	return r.Contiguous().storage
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	vals := r.Values()
	var sb strings.Builder
	sb.WriteString("RawTensor")
	fmt.Fprintf(&sb, "%v[", r.shape)
	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i == 8 && len(vals) > 9 {
			fmt.Fprintf(&sb, "... (%d more)", len(vals)-i)
			break
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
