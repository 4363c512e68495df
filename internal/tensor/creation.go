package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	return New(ZerosRaw(shape), b)
}

// ZerosRaw is Zeros for RawTensor. Panics on an invalid shape.
func ZerosRaw(shape Shape) *RawTensor {
	return zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14, backend)
func Full[B Backend](shape Shape, value float64, b B) *Tensor[B] {
	raw := zeros(shape)
	raw.Fill(value)
	return New(raw, b)
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[B Backend](data []float64, shape Shape, b B) (*Tensor[B], error) {
	raw, err := RawFromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// Scalar creates a single-element tensor of shape [1].
func Scalar[B Backend](value float64, b B) *Tensor[B] {
	return Full(Shape{1}, value, b)
}
