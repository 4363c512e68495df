package tensor

// UnaryFunc maps one float to another.
type UnaryFunc func(x float64) float64

// BinaryFunc combines two floats into one.
type BinaryFunc func(a, b float64) float64

// MapFunc applies a unary function elementwise to a.
// If out is nil a zero tensor shaped like a is allocated; otherwise out is
// filled in place and must be shaped so that a broadcasts into it.
type MapFunc func(a, out *RawTensor) (*RawTensor, error)

// ZipFunc applies a binary function elementwise to a and b, broadcasting both
// operands to their common shape.
type ZipFunc func(a, b *RawTensor) (*RawTensor, error)

// ReduceFunc folds a along dims, collapsing each to size 1.
// Negative dims count from the end; no dims means every dimension.
// If out is non-nil it is used as the destination and its existing values
// seed the fold; dims are then taken from out's shape instead.
type ReduceFunc func(a *RawTensor, dims []int, out *RawTensor) (*RawTensor, error)

// Ops is the uniform higher-order operation set that every backend exposes.
// Differentiable functions are built from these three constructors.
type Ops interface {
	// Map returns an elementwise unary operation.
	Map(fn UnaryFunc) MapFunc

	// Zip returns an elementwise binary operation with broadcasting.
	Zip(fn BinaryFunc) ZipFunc

	// Reduce returns a reduction seeded with start.
	Reduce(fn BinaryFunc, start float64) ReduceFunc
}

// Backend defines the interface that all compute backends must implement.
// Named operations are compositions of Ops with the float functions in
// internal/operators; they panic on shape errors like the rest of the
// tensor-level API.
type Backend interface {
	Ops

	// Element-wise binary operations (broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	LT(a, b *RawTensor) *RawTensor // 1.0 where a < b
	EQ(a, b *RawTensor) *RawTensor // 1.0 where a == b

	// Element-wise unary operations
	Neg(x *RawTensor) *RawTensor
	Inv(x *RawTensor) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor

	// Derivatives: d scaled by the derivative of the named op at x
	LogBack(x, d *RawTensor) *RawTensor
	InvBack(x, d *RawTensor) *RawTensor
	ReLUBack(x, d *RawTensor) *RawTensor
	SigmoidBack(x, d *RawTensor) *RawTensor
	ExpBack(x, d *RawTensor) *RawTensor

	// Reduction: sum along dims, keeping them as size 1
	Sum(x *RawTensor, dims ...int) *RawTensor

	// Views
	Permute(x *RawTensor, order ...int) *RawTensor
	View(x *RawTensor, shape Shape) *RawTensor

	// Metadata
	Name() string
}
