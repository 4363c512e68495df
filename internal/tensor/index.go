package tensor

import "fmt"

// IndexToPosition converts a logical multi-dimensional index into a flat
// storage offset: the dot product of index and strides.
//
// Panics if index and strides differ in length.
func IndexToPosition(index, strides []int) int {
	if len(index) != len(strides) {
		panic(fmt.Sprintf("index to position: index has %d dims, strides have %d", len(index), len(strides)))
	}

	pos := 0
	for i, idx := range index {
		pos += idx * strides[i]
	}
	return pos
}

// Count converts a row-major ordinal in [0, shape.NumElements()) into its
// logical index, written into outIndex.
//
// With canonical strides, IndexToPosition(index, shape.ComputeStrides())
// returns the ordinal again.
//
// Panics if outIndex and shape differ in length.
func Count(ordinal int, shape Shape, outIndex []int) {
	if len(outIndex) != len(shape) {
		panic(fmt.Sprintf("count: out index has %d dims, shape has %d", len(outIndex), len(shape)))
	}

	for d := len(shape) - 1; d >= 0; d-- {
		outIndex[d] = ordinal % shape[d]
		ordinal /= shape[d]
	}
}

// BroadcastIndex maps an index valid for bigShape (a broadcast result) onto
// the index of a smaller operand with the given shape.
//
// The operand shape is aligned to the trailing dimensions of bigShape.
// Dimensions of size 1 always read position 0; the rest copy the matching
// component of bigIndex. Only outIndex is written.
//
// Panics if shape has more dimensions than bigShape, or if the index buffers
// do not match their shapes.
func BroadcastIndex(bigIndex []int, bigShape, shape Shape, outIndex []int) {
	if len(bigIndex) != len(bigShape) {
		panic(fmt.Sprintf("broadcast index: big index has %d dims, big shape has %d", len(bigIndex), len(bigShape)))
	}
	if len(outIndex) != len(shape) {
		panic(fmt.Sprintf("broadcast index: out index has %d dims, shape has %d", len(outIndex), len(shape)))
	}
	offset := len(bigShape) - len(shape)
	if offset < 0 {
		panic(fmt.Sprintf("broadcast index: shape %v has more dims than %v", shape, bigShape))
	}

	for i, dim := range shape {
		if dim == 1 {
			outIndex[i] = 0
		} else {
			outIndex[i] = bigIndex[i+offset]
		}
	}
}
