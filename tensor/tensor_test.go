// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/stride/backend/cpu"
	"github.com/born-ml/stride/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

func TestBroadcastShape(t *testing.T) {
	shape, err := tensor.BroadcastShape(tensor.Shape{3, 1}, tensor.Shape{1, 4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4}, shape)

	_, err = tensor.BroadcastShape(tensor.Shape{2, 3}, tensor.Shape{2, 4})
	assert.True(t, errors.Is(err, tensor.ErrIncompatibleShapes))
}

func TestIndexing(t *testing.T) {
	shape := tensor.Shape{2, 3, 4}
	strides := shape.ComputeStrides()
	index := make([]int, 3)

	for ordinal := 0; ordinal < shape.NumElements(); ordinal++ {
		tensor.Count(ordinal, shape, index)
		assert.Equal(t, ordinal, tensor.IndexToPosition(index, strides))
	}

	small := make([]int, 2)
	tensor.BroadcastIndex([]int{1, 2, 3}, shape, tensor.Shape{1, 4}, small)
	assert.Equal(t, []int{0, 3}, small)
}

func TestTensorAPI(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 12, 23, 24}, a.Add(b).Values())
	assert.Equal(t, 10.0, a.Sum().Item())
	assert.Equal(t, []float64{0, 0, 0, 0}, tensor.Zeros(tensor.Shape{4}, backend).Values())
	assert.Equal(t, 2.5, tensor.Scalar(2.5, backend).Item())
}

func TestRawTensorAPI(t *testing.T) {
	storage := []float64{1, 2, 3, 4, 5, 6}
	raw, err := tensor.NewRawStrided(storage, tensor.Shape{3, 2}, []int{1, 3})
	require.NoError(t, err)

	assert.False(t, raw.IsContiguous())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, raw.Values())

	_, err = raw.View(6)
	assert.ErrorIs(t, err, tensor.ErrNotContiguous)
}
