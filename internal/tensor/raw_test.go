package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, []int{3, 1}, raw.Strides())
	assert.Len(t, raw.Storage(), 6)
	assert.True(t, raw.IsContiguous())

	_, err = NewRaw(Shape{2, -1})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	raw, err := RawFromSlice(data, Shape{2, 2})
	require.NoError(t, err)

	// The slice is copied
	data[0] = 100
	assert.Equal(t, 1.0, raw.At(0, 0))
	assert.Equal(t, 4.0, raw.At(1, 1))

	_, err = RawFromSlice(data, Shape{3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawTensor_Tuple(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	storage, shape, strides := raw.Tuple()
	assert.Equal(t, []float64{1, 2, 3}, storage)
	assert.Equal(t, Shape{3}, shape)
	assert.Equal(t, []int{1}, strides)
}

func TestRawTensor_AtSet(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3})
	require.NoError(t, err)

	raw.Set(5, 1, 2)
	assert.Equal(t, 5.0, raw.At(1, 2))
	assert.Equal(t, 5.0, raw.Storage()[5])

	_, err = raw.Position(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = raw.Position(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Panics(t, func() { raw.At(0, 3) })
}

func TestRawTensor_Permute(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr, err := raw.Permute(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []int{1, 3}, tr.Strides())
	assert.False(t, tr.IsContiguous())
	assert.Equal(t, 4.0, tr.At(0, 1))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values())

	// Views share storage
	tr.Set(42, 2, 1)
	assert.Equal(t, 42.0, raw.At(1, 2))

	_, err = raw.Permute(0, 0)
	assert.ErrorIs(t, err, ErrInvalidDim)
	_, err = raw.Permute(0)
	assert.ErrorIs(t, err, ErrInvalidDim)
}

func TestRawTensor_View(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	v, err := raw.View(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, v.Shape())
	assert.Equal(t, 3.0, v.At(1, 0))

	v.Set(9, 0, 0)
	assert.Equal(t, 9.0, raw.At(0, 0), "view shares storage")

	lead, err := raw.View(1, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6, 3, 1}, lead.Strides())

	_, err = raw.View(4)
	assert.ErrorIs(t, err, ErrIncompatibleShapes)

	tr, err := raw.Permute(1, 0)
	require.NoError(t, err)
	_, err = tr.View(6)
	assert.ErrorIs(t, err, ErrNotContiguous)
}

func TestRawTensor_IsContiguousIgnoresUnitDims(t *testing.T) {
	raw, err := NewRawStrided(make([]float64, 3), Shape{1, 3}, []int{7, 1})
	require.NoError(t, err)
	assert.True(t, raw.IsContiguous())
}

func TestNewRawStrided(t *testing.T) {
	storage := []float64{1, 2, 3, 4, 5, 6}

	// Column view of a 2x3 matrix
	col, err := NewRawStrided(storage, Shape{2}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, col.Values())

	_, err = NewRawStrided(storage, Shape{3}, []int{3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewRawStrided(storage, Shape{2, 3}, []int{3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRawTensor_FillStrided(t *testing.T) {
	storage := make([]float64, 6)
	col, err := NewRawStrided(storage, Shape{2}, []int{3})
	require.NoError(t, err)

	col.Fill(7)
	assert.Equal(t, []float64{7, 0, 0, 7, 0, 0}, storage)
}

func TestRawTensor_CloneIsIndependent(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	tr, err := raw.Permute(1, 0)
	require.NoError(t, err)

	c := tr.Clone()
	assert.True(t, c.IsContiguous())
	assert.Equal(t, []float64{1, 3, 2, 4}, c.Storage())

	c.Set(0, 0, 0)
	assert.Equal(t, 1.0, raw.At(0, 0))
}

func TestRawTensor_String(t *testing.T) {
	raw, err := RawFromSlice([]float64{1, 2.5}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, "RawTensor[2][1 2.5]", raw.String())

	big, err := NewRaw(Shape{20})
	require.NoError(t, err)
	assert.Contains(t, big.String(), "(12 more)")
}

func TestRawTensor_Indices(t *testing.T) {
	r := zeros(Shape{2, 2})
	var got [][]int
	for idx := range r.Indices() {
		got = append(got, append([]int(nil), idx...))
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, got)

	n := 0
	for range r.Indices() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
