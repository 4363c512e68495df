package cpu_test

import (
	"math"
	"testing"

	"github.com/born-ml/stride/internal/backend/cpu"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// The mock backend evaluates coordinate by coordinate and serves as the
// reference for the strided kernels.
func TestNamedOps_MatchMock(t *testing.T) {
	backend := cpu.New()
	mock := tensor.NewMockBackend()

	x := raw(t, []float64{-1.5, -0.25, 0.5, 1, 2, 4}, 2, 3)
	xT, err := x.Permute(1, 0)
	require.NoError(t, err)
	row := raw(t, []float64{3, -1, 0.5}, 3)

	unary := []struct {
		name string
		cpu  func(*tensor.RawTensor) *tensor.RawTensor
		mock func(*tensor.RawTensor) *tensor.RawTensor
	}{
		{"neg", backend.Neg, mock.Neg},
		{"exp", backend.Exp, mock.Exp},
		{"sigmoid", backend.Sigmoid, mock.Sigmoid},
		{"relu", backend.ReLU, mock.ReLU},
		{"inv", backend.Inv, mock.Inv},
	}
	for _, op := range unary {
		for _, in := range []*tensor.RawTensor{x, xT} {
			got, want := op.cpu(in), op.mock(in)
			assert.Equal(t, want.Shape(), got.Shape(), op.name)
			assert.True(t, floats.EqualApprox(want.Values(), got.Values(), 1e-12), op.name)
		}
	}

	binary := []struct {
		name string
		cpu  func(a, b *tensor.RawTensor) *tensor.RawTensor
		mock func(a, b *tensor.RawTensor) *tensor.RawTensor
	}{
		{"add", backend.Add, mock.Add},
		{"mul", backend.Mul, mock.Mul},
		{"lt", backend.LT, mock.LT},
		{"eq", backend.EQ, mock.EQ},
	}
	for _, op := range binary {
		got, want := op.cpu(x, row), op.mock(x, row)
		assert.Equal(t, want.Shape(), got.Shape(), op.name)
		assert.Equal(t, want.Values(), got.Values(), op.name)
	}

	for _, dims := range [][]int{nil, {0}, {1}, {-1}} {
		assert.Equal(t, mock.Sum(xT, dims...).Values(), backend.Sum(xT, dims...).Values(), "sum %v", dims)
	}
}

func TestLog_AddsEpsilon(t *testing.T) {
	backend := cpu.New()
	out := backend.Log(raw(t, []float64{0, 1}, 2))

	assert.InDelta(t, math.Log(1e-6), out.At(0), 1e-9)
	assert.InDelta(t, 0, out.At(1), 1e-5)
}

func TestBackwardOps(t *testing.T) {
	backend := cpu.New()
	x := raw(t, []float64{-1, 0.5, 2}, 3)
	d := raw(t, []float64{2, 2, 2}, 3)

	assert.Equal(t, []float64{0, 2, 2}, backend.ReLUBack(x, d).Values())
	assert.True(t, floats.EqualApprox([]float64{-2, -8, -0.5}, backend.InvBack(x, d).Values(), 1e-12))
	assert.True(t, floats.EqualApprox([]float64{-2, 4, 1}, backend.LogBack(x, d).Values(), 1e-4))
	assert.True(t, floats.EqualApprox(
		[]float64{2 * math.Exp(-1), 2 * math.Exp(0.5), 2 * math.Exp(2)},
		backend.ExpBack(x, d).Values(), 1e-12))

	s := 1 / (1 + math.Exp(-0.5))
	assert.InDelta(t, 2*s*(1-s), backend.SigmoidBack(x, d).At(1), 1e-12)
}

func TestBackwardOps_MatchMock(t *testing.T) {
	backend := cpu.New()
	mock := tensor.NewMockBackend()

	x := raw(t, []float64{-1.5, -0.25, 0.5, 1, 2, 4}, 2, 3)
	d := raw(t, []float64{3, -1, 0.5, 2, 1, -2}, 2, 3)
	xT, err := x.Permute(1, 0)
	require.NoError(t, err)
	dT, err := d.Permute(1, 0)
	require.NoError(t, err)

	ops := []struct {
		name string
		cpu  func(x, d *tensor.RawTensor) *tensor.RawTensor
		mock func(x, d *tensor.RawTensor) *tensor.RawTensor
	}{
		{"log_back", backend.LogBack, mock.LogBack},
		{"inv_back", backend.InvBack, mock.InvBack},
		{"relu_back", backend.ReLUBack, mock.ReLUBack},
		{"sigmoid_back", backend.SigmoidBack, mock.SigmoidBack},
		{"exp_back", backend.ExpBack, mock.ExpBack},
	}
	for _, op := range ops {
		for _, in := range [][2]*tensor.RawTensor{{x, d}, {xT, dT}} {
			got, want := op.cpu(in[0], in[1]), op.mock(in[0], in[1])
			assert.Equal(t, want.Shape(), got.Shape(), op.name)
			assert.True(t, floats.EqualApprox(want.Values(), got.Values(), 1e-4), op.name)
		}
	}
}

func TestViewAndPermute(t *testing.T) {
	backend := cpu.New()
	x := raw(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	xT := backend.Permute(x, 1, 0)
	assert.Equal(t, tensor.Shape{3, 2}, xT.Shape())
	assert.Equal(t, []int{1, 3}, xT.Strides())

	flat := backend.View(xT, tensor.Shape{6})
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, flat.Values())

	shared := backend.View(x, tensor.Shape{3, 2})
	shared.Set(42, 0, 0)
	assert.Equal(t, 42.0, x.At(0, 0))

	assert.Panics(t, func() { backend.View(x, tensor.Shape{4}) })
	assert.Panics(t, func() { backend.Permute(x, 0, 0) })
}
