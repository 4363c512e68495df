package autodiff_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/born-ml/stride/internal/autodiff"
	"github.com/born-ml/stride/internal/backend/cpu"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

type backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func recording(t *testing.T) backend {
	t.Helper()
	b := autodiff.New(cpu.New())
	b.Tape().StartRecording()
	return b
}

func fromSlice(t *testing.T, b backend, data []float64, shape ...int) *tensor.Tensor[backend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, b)
	require.NoError(t, err)
	return x
}

func TestAutodiffBackend_Name(t *testing.T) {
	assert.Equal(t, "Autodiff(CPU)", autodiff.New(cpu.New()).Name())
}

func TestTape_Recording(t *testing.T) {
	b := autodiff.New(cpu.New())
	tape := b.Tape()

	assert.False(t, tape.IsRecording())
	tape.StartRecording()
	assert.True(t, tape.IsRecording())
	tape.StopRecording()
	assert.False(t, tape.IsRecording())
}

func TestTape_Clear(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2}, 2)
	x.Add(x)
	require.Equal(t, 1, b.Tape().NumOps())

	b.Tape().Clear()
	assert.Equal(t, 0, b.Tape().NumOps())
	assert.True(t, b.Tape().IsRecording())
}

func TestTape_NotRecording(t *testing.T) {
	b := autodiff.New(cpu.New())
	x := fromSlice(t, b, []float64{1, 2}, 2)
	x.Mul(x).Sum()
	assert.Equal(t, 0, b.Tape().NumOps())

	assert.Panics(t, func() { autodiff.Backward(x, b) })
}

func TestBackward_Square(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{3}, 1)

	grads := autodiff.Backward(x.Mul(x), b)
	assert.Equal(t, []float64{6}, grads[x.Raw()].Values())
}

func TestBackward_DetachStopsGradient(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{3}, 1)

	grads := autodiff.Backward(x.Detach().Mul(x), b)
	assert.Equal(t, []float64{3}, grads[x.Raw()].Values())
}

func TestBackward_BroadcastAdd(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3, 4}, 2, 2)
	y := fromSlice(t, b, []float64{10, 20}, 2, 1)

	loss := x.Add(y).Sum()
	grads := autodiff.Backward(loss, b)

	assert.Equal(t, 70.0, loss.Item())
	assert.Equal(t, tensor.Shape{2, 2}, grads[x.Raw()].Shape())
	assert.Equal(t, []float64{1, 1, 1, 1}, grads[x.Raw()].Values())
	assert.Equal(t, tensor.Shape{2, 1}, grads[y.Raw()].Shape())
	assert.Equal(t, []float64{2, 2}, grads[y.Raw()].Values())
}

func TestBackward_BroadcastMul(t *testing.T) {
	b := recording(t)
	row := fromSlice(t, b, []float64{1, 2, 3}, 3)
	col := fromSlice(t, b, []float64{10, 100}, 2, 1)

	grads := autodiff.Backward(row.Mul(col).Sum(), b)

	// d/d row[j] = Σ_i col[i], d/d col[i] = Σ_j row[j]
	assert.Equal(t, tensor.Shape{3}, grads[row.Raw()].Shape())
	assert.Equal(t, []float64{110, 110, 110}, grads[row.Raw()].Values())
	assert.Equal(t, []float64{6, 6}, grads[col.Raw()].Values())
}

func TestBackward_UnaryDerivatives(t *testing.T) {
	in := []float64{-1.5, -0.5, 0.25, 1, 2}
	sigmoid := func(v float64) float64 { return 1 / (1 + math.Exp(-v)) }

	tests := []struct {
		name string
		f    func(x *tensor.Tensor[backend]) *tensor.Tensor[backend]
		want func(v float64) float64
	}{
		{"neg", (*tensor.Tensor[backend]).Neg, func(float64) float64 { return -1 }},
		{"exp", (*tensor.Tensor[backend]).Exp, math.Exp},
		{"sigmoid", (*tensor.Tensor[backend]).Sigmoid, func(v float64) float64 { return sigmoid(v) * (1 - sigmoid(v)) }},
		{"relu", (*tensor.Tensor[backend]).ReLU, func(v float64) float64 {
			if v > 0 {
				return 1
			}
			return 0
		}},
		{"inv", (*tensor.Tensor[backend]).Inv, func(v float64) float64 { return -1 / (v * v) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := recording(t)
			x := fromSlice(t, b, in, len(in))
			grads := autodiff.Backward(tt.f(x).Sum(), b)

			want := make([]float64, len(in))
			for i, v := range in {
				want[i] = tt.want(v)
			}
			assert.True(t, floats.EqualApprox(want, grads[x.Raw()].Values(), 1e-9),
				"got %v want %v", grads[x.Raw()].Values(), want)
		})
	}
}

func TestBackward_Log(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{0.5, 1, 4}, 3)

	grads := autodiff.Backward(x.Log().Sum(), b)
	assert.True(t, floats.EqualApprox([]float64{2, 1, 0.25}, grads[x.Raw()].Values(), 1e-5))
}

func TestBackward_Quotient(t *testing.T) {
	// f(x, y) = Σ (x - y) / y
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3}, 3)
	y := fromSlice(t, b, []float64{2, 4, 8}, 3)

	grads := autodiff.Backward(x.Sub(y).Div(y).Sum(), b)

	// ∂f/∂x = 1/y, ∂f/∂y = -x/y²
	assert.True(t, floats.EqualApprox([]float64{0.5, 0.25, 0.125}, grads[x.Raw()].Values(), 1e-12))
	assert.True(t, floats.EqualApprox([]float64{-0.25, -0.125, -3.0 / 64}, grads[y.Raw()].Values(), 1e-12))
}

func TestBackward_Permute(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	w := fromSlice(t, b, []float64{1, 2, 3, 4, 5, 6}, 3, 2)

	grads := autodiff.Backward(x.Transpose().Mul(w).Sum(), b)

	gx := grads[x.Raw()]
	assert.Equal(t, tensor.Shape{2, 3}, gx.Shape())
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, gx.Values())
}

func TestBackward_View(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3, 4}, 2, 2)
	c := fromSlice(t, b, []float64{5, 6, 7, 8}, 4)

	grads := autodiff.Backward(x.View(4).Mul(c).Sum(), b)

	assert.Equal(t, tensor.Shape{2, 2}, grads[x.Raw()].Shape())
	assert.Equal(t, []float64{5, 6, 7, 8}, grads[x.Raw()].Values())
}

func TestBackward_SumDims(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	w := fromSlice(t, b, []float64{10, 20}, 2, 1)

	// rows: [2,1], then weighted
	grads := autodiff.Backward(x.Sum(1).Mul(w).Sum(), b)
	assert.Equal(t, []float64{10, 10, 10, 20, 20, 20}, grads[x.Raw()].Values())
}

func TestBackward_Mean(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 2, 3, 4}, 4)

	grads := autodiff.Backward(x.Mean(), b)
	assert.True(t, floats.EqualApprox([]float64{0.25, 0.25, 0.25, 0.25}, grads[x.Raw()].Values(), 1e-12))
}

func TestBackward_ComparisonsHaveZeroGradient(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{1, 5}, 2)
	y := fromSlice(t, b, []float64{3, 3}, 2)

	grads := autodiff.Backward(x.LT(y).Add(x.EQ(y)).Sum(), b)
	assert.Equal(t, []float64{0, 0}, grads[x.Raw()].Values())
	assert.Equal(t, []float64{0, 0}, grads[y.Raw()].Values())
}

func TestBackward_RestoresRecording(t *testing.T) {
	b := recording(t)
	x := fromSlice(t, b, []float64{2}, 1)
	y := x.Mul(x)
	n := b.Tape().NumOps()

	autodiff.Backward(y, b)
	assert.Equal(t, n, b.Tape().NumOps())
	assert.True(t, b.Tape().IsRecording())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	b := autodiff.New(cpu.New(), autodiff.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	b.Tape().StartRecording()

	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, b)
	require.NoError(t, err)
	autodiff.Backward(x.Exp().Sum(), b)

	assert.Contains(t, buf.String(), "backward pass")
	assert.Contains(t, buf.String(), `"ops":2`)
}
