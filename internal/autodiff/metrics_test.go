package autodiff

import (
	"testing"

	"github.com/born-ml/stride/internal/backend/cpu"
	"github.com/born-ml/stride/internal/tensor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackward_CountsPasses(t *testing.T) {
	b := New(cpu.New())
	b.Tape().StartRecording()
	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, b)
	require.NoError(t, err)
	y := x.Neg()

	before := testutil.ToFloat64(tapeBackward)
	Backward(y, b)
	Backward(y, b)
	assert.Equal(t, before+2, testutil.ToFloat64(tapeBackward))

	// An empty tape computes nothing and is not counted.
	NewGradientTape().Backward(tensor.ZerosRaw(tensor.Shape{1}), b)
	assert.Equal(t, before+2, testutil.ToFloat64(tapeBackward))
}
