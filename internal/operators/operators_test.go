package operators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOperators(t *testing.T) {
	assert.Equal(t, 6.0, Mul(2, 3))
	assert.Equal(t, 5.0, Add(2, 3))
	assert.Equal(t, -2.0, Neg(2))
	assert.Equal(t, 2.0, ID(2))
	assert.Equal(t, 1.0, LT(1, 2))
	assert.Equal(t, 0.0, LT(2, 2))
	assert.Equal(t, 1.0, EQ(2, 2))
	assert.Equal(t, 0.0, EQ(2, 3))
	assert.Equal(t, 3.0, Max(3, -1))
	assert.True(t, IsClose(1, 1.001))
	assert.False(t, IsClose(1, 1.1))
	assert.Equal(t, 0.25, Inv(4))
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	for _, x := range []float64{-50, -3, -0.5, 0.5, 3, 50} {
		s := Sigmoid(x)
		assert.True(t, s >= 0 && s <= 1, "sigmoid(%v) = %v", x, s)
		assert.InDelta(t, 1-s, Sigmoid(-x), 1e-12, "symmetry at %v", x)
	}
	assert.False(t, math.IsNaN(Sigmoid(-1000)))
}

func TestReLU(t *testing.T) {
	assert.Equal(t, 0.0, ReLU(-3))
	assert.Equal(t, 0.0, ReLU(0))
	assert.Equal(t, 3.0, ReLU(3))
}

func TestLogExp(t *testing.T) {
	assert.InDelta(t, 0.0, Log(1-Epsilon), 1e-12)
	assert.False(t, math.IsInf(Log(0), -1))
	assert.InDelta(t, math.E, Exp(1), 1e-12)
}

func TestBackFunctions(t *testing.T) {
	assert.InDelta(t, 2.0/(4+Epsilon), LogBack(4, 2), 1e-12)
	assert.Equal(t, -0.5, InvBack(2, 2))
	assert.Equal(t, 3.0, ReLUBack(1, 3))
	assert.Equal(t, 0.0, ReLUBack(-1, 3))
	assert.Equal(t, 0.25, SigmoidBack(0, 1))
	assert.InDelta(t, 2*math.E, ExpBack(1, 2), 1e-12)
}

func TestListHelpers(t *testing.T) {
	assert.Equal(t, []float64{-1, -2}, NegList([]float64{1, 2}))
	assert.Equal(t, []float64{4, 6}, AddLists([]float64{1, 2}, []float64{3, 4, 5}))
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 24.0, Prod([]float64{1, 2, 3, 4}))
	assert.Equal(t, 1.0, Prod(nil))
	assert.Equal(t, []float64{1, 4, 9}, Map(func(x float64) float64 { return x * x })([]float64{1, 2, 3}))
	assert.Equal(t, 6.0, Reduce(Max, math.Inf(-1))([]float64{3, 6, 1}))
}
