package scalar

import (
	"fmt"

	"github.com/born-ml/stride/internal/operators"
)

// Function is a differentiable operation on float64 values.
type Function interface {
	// Forward computes the result, saving anything Backward needs in ctx.
	Forward(ctx *Context, inputs ...float64) float64

	// Backward returns dOut times the partial derivative for each input.
	Backward(ctx *Context, dOut float64) []float64
}

// Context carries values from Forward to Backward.
type Context struct {
	saved []float64
}

// SaveForBackward stores values for the backward pass.
func (c *Context) SaveForBackward(values ...float64) {
	c.saved = append(c.saved[:0], values...)
}

// SavedValues returns the values stored by SaveForBackward.
func (c *Context) SavedValues() []float64 {
	return c.saved
}

// Apply runs fn forward on the inputs' data and records the history needed
// to differentiate through it.
func Apply(fn Function, inputs ...*Scalar) *Scalar {
	vals := make([]float64, len(inputs))
	for i, in := range inputs {
		vals[i] = in.Data
	}

	ctx := &Context{}
	out := New(fn.Forward(ctx, vals...))
	out.history = &History{
		Fn:     fn,
		Ctx:    ctx,
		Inputs: append([]*Scalar(nil), inputs...),
	}
	return out
}

// Built-in functions.
var (
	Add     Function = add{}
	Sub     Function = sub{}
	Mul     Function = mul{}
	Inv     Function = inv{}
	Neg     Function = neg{}
	Log     Function = logFn{}
	Exp     Function = expFn{}
	Sigmoid Function = sigmoid{}
	ReLU    Function = relu{}
	LT      Function = lessThan{}
	EQ      Function = equal{}
)

type add struct{}

func (add) Forward(_ *Context, in ...float64) float64 {
	return operators.Add(in[0], in[1])
}

func (add) Backward(_ *Context, d float64) []float64 {
	return []float64{d, d}
}

type sub struct{}

func (sub) Forward(_ *Context, in ...float64) float64 {
	return operators.Add(in[0], operators.Neg(in[1]))
}

func (sub) Backward(_ *Context, d float64) []float64 {
	return []float64{d, -d}
}

type mul struct{}

func (mul) Forward(ctx *Context, in ...float64) float64 {
	ctx.SaveForBackward(in[0], in[1])
	return operators.Mul(in[0], in[1])
}

func (mul) Backward(ctx *Context, d float64) []float64 {
	s := ctx.SavedValues()
	return []float64{s[1] * d, s[0] * d}
}

type inv struct{}

func (inv) Forward(ctx *Context, in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.Inv(in[0])
}

func (inv) Backward(ctx *Context, d float64) []float64 {
	return []float64{operators.InvBack(ctx.SavedValues()[0], d)}
}

type neg struct{}

func (neg) Forward(_ *Context, in ...float64) float64 {
	return operators.Neg(in[0])
}

func (neg) Backward(_ *Context, d float64) []float64 {
	return []float64{-d}
}

type logFn struct{}

func (logFn) Forward(ctx *Context, in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.Log(in[0])
}

func (logFn) Backward(ctx *Context, d float64) []float64 {
	return []float64{operators.LogBack(ctx.SavedValues()[0], d)}
}

type expFn struct{}

func (expFn) Forward(ctx *Context, in ...float64) float64 {
	out := operators.Exp(in[0])
	ctx.SaveForBackward(out)
	return out
}

// d/dx e^x = e^x, saved from Forward.
func (expFn) Backward(ctx *Context, d float64) []float64 {
	return []float64{ctx.SavedValues()[0] * d}
}

type sigmoid struct{}

func (sigmoid) Forward(ctx *Context, in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.Sigmoid(in[0])
}

func (sigmoid) Backward(ctx *Context, d float64) []float64 {
	return []float64{operators.SigmoidBack(ctx.SavedValues()[0], d)}
}

type relu struct{}

func (relu) Forward(ctx *Context, in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.ReLU(in[0])
}

func (relu) Backward(ctx *Context, d float64) []float64 {
	return []float64{operators.ReLUBack(ctx.SavedValues()[0], d)}
}

type lessThan struct{}

func (lessThan) Forward(_ *Context, in ...float64) float64 {
	return operators.LT(in[0], in[1])
}

func (lessThan) Backward(_ *Context, _ float64) []float64 {
	return []float64{0, 0}
}

type equal struct{}

func (equal) Forward(_ *Context, in ...float64) float64 {
	return operators.EQ(in[0], in[1])
}

func (equal) Backward(_ *Context, _ float64) []float64 {
	return []float64{0, 0}
}

// checkArity panics when a Function returns the wrong number of gradients.
func checkArity(fn Function, got, want int) {
	if got != want {
		panic(fmt.Sprintf("backward: %T returned %d gradients for %d inputs", fn, got, want))
	}
}
