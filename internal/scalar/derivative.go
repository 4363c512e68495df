package scalar

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	floats "gonum.org/v1/gonum/floats/scalar"
)

// ErrDerivativeMismatch is returned by DerivativeCheck when a backward
// derivative disagrees with its central-difference estimate.
var ErrDerivativeMismatch = errors.New("derivative mismatch")

// DefaultEpsilon is the step used by DerivativeCheck.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the partial derivative of f with respect to
// vals[arg] as (f(..., x+ε, ...) - f(..., x-ε, ...)) / 2ε.
func CentralDifference(f func(vals ...float64) float64, vals []float64, arg int, epsilon float64) float64 {
	if arg < 0 || arg >= len(vals) {
		panic(fmt.Sprintf("central difference: arg %d out of range for %d values", arg, len(vals)))
	}

	shifted := make([]float64, len(vals))
	partial := func(x float64) float64 {
		copy(shifted, vals)
		shifted[arg] = x
		return f(shifted...)
	}
	return fd.Derivative(partial, vals[arg], &fd.Settings{
		Formula: fd.Central,
		Step:    epsilon,
	})
}

// DerivativeCheck runs f forward and backward on scalars and compares each
// input's derivative against CentralDifference, with an absolute or relative
// tolerance of 1e-2.
//
// The scalars' Derivative fields are reset before the check.
func DerivativeCheck(f func(in ...*Scalar) *Scalar, scalars ...*Scalar) error {
	vals := make([]float64, len(scalars))
	for i, s := range scalars {
		s.ZeroGrad()
		vals[i] = s.Data
	}
	f(scalars...).Backward()

	eval := func(v ...float64) float64 {
		in := make([]*Scalar, len(v))
		for i, x := range v {
			in[i] = New(x)
		}
		return f(in...).Data
	}

	for i, s := range scalars {
		want := CentralDifference(eval, vals, i, DefaultEpsilon)
		if !floats.EqualWithinAbsOrRel(s.Derivative, want, 1e-2, 1e-2) {
			return fmt.Errorf("%w: arg %d (%v): backward %g, central difference %g",
				ErrDerivativeMismatch, i, s, s.Derivative, want)
		}
	}
	return nil
}
