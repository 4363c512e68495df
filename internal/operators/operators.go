// Package operators provides the scalar float functions that tensor and
// scalar autodiff operations are built from, together with their
// derivatives and a few higher-order helpers over float slices.
package operators

import "math"

// Epsilon keeps Log and its derivative finite at zero.
const Epsilon = 1e-6

// Mul returns x * y.
func Mul(x, y float64) float64 { return x * y }

// ID returns x unchanged.
func ID(x float64) float64 { return x }

// Add returns x + y.
func Add(x, y float64) float64 { return x + y }

// Neg returns -x.
func Neg(x float64) float64 { return -x }

// LT returns 1.0 if x < y, else 0.0.
func LT(x, y float64) float64 {
	if x < y {
		return 1
	}
	return 0
}

// EQ returns 1.0 if x == y, else 0.0.
func EQ(x, y float64) float64 {
	if x == y {
		return 1
	}
	return 0
}

// Max returns the larger of x and y.
func Max(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// IsClose reports whether |x - y| < 1e-2.
func IsClose(x, y float64) bool {
	return math.Abs(x-y) < 1e-2
}

// Sigmoid computes 1/(1+e^-x).
// The two branches avoid overflow of e^-x for large negative x.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// ReLU returns x if positive, else 0.
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Log returns ln(x + Epsilon).
func Log(x float64) float64 {
	return math.Log(x + Epsilon)
}

// Exp returns e^x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Inv returns 1/x.
func Inv(x float64) float64 {
	return 1 / x
}

// LogBack returns d * d/dx ln(x + Epsilon).
func LogBack(x, d float64) float64 {
	return d / (x + Epsilon)
}

// InvBack returns d * d/dx (1/x).
func InvBack(x, d float64) float64 {
	return -d / (x * x)
}

// ReLUBack returns d where x > 0, else 0.
func ReLUBack(x, d float64) float64 {
	if x > 0 {
		return d
	}
	return 0
}

// SigmoidBack returns d * σ(x)(1-σ(x)).
func SigmoidBack(x, d float64) float64 {
	s := Sigmoid(x)
	return d * s * (1 - s)
}

// ExpBack returns d * e^x.
func ExpBack(x, d float64) float64 {
	return d * math.Exp(x)
}
