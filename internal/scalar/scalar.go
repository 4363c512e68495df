// Package scalar implements reverse-mode automatic differentiation over
// single float64 values.
//
// Every Scalar produced by an operation remembers the Function that made it,
// the Context that Function saved, and its inputs. Backward walks that graph
// in topological order and accumulates derivatives into the leaf Scalars.
package scalar

import (
	"fmt"
	"sync/atomic"
)

var nextID atomic.Uint64

// Scalar is a float64 that records the operations used to produce it.
type Scalar struct {
	Data       float64 // Wrapped value
	Derivative float64 // Accumulated by Backward on leaves
	Name       string  // Optional label

	history *History
	id      uint64
}

// History records how a Scalar was computed.
// Leaves have no history.
type History struct {
	Fn     Function
	Ctx    *Context
	Inputs []*Scalar
}

// New creates a leaf Scalar.
func New(v float64) *Scalar {
	return &Scalar{Data: v, id: nextID.Add(1)}
}

// Named creates a labeled leaf Scalar.
func Named(name string, v float64) *Scalar {
	s := New(v)
	s.Name = name
	return s
}

// ID returns the Scalar's unique identifier.
func (s *Scalar) ID() uint64 {
	return s.id
}

// History returns how s was computed, or nil for a leaf.
func (s *Scalar) History() *History {
	return s.history
}

// IsLeaf reports whether s was created directly rather than by an operation.
func (s *Scalar) IsLeaf() bool {
	return s.history == nil
}

// ZeroGrad resets the accumulated derivative.
func (s *Scalar) ZeroGrad() {
	s.Derivative = 0
}

func (s *Scalar) String() string {
	if s.Name != "" {
		return fmt.Sprintf("Scalar(%s=%f)", s.Name, s.Data)
	}
	return fmt.Sprintf("Scalar(%f)", s.Data)
}

// Add returns s + b.
func (s *Scalar) Add(b *Scalar) *Scalar { return Apply(Add, s, b) }

// Sub returns s - b.
func (s *Scalar) Sub(b *Scalar) *Scalar { return Apply(Sub, s, b) }

// Mul returns s * b.
func (s *Scalar) Mul(b *Scalar) *Scalar { return Apply(Mul, s, b) }

// Div returns s / b, computed as s * (1/b).
func (s *Scalar) Div(b *Scalar) *Scalar { return Apply(Mul, s, Apply(Inv, b)) }

// Neg returns -s.
func (s *Scalar) Neg() *Scalar { return Apply(Neg, s) }

// LT returns 1 if s < b, else 0.
func (s *Scalar) LT(b *Scalar) *Scalar { return Apply(LT, s, b) }

// GT returns 1 if s > b, else 0.
func (s *Scalar) GT(b *Scalar) *Scalar { return Apply(LT, b, s) }

// EQ returns 1 if s == b, else 0.
func (s *Scalar) EQ(b *Scalar) *Scalar { return Apply(EQ, s, b) }

// Log returns ln(s).
func (s *Scalar) Log() *Scalar { return Apply(Log, s) }

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar { return Apply(Exp, s) }

// Sigmoid returns 1/(1+e^-s).
func (s *Scalar) Sigmoid() *Scalar { return Apply(Sigmoid, s) }

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar { return Apply(ReLU, s) }
