package scalar

// Backward computes d(s)/d(leaf) for every leaf s depends on and adds it to
// the leaf's Derivative.
//
// Example:
//
//	x := scalar.New(3)
//	y := x.Mul(x).Add(x) // x² + x
//	y.Backward()
//	fmt.Println(x.Derivative) // 7
func (s *Scalar) Backward() {
	s.BackwardWith(1)
}

// BackwardWith runs Backward with a seed derivative other than 1.
func (s *Scalar) BackwardWith(d float64) {
	order := topologicalOrder(s)
	derivs := map[uint64]float64{s.id: d}

	for _, v := range order {
		dv := derivs[v.id]
		if v.IsLeaf() {
			v.Derivative += dv
			continue
		}

		h := v.history
		grads := h.Fn.Backward(h.Ctx, dv)
		checkArity(h.Fn, len(grads), len(h.Inputs))
		for i, in := range h.Inputs {
			derivs[in.id] += grads[i]
		}
	}
}

// topologicalOrder returns every Scalar reachable from s, each after all the
// Scalars that consume it.
func topologicalOrder(s *Scalar) []*Scalar {
	visited := make(map[uint64]bool)
	var post []*Scalar

	var visit func(v *Scalar)
	visit = func(v *Scalar) {
		if visited[v.id] {
			return
		}
		visited[v.id] = true
		if v.history != nil {
			for _, in := range v.history.Inputs {
				visit(in)
			}
		}
		post = append(post, v)
	}
	visit(s)

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
