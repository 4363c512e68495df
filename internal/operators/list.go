package operators

// Map returns a function applying fn to every element of a slice.
func Map(fn func(float64) float64) func([]float64) []float64 {
	return func(ls []float64) []float64 {
		out := make([]float64, len(ls))
		for i, v := range ls {
			out[i] = fn(v)
		}
		return out
	}
}

// ZipWith returns a function combining two slices pairwise with fn.
// The result is as long as the shorter input.
func ZipWith(fn func(float64, float64) float64) func(a, b []float64) []float64 {
	return func(a, b []float64) []float64 {
		n := min(len(a), len(b))
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = fn(a[i], b[i])
		}
		return out
	}
}

// Reduce returns a function folding a slice left to right with fn,
// starting from start.
func Reduce(fn func(float64, float64) float64, start float64) func([]float64) float64 {
	return func(ls []float64) float64 {
		acc := start
		for _, v := range ls {
			acc = fn(acc, v)
		}
		return acc
	}
}

// NegList negates every element.
func NegList(ls []float64) []float64 {
	return Map(Neg)(ls)
}

// AddLists adds two slices pairwise.
func AddLists(a, b []float64) []float64 {
	return ZipWith(Add)(a, b)
}

// Sum adds all elements; 0 for an empty slice.
func Sum(ls []float64) float64 {
	return Reduce(Add, 0)(ls)
}

// Prod multiplies all elements; 1 for an empty slice.
func Prod(ls []float64) float64 {
	return Reduce(Mul, 1)(ls)
}
