// Package histspec implements quantile-based histogram specification on flat
// sequences of samples.
package histspec

import (
	"errors"
	"slices"
	"sort"
)

// ErrEmpty is returned by MatchChecked when either input has no samples.
var ErrEmpty = errors.New("histspec: empty sample set")

// Float is the set of sample types Match operates on.
type Float interface {
	~float32 | ~float64
}

// Match remaps src so that its empirical distribution follows the one of ref.
//
// Every distinct source value is replaced with the reference value found at the
// same cumulative position, interpolating linearly between reference ranks.
// The result depends only on the multisets of values, never on their order.
// Empty src yields an empty slice, empty ref yields a copy of src.
// NaN samples are not supported.
func Match[T Float](src, ref []T) []T {
	out := make([]T, len(src))
	if len(src) == 0 {
		return out
	}
	if len(ref) == 0 {
		copy(out, src)
		return out
	}

	srcVals, srcQ := CDF(src)
	refVals, refQ := CDF(ref)

	mapped := make([]T, len(srcVals))
	for i, q := range srcQ {
		mapped[i] = interp(q, refQ, refVals)
	}

	for i, v := range src {
		j, _ := slices.BinarySearch(srcVals, v)
		out[i] = mapped[j]
	}
	return out
}

// MatchChecked is Match that reports empty inputs instead of passing them through.
func MatchChecked[T Float](src, ref []T) ([]T, error) {
	if len(src) == 0 || len(ref) == 0 {
		return nil, ErrEmpty
	}
	return Match(src, ref), nil
}

// CDF returns the sorted distinct values of samples and, for each of them,
// the fraction of samples less than or equal to it.
func CDF[T Float](samples []T) (values []T, quantiles []float64) {
	if len(samples) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	values = make([]T, 0, len(sorted))
	quantiles = make([]float64, 0, len(sorted))
	n := float64(len(sorted))
	for i, v := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == v {
			continue
		}
		values = append(values, v)
		quantiles = append(quantiles, float64(i+1)/n)
	}
	return values, quantiles
}

// interp evaluates the piecewise-linear function through (xp[i], fp[i]) at x,
// holding the end values outside of the xp range.
func interp[T Float](x float64, xp []float64, fp []T) T {
	last := len(xp) - 1
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[last] {
		return fp[last]
	}
	i := sort.SearchFloat64s(xp, x)
	if xp[i] == x {
		return fp[i]
	}
	t := (x - xp[i-1]) / (xp[i] - xp[i-1])
	return T(float64(fp[i-1]) + t*(float64(fp[i])-float64(fp[i-1])))
}
