package histmatch

import "github.com/vearutop/histmatch/internal/histspec"

// MatchValues remaps src samples so that their distribution follows ref.
// It is the quantile remap shared by all matchers, exposed for flat sample sets.
func MatchValues(src, ref []float32) []float32 {
	return histspec.Match(src, ref)
}

// Quantiles returns the sorted distinct values of samples with their cumulative fractions.
func Quantiles(samples []float32) ([]float32, []float64) {
	return histspec.CDF(samples)
}
