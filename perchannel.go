package histmatch

import "github.com/vearutop/histmatch/internal/histspec"

// MatchPerChannel matches every color channel of src against the same channel of ref.
// Channels are treated as independent distributions, cross-channel correlation is ignored.
// The result has the dimensions of src.
func MatchPerChannel(src, ref *RGBImage) *RGBImage {
	out := NewRGBImage(src.W, src.H)
	parallelFor(3, func(start, end int) {
		for c := start; c < end; c++ {
			out.SetChannel(c, histspec.Match(src.Channel(c), ref.Channel(c)))
		}
	})
	return out
}
