package histmatch

// ChannelStats summarizes the quantized distribution of one color channel.
type ChannelStats struct {
	Mean      float64     `json:"mean"`
	Min       uint8       `json:"min"`
	Max       uint8       `json:"max"`
	Histogram [256]uint64 `json:"-"`
}

// ImageStats summarizes all three channels of an image.
type ImageStats struct {
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Channels [3]ChannelStats `json:"channels"`
}

// Stats computes per-channel statistics of img after 8-bit quantization.
func Stats(img *RGBImage) ImageStats {
	st := ImageStats{Width: img.W, Height: img.H}
	n := img.Len()
	if n == 0 {
		return st
	}
	var sum [3]uint64
	for c := range st.Channels {
		st.Channels[c].Min = 255
	}
	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			v := quantize(img.Pix[i*3+c])
			ch := &st.Channels[c]
			ch.Histogram[v]++
			sum[c] += uint64(v)
			ch.Min = min(ch.Min, v)
			ch.Max = max(ch.Max, v)
		}
	}
	for c := range st.Channels {
		st.Channels[c].Mean = float64(sum[c]) / float64(n)
	}
	return st
}
