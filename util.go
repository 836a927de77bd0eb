package histmatch

import "math"

func quantize(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func norm3(r, g, b float32) float32 {
	return float32(math.Sqrt(float64(r)*float64(r) + float64(g)*float64(g) + float64(b)*float64(b)))
}
