package histmatch

import (
	"math/rand/v2"
	"testing"
)

func solid(w, h int, r, g, b float32) *RGBImage {
	img := NewRGBImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, r, g, b)
		}
	}
	return img
}

// noise returns an image with integer samples drawn from [lo, hi].
func noise(w, h int, seed uint64, lo, hi int) *RGBImage {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	img := NewRGBImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = float32(lo + rnd.IntN(hi-lo+1))
	}
	return img
}

func assertSize(t *testing.T, label string, got, want *RGBImage) {
	t.Helper()
	if got.W != want.W || got.H != want.H || len(got.Pix) != len(want.Pix) {
		t.Fatalf("%s dims mismatch: got %dx%d want %dx%d", label, got.W, got.H, want.W, want.H)
	}
}

// assertQuantizedClose compares 8-bit renditions of both images.
func assertQuantizedClose(t *testing.T, label string, got, want *RGBImage, tol int) {
	t.Helper()
	assertSize(t, label, got, want)
	for i := range got.Pix {
		g, w := int(quantize(got.Pix[i])), int(quantize(want.Pix[i]))
		if d := g - w; d > tol || d < -tol {
			t.Fatalf("%s sample %d (pixel %d, channel %d): got %d want %d", label, i, i/3, i%3, g, w)
		}
	}
}
