package histmatch

import (
	"image"
	"image/color"
)

// RGBImage stores an RGB image as interleaved float32 samples.
// Sample values are in 8-bit scale, nominally [0, 255], and may leave that range
// after a transform until quantized with NRGBA.
type RGBImage struct {
	W, H int
	Pix  []float32
}

// NewRGBImage allocates a black image of the given size.
func NewRGBImage(w, h int) *RGBImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBImage{W: w, H: h, Pix: make([]float32, w*h*3)}
}

// Len returns the number of pixels.
func (m *RGBImage) Len() int {
	return m.W * m.H
}

// At returns the pixel at x, y clamping coordinates to the image edges.
func (m *RGBImage) At(x, y int) (r, g, b float32) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= m.W {
		x = m.W - 1
	}
	if y >= m.H {
		y = m.H - 1
	}
	i := (y*m.W + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set stores the pixel at x, y. Out of bounds coordinates are ignored.
func (m *RGBImage) Set(x, y int, r, g, b float32) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	i := (y*m.W + x) * 3
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = r, g, b
}

// Channel returns a copy of channel c (0 red, 1 green, 2 blue) in row-major order.
func (m *RGBImage) Channel(c int) []float32 {
	out := make([]float32, m.Len())
	for i := range out {
		out[i] = m.Pix[i*3+c]
	}
	return out
}

// SetChannel overwrites channel c with row-major values.
func (m *RGBImage) SetChannel(c int, v []float32) {
	n := min(len(v), m.Len())
	for i := 0; i < n; i++ {
		m.Pix[i*3+c] = v[i]
	}
}

// Clone returns a deep copy.
func (m *RGBImage) Clone() *RGBImage {
	out := &RGBImage{W: m.W, H: m.H, Pix: make([]float32, len(m.Pix))}
	copy(out.Pix, m.Pix)
	return out
}

// SameSize reports whether both images have equal dimensions.
func (m *RGBImage) SameSize(o *RGBImage) bool {
	return m.W == o.W && m.H == o.H
}

// NRGBA quantizes the image to 8 bits, clamping samples to [0, 255] and rounding.
func (m *RGBImage) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	parallelFor(m.H, func(start, end int) {
		for y := start; y < end; y++ {
			row := out.Pix[y*out.Stride:]
			for x := 0; x < m.W; x++ {
				i := (y*m.W + x) * 3
				row[x*4] = quantize(m.Pix[i])
				row[x*4+1] = quantize(m.Pix[i+1])
				row[x*4+2] = quantize(m.Pix[i+2])
				row[x*4+3] = 0xFF
			}
		}
	})
	return out
}

// RGB8At returns the quantized pixel at x, y.
func (m *RGBImage) RGB8At(x, y int) color.NRGBA {
	r, g, b := m.At(x, y)
	return color.NRGBA{R: quantize(r), G: quantize(g), B: quantize(b), A: 0xFF}
}

// LabImage stores CIELAB samples (L*, a*, b*) interleaved per pixel.
// L* is in [0, 100] for colors inside the sRGB gamut.
type LabImage struct {
	W, H int
	Pix  []float64
}

// Lightness returns a copy of the L* plane in row-major order.
func (l *LabImage) Lightness() []float64 {
	out := make([]float64, l.W*l.H)
	for i := range out {
		out[i] = l.Pix[i*3]
	}
	return out
}

// SetLightness overwrites the L* plane, leaving a* and b* untouched.
func (l *LabImage) SetLightness(v []float64) {
	n := min(len(v), l.W*l.H)
	for i := 0; i < n; i++ {
		l.Pix[i*3] = v[i]
	}
}

// Result holds the three matched images.
type Result struct {
	PerChannel *RGBImage
	Joint      *RGBImage
	Lab        *RGBImage
}
