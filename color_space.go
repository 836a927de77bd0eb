package histmatch

import (
	"github.com/jkl1337/go-chromath"
)

// sRGB with D65 white, XYZ scaled to Y=1 for the white point.
var (
	rgbToXYZ = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	labToXYZ = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// RGBToLab converts an sRGB image in 8-bit scale to CIELAB (D65).
// Samples are normalized to [0, 1] before conversion.
func RGBToLab(img *RGBImage) *LabImage {
	out := &LabImage{W: img.W, H: img.H, Pix: make([]float64, len(img.Pix))}
	parallelFor(img.Len(), func(start, end int) {
		for i := start; i < end; i++ {
			p := i * 3
			lab := rgbToLab(float64(img.Pix[p])/maxSample, float64(img.Pix[p+1])/maxSample, float64(img.Pix[p+2])/maxSample)
			out.Pix[p], out.Pix[p+1], out.Pix[p+2] = lab.L(), lab.A(), lab.B()
		}
	})
	return out
}

// LabToRGB converts CIELAB (D65) samples back to sRGB in 8-bit scale.
// Colors outside of the sRGB gamut are clipped per channel.
func LabToRGB(l *LabImage) *RGBImage {
	out := NewRGBImage(l.W, l.H)
	parallelFor(l.W*l.H, func(start, end int) {
		for i := start; i < end; i++ {
			p := i * 3
			rgb := labToRGB(chromath.Lab{l.Pix[p], l.Pix[p+1], l.Pix[p+2]})
			out.Pix[p] = float32(clamp01(rgb.R()) * maxSample)
			out.Pix[p+1] = float32(clamp01(rgb.G()) * maxSample)
			out.Pix[p+2] = float32(clamp01(rgb.B()) * maxSample)
		}
	})
	return out
}

func rgbToLab(r, g, b float64) chromath.Lab {
	return labToXYZ.Invert(rgbToXYZ.Convert(chromath.RGB{r, g, b}))
}

func labToRGB(lab chromath.Lab) chromath.RGB {
	return rgbToXYZ.Invert(labToXYZ.Convert(lab))
}
