package histmatch

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder.
)

// Load reads the whole file at path into memory and decodes it as an RGB image.
func Load(path string) (*RGBImage, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image in any registered format (JPEG, PNG, GIF, TIFF, BMP, WebP).
func Decode(r io.Reader) (*RGBImage, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInput, err)
	}
	return FromImage(img)
}

// FromImage converts a decoded image to float RGB samples in 8-bit scale.
// Grayscale images and images with non-opaque pixels are rejected with ErrChannels.
func FromImage(img image.Image) (*RGBImage, error) {
	if isGrayImage(img) {
		return nil, fmt.Errorf("%w: grayscale image", ErrChannels)
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
		return nil, fmt.Errorf("%w: image has transparency", ErrChannels)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmpty
	}
	out := NewRGBImage(w, h)
	parallelFor(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				r, g, b2, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				// RGBA returns 16-bit values, 0xFFFF/257 == 0xFF.
				i := (y*w + x) * 3
				out.Pix[i] = float32(r) / 257
				out.Pix[i+1] = float32(g) / 257
				out.Pix[i+2] = float32(b2) / 257
			}
		}
	})
	return out, nil
}

func isGrayImage(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	default:
		return false
	}
}
