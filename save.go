package histmatch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SaveOptions controls result encoding.
type SaveOptions struct {
	Quality int // JPEG quality (1-100), defaults to 95
}

// Outputs lists the result file paths derived from a source path.
type Outputs struct {
	PerChannel string `json:"perchannel"`
	Joint      string `json:"joint"`
	Lab        string `json:"lab"`
}

// OutputPaths places results next to sourcePath, prefixing its base name with
// PrefixPerChannel, PrefixJoint and PrefixLab. The extension is kept and selects
// the encoding format.
func OutputPaths(sourcePath string) Outputs {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	return Outputs{
		PerChannel: filepath.Join(dir, PrefixPerChannel+base),
		Joint:      filepath.Join(dir, PrefixJoint+base),
		Lab:        filepath.Join(dir, PrefixLab+base),
	}
}

// Save quantizes img and writes it to path, the format is determined by the file extension.
func Save(path string, img *RGBImage, opts ...func(o *SaveOptions)) error {
	return SaveImage(path, img.NRGBA(), opts...)
}

// SaveImage writes an already quantized image to path.
func SaveImage(path string, img image.Image, opts ...func(o *SaveOptions)) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err := encode(f, img, format, opts...); err != nil {
		_ = f.Close()
		_ = os.Remove(filepath.Clean(path))
		return fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

// Encode writes img in the format matching the extension of name, such as ".png".
func Encode(w io.Writer, name string, img *RGBImage, opts ...func(o *SaveOptions)) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutput, name, err)
	}
	if err := encode(w, img.NRGBA(), format, opts...); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func encode(w io.Writer, img image.Image, format imaging.Format, opts ...func(o *SaveOptions)) error {
	opt := SaveOptions{Quality: defaultQuality}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Quality <= 0 || opt.Quality > 100 {
		opt.Quality = defaultQuality
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(opt.Quality))
}
