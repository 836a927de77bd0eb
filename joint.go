package histmatch

import (
	"fmt"
	"strings"

	"github.com/vearutop/histmatch/internal/histspec"
)

// BlackPolicy defines the joint matcher output for pixels with zero magnitude,
// where the scale ratio carries no hue information.
type BlackPolicy int

const (
	// BlackKeep leaves pure black pixels black.
	BlackKeep BlackPolicy = iota
	// BlackNeutral replaces pure black pixels with a neutral gray of the matched magnitude.
	BlackNeutral
)

func (p BlackPolicy) String() string {
	switch p {
	case BlackKeep:
		return "keep"
	case BlackNeutral:
		return "neutral"
	default:
		return fmt.Sprintf("BlackPolicy(%d)", int(p))
	}
}

// ParseBlackPolicy parses "keep" or "neutral".
func ParseBlackPolicy(s string) (BlackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return BlackKeep, nil
	case "neutral":
		return BlackNeutral, nil
	default:
		return BlackKeep, fmt.Errorf("unknown black policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p BlackPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *BlackPolicy) UnmarshalText(text []byte) error {
	v, err := ParseBlackPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// JointOptions controls the joint matcher.
type JointOptions struct {
	// Epsilon is added to the source magnitude before dividing, DefaultEpsilon if not positive.
	Epsilon float64
	Black   BlackPolicy
}

// Magnitude returns the Euclidean norm of every pixel in row-major order.
func Magnitude(img *RGBImage) []float32 {
	out := make([]float32, img.Len())
	parallelFor(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			p := i * 3
			out[i] = norm3(img.Pix[p], img.Pix[p+1], img.Pix[p+2])
		}
	})
	return out
}

// MatchJoint matches the distribution of pixel magnitudes of src to the one of ref
// and scales every pixel of src by matched/original magnitude.
//
// Channel ratios of each pixel are preserved, only the overall magnitude moves.
// Values above 255 are kept in the result and clamped on quantization.
func MatchJoint(src, ref *RGBImage, opts ...func(o *JointOptions)) *RGBImage {
	opt := JointOptions{Epsilon: DefaultEpsilon}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Epsilon <= 0 {
		opt.Epsilon = DefaultEpsilon
	}

	srcMag := Magnitude(src)
	matched := histspec.Match(srcMag, Magnitude(ref))

	out := NewRGBImage(src.W, src.H)
	parallelFor(len(srcMag), func(start, end int) {
		for i := start; i < end; i++ {
			p := i * 3
			if srcMag[i] == 0 {
				if opt.Black == BlackNeutral {
					g := matched[i] / sqrt3
					out.Pix[p], out.Pix[p+1], out.Pix[p+2] = g, g, g
				}
				continue
			}
			ratio := float64(matched[i]) / (float64(srcMag[i]) + opt.Epsilon)
			out.Pix[p] = float32(float64(src.Pix[p]) * ratio)
			out.Pix[p+1] = float32(float64(src.Pix[p+1]) * ratio)
			out.Pix[p+2] = float32(float64(src.Pix[p+2]) * ratio)
		}
	})
	return out
}
