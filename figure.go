package histmatch

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is a titled image of the comparison figure.
type Panel struct {
	Title string
	Image image.Image
}

// FigureOptions controls figure layout.
type FigureOptions struct {
	Height        int // panel height in pixels, default 256
	Gutter        int // spacing around panels in pixels, default 8
	Background    color.Color
	Foreground    color.Color
	Interpolation resize.InterpolationFunction
}

// ComparisonPanels returns the source, reference and matched images in display order.
func ComparisonPanels(src, ref *RGBImage, res *Result) []Panel {
	return []Panel{
		{Title: TitleSource, Image: src.NRGBA()},
		{Title: TitleReference, Image: ref.NRGBA()},
		{Title: TitlePerChannel, Image: res.PerChannel.NRGBA()},
		{Title: TitleJoint, Image: res.Joint.NRGBA()},
		{Title: TitleLab, Image: res.Lab.NRGBA()},
	}
}

// Figure renders panels side by side, scaled to a common height, with titles above them.
// Panels without pixels are skipped.
func Figure(panels []Panel, opts ...func(o *FigureOptions)) *image.NRGBA {
	opt := FigureOptions{
		Height:        256,
		Gutter:        8,
		Background:    color.White,
		Foreground:    color.Black,
		Interpolation: resize.Lanczos3,
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Height <= 0 {
		opt.Height = 256
	}
	if opt.Gutter < 0 {
		opt.Gutter = 0
	}

	face := basicfont.Face7x13
	titleH := face.Height + opt.Gutter

	scaled := make([]image.Image, 0, len(panels))
	titles := make([]string, 0, len(panels))
	width := opt.Gutter
	for _, p := range panels {
		if p.Image == nil {
			continue
		}
		b := p.Image.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			continue
		}
		w := max(b.Dx()*opt.Height/b.Dy(), 1)
		img := resize.Resize(uint(w), uint(opt.Height), p.Image, opt.Interpolation)
		scaled = append(scaled, img)
		titles = append(titles, p.Title)
		width += img.Bounds().Dx() + opt.Gutter
	}
	height := opt.Gutter + titleH + opt.Height + opt.Gutter

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	d := font.Drawer{Dst: canvas, Src: image.NewUniform(opt.Foreground), Face: face}
	x := opt.Gutter
	top := opt.Gutter + titleH
	for i, img := range scaled {
		b := img.Bounds()
		r := image.Rect(x, top, x+b.Dx(), top+b.Dy())
		draw.Draw(canvas, r, img, b.Min, draw.Src)

		tw := d.MeasureString(titles[i]).Ceil()
		d.Dot = fixed.P(x+(b.Dx()-tw)/2, opt.Gutter+face.Ascent)
		d.DrawString(titles[i])

		x += b.Dx() + opt.Gutter
	}
	return canvas
}
