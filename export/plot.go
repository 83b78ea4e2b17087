package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
)

// PlotOptions configures [PlotPNG].
type PlotOptions struct {
	// Width and Height of the image in pixels. Zero uses 800x400.
	Width  int
	Height int
	// Stride plots every Stride-th sample. Zero or one plots all samples.
	Stride int
	// Caption is drawn in the top-left corner. Empty uses the base frequency.
	Caption string
}

var (
	plotBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	plotAxis       = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	plotTrace      = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	plotText       = color.RGBA{A: 0xff}
)

const (
	plotMargin    = 16
	plotLineWidth = 1.5
)

// PlotPNG draws one cycle of t as a line plot and encodes it as PNG. The
// vertical axis is scaled to the table peak; the engine does not normalize.
func PlotPNG(w io.Writer, t wavetable.Wavetable, opts PlotOptions) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 400
	}
	stride := opts.Stride
	if stride < 1 {
		stride = 1
	}
	caption := opts.Caption
	if caption == "" {
		caption = fmt.Sprintf("%g Hz", t.BaseFrequency)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(plotBackground), image.Point{}, draw.Src)

	mid := float32(height) / 2
	for x := 0; x < width; x++ {
		img.Set(x, int(mid), plotAxis)
	}

	points := decimate(t.Samples, stride)
	if len(points) > 0 {
		peak := t.Peak()
		if peak == 0 {
			peak = 1
		}
		yScale := (mid - plotMargin) / float32(peak)
		xScale := float32(width-2*plotMargin) / float32(max(len(points)-1, 1))

		z := vector.NewRasterizer(width, height)
		px := func(i int) (float32, float32) {
			return plotMargin + float32(i)*xScale, mid - float32(points[i])*yScale
		}

		x0, y0 := px(0)
		if len(points) == 1 {
			strokeSegment(z, x0, y0, x0+1, y0, plotLineWidth/2)
		}
		for i := 1; i < len(points); i++ {
			x1, y1 := px(i)
			strokeSegment(z, x0, y0, x1, y1, plotLineWidth/2)
			x0, y0 = x1, y1
		}
		z.Draw(img, img.Bounds(), image.NewUniform(plotTrace), image.Point{})
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(plotText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(plotMargin/2, plotMargin),
	}
	d.DrawString(caption)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode plot: %w", err)
	}
	return nil
}

// decimate keeps samples 0, stride, 2*stride, ...
func decimate(samples []float64, stride int) []float64 {
	if stride == 1 {
		return samples
	}
	out := make([]float64, 0, len(samples)/stride+1)
	for i := 0; i < len(samples); i += stride {
		out = append(out, samples[i])
	}
	return out
}

// strokeSegment adds a quad of half-width hw around the segment. All quads
// share one winding direction so overlaps do not cancel.
func strokeSegment(z *vector.Rasterizer, x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
