package png

import (
	"image"
	"image/color"
)

// Raster adapts a decoded 8-bit pixel buffer to image.Image. Greyscale,
// indexed and greyscale-alpha data is exposed as grey samples (one byte per
// pixel, no palette expansion); truecolour data as NRGBA.
type Raster struct {
	header *Header
	pix    []byte
}

func (r *Raster) ColorModel() color.Model {
	switch r.header.ColourType {
	case Truecolour, TruecolourAlpha:
		return color.NRGBAModel
	default:
		return color.GrayModel
	}
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(r.header.Width), int(r.header.Height))
}

func (r *Raster) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(r.header.Width) || y >= int(r.header.Height) {
		return color.Gray{}
	}
	i := (y*int(r.header.Width) + x) * r.header.BytesPerPixel()
	switch r.header.ColourType {
	case Truecolour:
		return color.NRGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: 0xff}
	case TruecolourAlpha:
		return color.NRGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
	default:
		return color.Gray{Y: r.pix[i]}
	}
}

// Pix returns the underlying pixel slice for read-only iteration.
func (r *Raster) Pix() []byte { return r.pix }

// Header returns the header the raster was decoded with.
func (r *Raster) Header() *Header { return r.header }
