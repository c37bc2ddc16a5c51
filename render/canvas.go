// seehuhn.de/go/contour - marching squares on binary sample grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package render draws contour segments into raster images and PDF files.
package render

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
)

// LineColor is the default colour for contour lines.
var LineColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// Canvas is a contour.Sink which draws segments into an RGBA image.
//
// Segments are collected by DrawSegment and rasterised together when
// Flush or Image is called.  This way, overlapping segments are painted
// only once.
type Canvas struct {
	// Color is the line colour.
	Color color.Color

	// LineWidth is the line width in user-space units.
	LineWidth float64

	// Cap is the line cap style.  Contour segments of neighbouring cells
	// meet at edge midpoints, where round caps avoid visible notches.
	Cap graphics.LineCapStyle

	// Transform maps user space, the coordinate system of the sample
	// grid, to device space.  The default is PixelCentres(1).
	Transform matrix.Matrix

	img   *image.RGBA
	r     *Rasteriser
	lines *path.Data
	count int
}

var _ contour.Sink = (*Canvas)(nil)

// NewCanvas allocates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return newCanvas(img)
}

// NewCanvasFrom allocates a canvas which starts out as a copy of src.
// The top-left pixel of src becomes pixel (0, 0) of the canvas.
func NewCanvasFrom(src image.Image) *Canvas {
	b := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(img, image.Point{}, src, b, draw.Src, nil)
	return newCanvas(img)
}

// PixelCentres returns the transformation which places the sample taken
// from pixel (x, y) at the centre of the corresponding device pixel, for
// an output image magnified by the given factor.
//
// In device space, pixel (x, y) is the unit square with top-left corner
// (x, y), while the sample grid puts the sample of that pixel at the
// point (x, y).
func PixelCentres(scale float64) matrix.Matrix {
	return matrix.Matrix{scale, 0, 0, scale, scale / 2, scale / 2}
}

func newCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Color:     LineColor,
		LineWidth: 1,
		Cap:       graphics.LineCapButt,
		Transform: PixelCentres(1),
		img:       img,
		r:         NewRasteriser(clip),
		lines:     &path.Data{},
	}
}

// DrawSegment implements the contour.Sink interface.
func (c *Canvas) DrawSegment(a, b vec.Vec2) {
	c.lines = c.lines.MoveTo(a).LineTo(b)
	c.count++
}

// Flush rasterises all segments collected since the last call.
func (c *Canvas) Flush() {
	if c.count == 0 {
		return
	}

	b := c.img.Bounds()
	c.r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	c.r.CTM = c.Transform
	c.r.Width = c.LineWidth
	c.r.Cap = c.Cap
	c.r.Join = graphics.LineJoinRound
	c.r.Stroke(c.lines.Iter(), c.composite)

	contour.Logger().Debug("canvas flushed", slog.Int("segments", c.count))

	c.lines.Cmds = c.lines.Cmds[:0]
	c.lines.Coords = c.lines.Coords[:0]
	c.count = 0
}

// Image flushes pending segments and returns the canvas image.
// The image is shared with the canvas, not copied.
func (c *Canvas) Image() *image.RGBA {
	c.Flush()
	return c.img
}

// composite blends the line colour into one row of the image, using
// coverage as the opacity of the paint.
func (c *Canvas) composite(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := c.Color.RGBA()
	src := [4]float32{float32(sr >> 8), float32(sg >> 8), float32(sb >> 8), float32(sa >> 8)}
	alpha := float32(sa) / 0xffff

	off := c.img.PixOffset(xMin, y)
	row := c.img.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		px := row[4*i : 4*i+4]
		keep := 1 - cov*alpha
		for k := range px {
			px[k] = uint8(src[k]*cov + float32(px[k])*keep + 0.5)
		}
	}
}
