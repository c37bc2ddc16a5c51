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
package render

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/field"
)

// randomContours returns the segments traced through a random field
// of the given size.
func randomContours(b *testing.B, width, height int) []contour.Segment {
	b.Helper()
	f := field.New(width, height, 10, 10, 1)
	grid := field.Lattice(width, height, 10, 10)

	var segs []contour.Segment
	_, err := contour.March(f, grid, contour.SinkFunc(func(p, q vec.Vec2) {
		segs = append(segs, contour.Segment{A: p, B: q})
	}))
	if err != nil {
		b.Fatal(err)
	}
	return segs
}

func BenchmarkMarch(b *testing.B) {
	for _, size := range []int{64, 640, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			f := field.New(size, size, 10, 10, 1)
			grid := field.Lattice(size, size, 10, 10)
			sink := contour.SinkFunc(func(p, q vec.Vec2) {})

			b.ReportAllocs()
			for b.Loop() {
				if _, err := contour.March(f, grid, sink); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStrokeContours strokes the contour lines of a 640x480 field.
func BenchmarkStrokeContours(b *testing.B) {
	const width, height = 640, 480
	segs := randomContours(b, width, height)

	lines := &path.Data{}
	for _, s := range segs {
		lines = lines.MoveTo(s.A).LineTo(s.B)
	}

	clip := rect.Rect{URx: width, URy: height}
	r := NewRasteriser(clip)
	dst := image.NewAlpha(image.Rect(0, 0, width, height))

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Cap = graphics.LineCapRound
		r.Join = graphics.LineJoinRound
		r.Stroke(lines.Iter(), func(y, xMin int, coverage []float32) {
			row := dst.Pix[y*dst.Stride+xMin:]
			for i, c := range coverage {
				row[i] = uint8(c * 255)
			}
		})
	}
}

// BenchmarkVectorContours draws the same segments as quadrilaterals using
// x/image/vector.  The result has no caps or joins and is accumulated
// with the nonzero rule, so this is a lower bound for the stroking work.
func BenchmarkVectorContours(b *testing.B) {
	const width, height = 640, 480
	segs := randomContours(b, width, height)

	r := vector.NewRasterizer(width, height)
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	src := image.NewUniform(color.Alpha{A: 255})

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(width, height)
		for _, s := range segs {
			addQuadToVector(r, s.A, s.B, 0.5)
		}
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}

// addQuadToVector adds the rectangle of half width d around the segment
// from a to b.
func addQuadToVector(r *vector.Rasterizer, a, b vec.Vec2, d float64) {
	t := unit(b.Sub(a))
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

func BenchmarkCanvas(b *testing.B) {
	const width, height = 640, 480
	f := field.New(width, height, 10, 10, 1)
	grid := field.Lattice(width, height, 10, 10)

	b.ReportAllocs()
	for b.Loop() {
		c := NewCanvas(width, height)
		if _, err := contour.March(f, grid, c); err != nil {
			b.Fatal(err)
		}
		c.Flush()
	}
}
