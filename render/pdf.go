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
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
)

// PDF is a contour.Sink which writes the segments to a single-page PDF
// file.  The page has the size of the sample domain, one PDF unit per
// unit of user space, with the origin at the top-left corner.
//
// Output is written when Close is called.  The style fields can be
// changed any time before that.
type PDF struct {
	// LineWidth is the width of contour lines.
	LineWidth float64

	// Line is the grey level of contour lines, from 0 (black) to 1 (white).
	Line float64

	// Background is the grey level of the page.
	Background float64

	// SampleSize is the side length of the squares drawn by MarkSample.
	SampleSize float64

	page   *document.Page
	height float64
	width  float64
	lines  *path.Data
	dots   []vec.Vec2
	closed bool
}

var _ contour.Sink = (*PDF)(nil)

// CreatePDF starts a new PDF file of the given page size.
func CreatePDF(fileName string, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return &PDF{
		LineWidth:  1,
		Line:       1,
		Background: 0,
		SampleSize: 1,
		page:       page,
		width:      width,
		height:     height,
		lines:      &path.Data{},
	}, nil
}

// DrawSegment implements the contour.Sink interface.
func (w *PDF) DrawSegment(a, b vec.Vec2) {
	w.lines = w.lines.MoveTo(a).LineTo(b)
}

// MarkSample draws a small white square centred at p.  This is used to
// show the "on" samples underneath the contour lines.
func (w *PDF) MarkSample(p vec.Vec2) {
	w.dots = append(w.dots, p)
}

// Close writes the page contents and closes the file.
func (w *PDF) Close() error {
	if w.closed {
		return errors.New("render: PDF already closed")
	}
	w.closed = true

	page := w.page
	page.SetFillColor(color.DeviceGray(w.Background))
	page.Rectangle(0, 0, w.width, w.height)
	page.Fill()

	// PDF origin is bottom-left, the sample grid has y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, w.height})

	if len(w.dots) > 0 {
		page.SetFillColor(color.DeviceGray(1))
		s := w.SampleSize
		for _, p := range w.dots {
			page.Rectangle(p.X-s/2, p.Y-s/2, s, s)
		}
		page.Fill()
	}

	if len(w.lines.Cmds) > 0 {
		page.SetStrokeColor(color.DeviceGray(w.Line))
		page.SetLineWidth(w.LineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for cmd, pts := range w.lines.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}
