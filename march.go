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

package contour

import (
	"context"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// Sink receives the contour segments found by March.
type Sink interface {
	DrawSegment(a, b vec.Vec2)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(a, b vec.Vec2)

// DrawSegment calls f(a, b).
func (f SinkFunc) DrawSegment(a, b vec.Vec2) {
	f(a, b)
}

// Grid describes a regular lattice of Cols×Rows cells.  The top-left
// corner of the top-left cell is at Origin, and each cell is DX wide and
// DY high.  Rows are counted downwards, in the direction of increasing y.
type Grid struct {
	Origin vec.Vec2
	DX, DY float64
	Cols   int
	Rows   int
}

// Cell returns the corners of the cell in column col and row row.
func (g *Grid) Cell(col, row int) Cell {
	x0 := g.Origin.X + float64(col)*g.DX
	y0 := g.Origin.Y + float64(row)*g.DY
	x1 := x0 + g.DX
	y1 := y0 + g.DY
	return Cell{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// NumCells returns the total number of cells in the grid.
func (g *Grid) NumCells() int {
	if g.Cols <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Cols * g.Rows
}

// Stats summarises a run of March.
type Stats struct {
	Cells    int          // number of cells classified
	Segments int          // number of segments sent to the sink
	Saddles  int          // cells with one of the two saddle codes
	ByCode   map[Code]int // number of cells per edge rule code
}

// March classifies every cell of g, row by row, and sends the contour
// segments through each cell to s.  Cells are independent of each other,
// so the order of the segments carries no meaning beyond the cell order.
//
// If the field reports an error, March stops and returns the statistics
// gathered so far together with the error.
func March(f Field, g Grid, s Sink) (Stats, error) {
	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	stats := Stats{ByCode: make(map[Code]int, len(Codes))}
	var buf []Segment
	for row := range max(g.Rows, 0) {
		for col := range max(g.Cols, 0) {
			cell := g.Cell(col, row)
			code, err := Classify(f, cell)
			if err != nil {
				return stats, fmt.Errorf("cell (%d, %d): %w", col, row, err)
			}
			stats.Cells++
			stats.ByCode[code]++
			if code == CodeSaddleTopLeft || code == CodeSaddleTopRight {
				stats.Saddles++
				if debug {
					log.Debug("saddle cell",
						slog.Int("col", col),
						slog.Int("row", row),
						slog.Int("code", int(code)))
				}
			}

			buf = AppendSegments(buf[:0], code, cell)
			for _, seg := range buf {
				s.DrawSegment(seg.A, seg.B)
			}
			stats.Segments += len(buf)
		}
	}

	log.Debug("march finished",
		slog.Int("cells", stats.Cells),
		slog.Int("segments", stats.Segments),
		slog.Int("saddles", stats.Saddles))
	return stats, nil
}
