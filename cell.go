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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Isovalue is the interpolation parameter used to place contour points
// on the cell edges. With binary samples the boundary is always put at
// the midpoint of an edge.
const Isovalue = 0.5

// Cell holds the corners of one grid cell in clockwise order:
// top-left (p0), top-right (p1), bottom-right (p2), bottom-left (p3).
type Cell [4]vec.Vec2

// Lerp interpolates linearly between a and b.
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// Midpoint returns the point where the contour crosses edge e.
func (c *Cell) Midpoint(e Edge) vec.Vec2 {
	switch e {
	case EdgeTop:
		return Lerp(c[0], c[1], Isovalue)
	case EdgeRight:
		return Lerp(c[1], c[2], Isovalue)
	case EdgeBottom:
		return Lerp(c[2], c[3], Isovalue)
	case EdgeLeft:
		return Lerp(c[3], c[0], Isovalue)
	}
	panic(fmt.Sprintf("contour: invalid edge %d", e))
}

// Segment is a straight piece of contour between two edge midpoints.
type Segment struct {
	A, B vec.Vec2
}

// Intersects reports whether s and t share at least one point.
func (s Segment) Intersects(t Segment) bool {
	d1 := orient(t.A, t.B, s.A)
	d2 := orient(t.A, t.B, s.B)
	d3 := orient(s.A, s.B, t.A)
	d4 := orient(s.A, s.B, t.B)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	switch {
	case d1 == 0 && onSegment(t.A, t.B, s.A):
		return true
	case d2 == 0 && onSegment(t.A, t.B, s.B):
		return true
	case d3 == 0 && onSegment(s.A, s.B, t.A):
		return true
	case d4 == 0 && onSegment(s.A, s.B, t.B):
		return true
	}
	return false
}

// orient returns the z-component of (b-a)×(c-a).
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, known to be collinear with a and b, lies
// in the bounding box of a and b.
func onSegment(a, b, c vec.Vec2) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}
