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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the path as a stroked outline using Width, Cap, Join and
// MiterLimit.  The emit callback receives coverage row by row; its slice
// argument is valid only during the call.
//
// Quadratic and cubic segments are flattened into straight lines, using
// Flatness as the tolerance in device space.
//
// The outline is built as a union of convex pieces: one quadrilateral per
// line, plus polygons for caps and joins.  All pieces have the same
// orientation, so that filling them together with the nonzero winding
// rule paints every pixel at most once.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.stroke = r.stroke[:0]
	r.strokeStart = r.strokeStart[:0]
	r.subpath = r.subpath[:0]

	var current vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				r.strokeSubpath(false)
			}
			current = pts[0]
			r.subpath = append(r.subpath[:0], current)
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			r.addVertex(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			r.flattenQuadratic(current, pts[0], pts[1], r.addVertex)
			current = pts[1]
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addVertex)
			current = pts[2]
		case path.CmdClose:
			if inSubpath {
				r.strokeSubpath(true)
				inSubpath = false
				current = r.subpath[0]
			}
		}
	}
	if inSubpath {
		r.strokeSubpath(false)
	}

	r.fillPolygons(emit)
}

// addVertex appends the end point of the line from-to to the current
// subpath, skipping lines of zero length.
func (r *Rasteriser) addVertex(from, to vec.Vec2) {
	if to.Sub(r.subpath[len(r.subpath)-1]).Length() >= zeroLengthThreshold {
		r.subpath = append(r.subpath, to)
	}
}

// strokeSubpath adds the outline pieces for the vertices in r.subpath.
func (r *Rasteriser) strokeSubpath(closed bool) {
	pts := r.subpath
	if closed && len(pts) > 2 && pts[0].Sub(pts[len(pts)-1]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	d := r.Width / 2

	if len(pts) == 1 {
		// A subpath without direction is only visible with round caps.
		if r.Cap == graphics.LineCapRound {
			r.addCircle(pts[0], d)
		}
		return
	}

	n := len(pts) - 1
	if closed && len(pts) > 2 {
		n = len(pts)
	}
	for i := range n {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		t := unit(b.Sub(a))
		if !closed && r.Cap == graphics.LineCapSquare {
			if i == 0 {
				a = a.Sub(t.Mul(d))
			}
			if i == n-1 {
				b = b.Add(t.Mul(d))
			}
		}
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	if !closed {
		if r.Cap == graphics.LineCapRound {
			r.addCircle(pts[0], d)
			r.addCircle(pts[len(pts)-1], d)
		}
		for i := 1; i < len(pts)-1; i++ {
			r.addJoin(pts[i-1], pts[i], pts[i+1], d)
		}
		return
	}
	for i := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		next := pts[(i+1)%len(pts)]
		r.addJoin(prev, pts[i], next, d)
	}
}

// addJoin adds the join between the segments prev→P and P→next.
// d is half the stroke width.
func (r *Rasteriser) addJoin(prev, P, next vec.Vec2, d float64) {
	T1 := unit(P.Sub(prev))
	T2 := unit(next.Sub(P))
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	cosTheta := T1.Dot(T2)

	if r.Join == graphics.LineJoinRound {
		if math.Abs(sinTheta) >= collinearityThreshold || cosTheta < 0 {
			r.addCircle(P, d)
		}
		return
	}
	if math.Abs(sinTheta) < collinearityThreshold {
		// straight continuation, or a cusp which has no outer side
		return
	}

	// The outer side of the corner is opposite to the turn direction.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	o1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side * d)
	o2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		// miter length / line width = 1 / cos(θ/2), θ the turning angle
		halfCos := math.Sqrt((1 + cosTheta) / 2)
		if halfCos > 0 && 1/halfCos <= r.MiterLimit {
			bisector := unit(o1.Add(o2))
			tip := P.Add(bisector.Mul(d / halfCos))
			r.addPolygon(P, P.Add(o1), tip, P.Add(o2))
			return
		}
	}
	r.addPolygon(P, P.Add(o1), P.Add(o2))
}

// addCircle adds a polygon approximating the circle of the given radius.
// The number of vertices is chosen so that the error in device space
// stays below Flatness.
func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: radius}).Length(),
	)

	// A chord subtending angle θ deviates from the circle by at most
	// r(1 - cos(θ/2)); solve for θ with the deviation equal to Flatness.
	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.stroke)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r.stroke = append(r.stroke, vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	r.strokeStart = append(r.strokeStart, start)
}

// addPolygon appends a convex polygon to the outline, reversing the
// vertex order if needed so that the signed area is positive.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return
	}

	start := len(r.stroke)
	if area > 0 {
		r.stroke = append(r.stroke, pts...)
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.stroke = append(r.stroke, pts[i])
		}
	}
	r.strokeStart = append(r.strokeStart, start)
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
