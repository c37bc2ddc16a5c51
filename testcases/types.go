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

// Package testcases holds reference scenarios for the contour tracer.
//
// Cell scenarios fix the expected code and segments for every corner
// pattern on the unit cell.  Field scenarios describe small sample grids
// together with the codes expected for each cell.
package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines the expected result for one corner pattern.
type TestCase struct {
	Name     string        // lowercase a-z and _ only
	Corners  [4]bool       // on/off state of p0 (top-left) to p3 (bottom-left)
	Code     int           // expected edge rule code
	Segments [][2]vec.Vec2 // expected segments on the unit cell, in order
}

// Unit cell corners and edge midpoints.  The y axis points down.
var (
	P0 = vec.Vec2{X: 0, Y: 0}
	P1 = vec.Vec2{X: 1, Y: 0}
	P2 = vec.Vec2{X: 1, Y: 1}
	P3 = vec.Vec2{X: 0, Y: 1}

	Top    = vec.Vec2{X: 0.5, Y: 0}
	Right  = vec.Vec2{X: 1, Y: 0.5}
	Bottom = vec.Vec2{X: 0.5, Y: 1}
	Left   = vec.Vec2{X: 0, Y: 0.5}
)

// FieldCase is a small grid of samples.  Samples[row][col] is the state
// of the lattice point in the given row and column; Codes[row][col] is
// the expected code of the cell whose top-left corner is that point.
type FieldCase struct {
	Name    string
	Samples [][]bool
	Codes   [][]int
}

// seg is a helper to write a segment literal.
func seg(a, b vec.Vec2) [2]vec.Vec2 {
	return [2]vec.Vec2{a, b}
}
