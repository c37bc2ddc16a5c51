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

// Field gives access to binary samples at points of the plane.
type Field interface {
	// Sample reports whether the field is "on" at p. An error is returned
	// if p lies outside the domain of the field.
	Sample(p vec.Vec2) (bool, error)
}

// Classify samples the four corners of c and returns the edge rule code
// for the resulting pattern. Errors from the field are returned wrapped
// with the index of the offending corner.
func Classify(f Field, c Cell) (Code, error) {
	var p Pattern
	for i, pt := range c {
		on, err := f.Sample(pt)
		if err != nil {
			return 0, fmt.Errorf("corner p%d: %w", i, err)
		}
		p <<= 1
		if on {
			p |= 1
		}
	}
	return ClassifyPattern(p), nil
}

// Trace returns the contour segments drawn through c for the given code.
// The result has between 0 and 2 elements.
//
// Trace panics if code is not one of the values in Codes.
func Trace(code Code, c Cell) []Segment {
	return AppendSegments(nil, code, c)
}

// AppendSegments appends the contour segments for code to dst and
// returns the extended slice.  This is the allocation-free form of Trace.
//
// AppendSegments panics if code is not one of the values in Codes.
func AppendSegments(dst []Segment, code Code, c Cell) []Segment {
	if !code.Valid() {
		panic(fmt.Sprintf("contour: invalid edge rule code %d", code))
	}
	rule := &segmentTable[code]
	for _, pair := range rule.pairs[:rule.n] {
		dst = append(dst, Segment{
			A: c.Midpoint(pair[0]),
			B: c.Midpoint(pair[1]),
		})
	}
	return dst
}
