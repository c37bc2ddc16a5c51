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

import "strconv"

// Pattern is the on/off state of the four corners of a cell, packed into
// four bits. Bit 3 holds p0 (top-left), bit 2 p1 (top-right), bit 1 p2
// (bottom-right) and bit 0 p3 (bottom-left), so that the binary digits of
// a pattern read in corner order: PatternOf(false, false, false, true) is 1.
type Pattern uint8

// PatternOf packs four corner states, given in clockwise order starting
// at the top-left corner.
func PatternOf(p0, p1, p2, p3 bool) Pattern {
	var p Pattern
	for _, on := range [4]bool{p0, p1, p2, p3} {
		p <<= 1
		if on {
			p |= 1
		}
	}
	return p
}

// Corner reports whether corner i (0 to 3) is on.
func (p Pattern) Corner(i int) bool {
	return p&(8>>i) != 0
}

// Complement swaps on and off for all four corners.
func (p Pattern) Complement() Pattern {
	return ^p & 0xF
}

// IsSaddle reports whether p is one of the two checkerboard patterns,
// where diagonally opposite corners agree and adjacent corners differ.
func (p Pattern) IsSaddle() bool {
	return p == 0b0101 || p == 0b1010
}

// String returns the pattern as four letters, T for on and F for off.
func (p Pattern) String() string {
	if p > 0xF {
		return "Pattern(" + strconv.Itoa(int(p)) + ")"
	}
	var buf [4]byte
	for i := range buf {
		buf[i] = 'F'
		if p.Corner(i) {
			buf[i] = 'T'
		}
	}
	return string(buf[:])
}

// Code is an edge rule: it identifies which contour segments are drawn
// through a cell. For the codes with a single segment, the value is the
// set of crossed edges, using the Edge bits below. The two saddle codes
// have all four edges crossed and are told apart by value.
type Code uint8

// Edge rule codes.
const (
	CodeEmpty       Code = 0
	CodeLeftBottom  Code = 3
	CodeLeftRight   Code = 5
	CodeRightBottom Code = 6
	CodeTopLeft     Code = 9
	CodeTopBottom   Code = 10
	CodeTopRight    Code = 12

	// CodeSaddleTopLeft is used for FTFT: top-right and bottom-left are on.
	// The off corners p0 and p2 are cut off separately.
	CodeSaddleTopLeft Code = 15

	// CodeSaddleTopRight is used for TFTF: top-left and bottom-right are on.
	// The off corners p1 and p3 are cut off separately.
	CodeSaddleTopRight Code = 16
)

// Codes lists all valid edge rule codes in increasing order.
var Codes = []Code{
	CodeEmpty,
	CodeLeftBottom,
	CodeLeftRight,
	CodeRightBottom,
	CodeTopLeft,
	CodeTopBottom,
	CodeTopRight,
	CodeSaddleTopLeft,
	CodeSaddleTopRight,
}

// Valid reports whether c is one of the codes in Codes.
func (c Code) Valid() bool {
	return int(c) < len(segmentTable) && segmentTable[c].valid
}

// NumSegments returns the number of segments drawn for c.
// The result is 0 for invalid codes.
func (c Code) NumSegments() int {
	if !c.Valid() {
		return 0
	}
	return segmentTable[c].n
}

func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Edge names one of the four sides of a cell.
type Edge uint8

// The four cell edges. The values double as bits of a Code.
const (
	EdgeLeft   Edge = 1
	EdgeBottom Edge = 2
	EdgeRight  Edge = 4
	EdgeTop    Edge = 8
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	default:
		return "Edge(" + strconv.Itoa(int(e)) + ")"
	}
}

// classTable maps every corner pattern to its edge rule code.
//
// Complementary patterns share a code, since swapping figure and ground
// does not move the boundary. The only exception are the two
// checkerboard patterns: they are complements of each other but need
// different pairs of segments, so each gets its own saddle code.
var classTable = [16]Code{
	0b0000: CodeEmpty,
	0b0001: CodeLeftBottom,
	0b0010: CodeRightBottom,
	0b0011: CodeLeftRight,
	0b0100: CodeTopRight,
	0b0101: CodeSaddleTopLeft,
	0b0110: CodeTopBottom,
	0b0111: CodeTopLeft,
	0b1000: CodeTopLeft,
	0b1001: CodeTopBottom,
	0b1010: CodeSaddleTopRight,
	0b1011: CodeTopRight,
	0b1100: CodeLeftRight,
	0b1101: CodeRightBottom,
	0b1110: CodeLeftBottom,
	0b1111: CodeEmpty,
}

// edgePair is a segment between the midpoints of two cell edges.
type edgePair [2]Edge

type segmentRule struct {
	valid bool
	n     int
	pairs [2]edgePair
}

// segmentTable maps edge rule codes to the edge midpoints joined by the
// contour. It is indexed by Code; holes in the code range are invalid.
var segmentTable = [...]segmentRule{
	CodeEmpty:       {valid: true},
	CodeLeftBottom:  {valid: true, n: 1, pairs: [2]edgePair{{EdgeLeft, EdgeBottom}}},
	CodeLeftRight:   {valid: true, n: 1, pairs: [2]edgePair{{EdgeLeft, EdgeRight}}},
	CodeRightBottom: {valid: true, n: 1, pairs: [2]edgePair{{EdgeRight, EdgeBottom}}},
	CodeTopLeft:     {valid: true, n: 1, pairs: [2]edgePair{{EdgeTop, EdgeLeft}}},
	CodeTopBottom:   {valid: true, n: 1, pairs: [2]edgePair{{EdgeTop, EdgeBottom}}},
	CodeTopRight:    {valid: true, n: 1, pairs: [2]edgePair{{EdgeTop, EdgeRight}}},
	CodeSaddleTopLeft: {valid: true, n: 2, pairs: [2]edgePair{
		{EdgeTop, EdgeLeft},
		{EdgeRight, EdgeBottom},
	}},
	CodeSaddleTopRight: {valid: true, n: 2, pairs: [2]edgePair{
		{EdgeTop, EdgeRight},
		{EdgeBottom, EdgeLeft},
	}},
}

// ClassifyPattern returns the edge rule code for a corner pattern.
// Only the low four bits of p are used.
func ClassifyPattern(p Pattern) Code {
	return classTable[p&0xF]
}

// SegmentEdges returns the pairs of edges joined by the segments of code c.
// The result is nil for CodeEmpty and for invalid codes.
func SegmentEdges(c Code) [][2]Edge {
	if c.NumSegments() == 0 {
		return nil
	}
	rule := &segmentTable[c]
	res := make([][2]Edge, rule.n)
	for i := range rule.n {
		res[i] = rule.pairs[i]
	}
	return res
}
