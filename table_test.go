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
	"slices"
	"testing"
)

func TestClassifyTotal(t *testing.T) {
	for p := range Pattern(16) {
		code := ClassifyPattern(p)
		if !code.Valid() {
			t.Errorf("%s: invalid code %d", p, code)
		}
		if !slices.Contains(Codes, code) {
			t.Errorf("%s: code %d not listed in Codes", p, code)
		}
	}
}

func TestClassifyTable(t *testing.T) {
	expected := [16]Code{0, 3, 6, 5, 12, 15, 10, 9, 9, 10, 16, 12, 5, 6, 3, 0}
	for p := range Pattern(16) {
		if got := ClassifyPattern(p); got != expected[p] {
			t.Errorf("%s: expected %d, got %d", p, expected[p], got)
		}
	}
}

func TestComplementSymmetry(t *testing.T) {
	for p := range Pattern(16) {
		a := ClassifyPattern(p)
		b := ClassifyPattern(p.Complement())
		if p.IsSaddle() {
			if a == b {
				t.Errorf("%s: saddle shares code %d with its complement", p, a)
			}
			continue
		}
		if a != b {
			t.Errorf("%s: code %d differs from complement code %d", p, a, b)
		}
	}
}

func TestSaddleCodes(t *testing.T) {
	ftft := PatternOf(false, true, false, true)
	tftf := PatternOf(true, false, true, false)
	if got := ClassifyPattern(ftft); got != CodeSaddleTopLeft {
		t.Errorf("FTFT: expected %d, got %d", CodeSaddleTopLeft, got)
	}
	if got := ClassifyPattern(tftf); got != CodeSaddleTopRight {
		t.Errorf("TFTF: expected %d, got %d", CodeSaddleTopRight, got)
	}

	var saddles []Pattern
	for p := range Pattern(16) {
		if p.IsSaddle() {
			saddles = append(saddles, p)
		}
	}
	if !slices.Equal(saddles, []Pattern{ftft, tftf}) {
		t.Errorf("unexpected saddle patterns %v", saddles)
	}
}

// crossedEdges returns the edges whose two end points differ.
func crossedEdges(p Pattern) Code {
	var c Code
	edges := [4]struct {
		e    Edge
		i, j int
	}{
		{EdgeTop, 0, 1},
		{EdgeRight, 1, 2},
		{EdgeBottom, 2, 3},
		{EdgeLeft, 3, 0},
	}
	for _, edge := range edges {
		if p.Corner(edge.i) != p.Corner(edge.j) {
			c |= Code(edge.e)
		}
	}
	return c
}

// TestCodeIsCrossedEdges checks that for all non-saddle patterns the code
// is the set of edges where the contour crosses.
func TestCodeIsCrossedEdges(t *testing.T) {
	for p := range Pattern(16) {
		crossed := crossedEdges(p)
		code := ClassifyPattern(p)
		if p.IsSaddle() {
			if crossed != 15 {
				t.Errorf("%s: expected all four edges crossed, got %d", p, crossed)
			}
			continue
		}
		if code != crossed {
			t.Errorf("%s: code %d, crossed edges %d", p, code, crossed)
		}
	}
}

func TestSegmentEdgesMatchCode(t *testing.T) {
	for _, code := range Codes {
		pairs := SegmentEdges(code)
		if len(pairs) != code.NumSegments() {
			t.Errorf("code %d: %d pairs, expected %d", code, len(pairs), code.NumSegments())
		}

		var used Code
		for _, pair := range pairs {
			if pair[0] == pair[1] {
				t.Errorf("code %d: segment joins edge %s to itself", code, pair[0])
			}
			for _, e := range pair {
				if used&Code(e) != 0 {
					t.Errorf("code %d: edge %s used twice", code, e)
				}
				used |= Code(e)
			}
		}
		switch code {
		case CodeSaddleTopLeft, CodeSaddleTopRight:
			if used != 15 {
				t.Errorf("code %d: saddle uses edges %d", code, used)
			}
		default:
			if used != code {
				t.Errorf("code %d: segments use edges %d", code, used)
			}
		}
	}
}

func TestNumSegments(t *testing.T) {
	for _, code := range Codes {
		want := 1
		switch code {
		case CodeEmpty:
			want = 0
		case CodeSaddleTopLeft, CodeSaddleTopRight:
			want = 2
		}
		if got := code.NumSegments(); got != want {
			t.Errorf("code %d: expected %d segments, got %d", code, want, got)
		}
	}
}

func TestValid(t *testing.T) {
	for c := range Code(32) {
		if c.Valid() != slices.Contains(Codes, c) {
			t.Errorf("code %d: Valid() = %t", c, c.Valid())
		}
	}
	if got := SegmentEdges(7); got != nil {
		t.Errorf("invalid code: expected nil, got %v", got)
	}
}

func TestPattern(t *testing.T) {
	cases := []struct {
		corners [4]bool
		p       Pattern
		s       string
	}{
		{[4]bool{false, false, false, false}, 0, "FFFF"},
		{[4]bool{false, false, false, true}, 1, "FFFT"},
		{[4]bool{true, false, false, false}, 8, "TFFF"},
		{[4]bool{false, true, false, true}, 5, "FTFT"},
		{[4]bool{true, true, true, false}, 14, "TTTF"},
	}
	for _, tc := range cases {
		c := tc.corners
		p := PatternOf(c[0], c[1], c[2], c[3])
		if p != tc.p {
			t.Errorf("%v: expected pattern %d, got %d", c, tc.p, p)
		}
		if p.String() != tc.s {
			t.Errorf("%v: expected %q, got %q", c, tc.s, p.String())
		}
		for i := range 4 {
			if p.Corner(i) != c[i] {
				t.Errorf("%s: corner %d is %t", p, i, p.Corner(i))
			}
		}
		if p.Complement().Complement() != p {
			t.Errorf("%s: double complement is %s", p, p.Complement().Complement())
		}
	}
	if s := Pattern(16).String(); s != "Pattern(16)" {
		t.Errorf("unexpected string %q", s)
	}
}
