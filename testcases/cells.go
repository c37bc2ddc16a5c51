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

package testcases

import "seehuhn.de/go/geom/vec"

const (
	F = false
	T = true
)

var emptyCases = []TestCase{
	{
		Name:    "all_off",
		Corners: [4]bool{F, F, F, F},
		Code:    0,
	},
	{
		Name:    "all_on",
		Corners: [4]bool{T, T, T, T},
		Code:    0,
	},
}

// cornerCases have exactly one corner that differs from the other three.
var cornerCases = []TestCase{
	{
		Name:     "bottom_left_on",
		Corners:  [4]bool{F, F, F, T},
		Code:     3,
		Segments: [][2]vec.Vec2{seg(Left, Bottom)},
	},
	{
		Name:     "bottom_left_off",
		Corners:  [4]bool{T, T, T, F},
		Code:     3,
		Segments: [][2]vec.Vec2{seg(Left, Bottom)},
	},
	{
		Name:     "bottom_right_on",
		Corners:  [4]bool{F, F, T, F},
		Code:     6,
		Segments: [][2]vec.Vec2{seg(Right, Bottom)},
	},
	{
		Name:     "bottom_right_off",
		Corners:  [4]bool{T, T, F, T},
		Code:     6,
		Segments: [][2]vec.Vec2{seg(Right, Bottom)},
	},
	{
		Name:     "top_right_on",
		Corners:  [4]bool{F, T, F, F},
		Code:     12,
		Segments: [][2]vec.Vec2{seg(Top, Right)},
	},
	{
		Name:     "top_right_off",
		Corners:  [4]bool{T, F, T, T},
		Code:     12,
		Segments: [][2]vec.Vec2{seg(Top, Right)},
	},
	{
		Name:     "top_left_on",
		Corners:  [4]bool{T, F, F, F},
		Code:     9,
		Segments: [][2]vec.Vec2{seg(Top, Left)},
	},
	{
		Name:     "top_left_off",
		Corners:  [4]bool{F, T, T, T},
		Code:     9,
		Segments: [][2]vec.Vec2{seg(Top, Left)},
	},
}

// straightCases split the cell into two halves.
var straightCases = []TestCase{
	{
		Name:     "bottom_half_on",
		Corners:  [4]bool{F, F, T, T},
		Code:     5,
		Segments: [][2]vec.Vec2{seg(Left, Right)},
	},
	{
		Name:     "top_half_on",
		Corners:  [4]bool{T, T, F, F},
		Code:     5,
		Segments: [][2]vec.Vec2{seg(Left, Right)},
	},
	{
		Name:     "right_half_on",
		Corners:  [4]bool{F, T, T, F},
		Code:     10,
		Segments: [][2]vec.Vec2{seg(Top, Bottom)},
	},
	{
		Name:     "left_half_on",
		Corners:  [4]bool{T, F, F, T},
		Code:     10,
		Segments: [][2]vec.Vec2{seg(Top, Bottom)},
	},
}

// saddleCases are the two ambiguous checkerboard patterns.  In both,
// the segments cut off the corners which are off.
var saddleCases = []TestCase{
	{
		Name:    "top_right_bottom_left_on",
		Corners: [4]bool{F, T, F, T},
		Code:    15,
		Segments: [][2]vec.Vec2{
			seg(Top, Left),
			seg(Right, Bottom),
		},
	},
	{
		Name:    "top_left_bottom_right_on",
		Corners: [4]bool{T, F, T, F},
		Code:    16,
		Segments: [][2]vec.Vec2{
			seg(Top, Right),
			seg(Bottom, Left),
		},
	},
}
