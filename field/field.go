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

// Package field provides binary sample fields backed by raster images.
package field

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// ErrOutOfBounds is matched by errors for samples outside of the image.
var ErrOutOfBounds = errors.New("sample point out of bounds")

// OutOfBoundsError reports a sample point which does not fall on a pixel
// of the image.
type OutOfBoundsError struct {
	Point  vec.Vec2
	Bounds image.Rectangle
}

func (err *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sample point (%g, %g) outside %v", err.Point.X, err.Point.Y, err.Bounds)
}

// Is allows errors.Is(err, ErrOutOfBounds) to succeed.
func (err *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Predicate decides whether a pixel colour counts as "on".
type Predicate func(c color.Color) bool

// IsWhite reports whether c is pure white, ignoring alpha.  Colour
// values are un-premultiplied before the comparison, so that partially
// transparent white counts as white.  Fully transparent pixels carry no
// colour and are never white.
func IsWhite(c color.Color) bool {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return n.A != 0 && n.R == 0xffff && n.G == 0xffff && n.B == 0xffff
}

// Threshold returns a predicate which is true for colours whose
// luminance is at least level.
func Threshold(level uint8) Predicate {
	return func(c color.Color) bool {
		return color.GrayModel.Convert(c).(color.Gray).Y >= level
	}
}

// Image is a Field which samples the pixels of an image.
// The sample at point p is taken from the pixel containing p.
type Image struct {
	Img image.Image

	// On decides which pixels are on.  If nil, IsWhite is used.
	On Predicate
}

var _ contour.Field = (*Image)(nil)

// Sample implements the contour.Field interface.
func (f *Image) Sample(p vec.Vec2) (bool, error) {
	b := f.Img.Bounds()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false, &OutOfBoundsError{Point: p, Bounds: b}
	}
	pix := image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
	if !pix.In(b) {
		return false, &OutOfBoundsError{Point: p, Bounds: b}
	}

	c := f.Img.At(pix.X, pix.Y)
	if f.On == nil {
		return IsWhite(c), nil
	}
	return f.On(c), nil
}
