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

package field

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"seehuhn.de/go/contour"
)

// Generate returns a black image of the given size where the sample
// points are set to black or white at random.  Sample points are the
// pixels (x, y) with x a multiple of dx and y a multiple of dy, excluding
// the one pixel wide border of the image.
func Generate(width, height, dx, dy int, rng *rand.Rand) *image.Gray {
	checkSpacing(dx, dy)
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 1; y < height-1; y++ {
		if y%dy != 0 {
			continue
		}
		row := img.Pix[y*img.Stride:]
		for x := 1; x < width-1; x++ {
			if x%dx == 0 {
				row[x] = uint8(rng.IntN(2) * 255)
			}
		}
	}
	return img
}

// Lattice returns the grid of cells for an image created by Generate.
// These are the cells whose bottom-right corner is a sample point; the
// top and left edges of the outermost cells lie on the image border.
func Lattice(width, height, dx, dy int) contour.Grid {
	checkSpacing(dx, dy)
	return contour.Grid{
		DX:   float64(dx),
		DY:   float64(dy),
		Cols: max(width-2, 0) / dx,
		Rows: max(height-2, 0) / dy,
	}
}

// New generates a random image using a PCG source with the given seed
// and returns a field which samples it.
func New(width, height, dx, dy int, seed uint64) *Image {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Image{Img: Generate(width, height, dx, dy, rng)}
}

// FromSamples draws a rectangular array of samples into an image, with
// lattice spacing dx and dy and the first sample at pixel (0, 0).
// Samples[row][col] is placed at pixel (col*dx, row*dy).
// The grid for the resulting image has origin (0, 0) and one cell fewer
// than samples in each direction.
func FromSamples(samples [][]bool, dx, dy int) (*Image, contour.Grid) {
	checkSpacing(dx, dy)
	rows := len(samples)
	cols := 0
	if rows > 0 {
		cols = len(samples[0])
	}

	img := image.NewGray(image.Rect(0, 0, max(cols-1, 0)*dx+1, max(rows-1, 0)*dy+1))
	for row, line := range samples {
		if len(line) != cols {
			panic(fmt.Sprintf("field: row %d has %d samples, expected %d", row, len(line), cols))
		}
		for col, on := range line {
			if on {
				img.SetGray(col*dx, row*dy, color.Gray{Y: 255})
			}
		}
	}

	grid := contour.Grid{
		DX:   float64(dx),
		DY:   float64(dy),
		Cols: max(cols-1, 0),
		Rows: max(rows-1, 0),
	}
	return &Image{Img: img}, grid
}

func checkSpacing(dx, dy int) {
	if dx <= 0 || dy <= 0 {
		panic(fmt.Sprintf("field: invalid lattice spacing %d×%d", dx, dy))
	}
}
