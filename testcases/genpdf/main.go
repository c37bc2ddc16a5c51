// Command genpdf draws every contour scenario to a PDF file, for visual
// review.  The "on" corners are shown as white squares, the contour
// segments as grey lines.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/render"
	"seehuhn.de/go/contour/testcases"
)

const refDir = "testdata/reference"

const (
	cellSize = 64
	margin   = 16
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	const size = cellSize + 2*margin
	w, err := render.CreatePDF(pdfPath, size, size)
	if err != nil {
		return err
	}
	w.LineWidth = 2
	w.Line = 0.6
	w.SampleSize = 6

	// the unit cell, scaled and shifted into the page
	var cell contour.Cell
	for i, p := range []vec.Vec2{testcases.P0, testcases.P1, testcases.P2, testcases.P3} {
		cell[i] = vec.Vec2{X: margin + cellSize*p.X, Y: margin + cellSize*p.Y}
	}

	c := tc.Corners
	for i, on := range c {
		if on {
			w.MarkSample(cell[i])
		}
	}

	code := contour.ClassifyPattern(contour.PatternOf(c[0], c[1], c[2], c[3]))
	if int(code) != tc.Code {
		return fmt.Errorf("expected code %d, got %d", tc.Code, code)
	}
	for _, s := range contour.Trace(code, cell) {
		w.DrawSegment(s.A, s.B)
	}

	return w.Close()
}
