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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestFormatFromName(t *testing.T) {
	cases := []struct {
		name string
		want Format
		ok   bool
	}{
		{"out.png", PNG, true},
		{"OUT.PNG", PNG, true},
		{"dir.d/x.bmp", BMP, true},
		{"x.tif", TIFF, true},
		{"x.tiff", TIFF, true},
		{"x.jpg", 0, false},
		{"noext", 0, false},
	}
	for _, tc := range cases {
		got, err := FormatFromName(tc.name)
		if tc.ok != (err == nil) {
			t.Errorf("%s: unexpected error state %v", tc.name, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(2, 1, color.RGBA{A: 255})
	return img
}

func TestEncode(t *testing.T) {
	src := testImage()
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		TIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for format, decode := range decoders {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(buf, src, format); err != nil {
				t.Fatal(err)
			}
			img, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size changed: %v", img.Bounds())
			}
			for _, p := range []image.Point{{0, 0}, {1, 0}, {2, 1}} {
				r0, g0, b0, _ := src.At(p.X, p.Y).RGBA()
				r1, g1, b1, _ := img.At(p.X, p.Y).RGBA()
				if r0 != r1 || g0 != g1 || b0 != b1 {
					t.Errorf("pixel %v changed", p)
				}
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(filepath.Join(dir, "a.png"), testImage()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.png")); err != nil {
		t.Error(err)
	}

	err := WriteFile(filepath.Join(dir, "a.gif"), testImage())
	if err == nil {
		t.Error("unsupported format accepted")
	}
	if _, err := os.Stat(filepath.Join(dir, "a.gif")); !os.IsNotExist(err) {
		t.Error("file created for unsupported format")
	}
}

func TestScale(t *testing.T) {
	src := testImage()
	dst := Scale(src, 3)
	if dst.Bounds() != image.Rect(0, 0, 9, 6) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	for y := range 6 {
		for x := range 9 {
			if dst.RGBAAt(x, y) != src.RGBAAt(x/3, y/3) {
				t.Errorf("pixel (%d, %d): expected %v, got %v",
					x, y, src.RGBAAt(x/3, y/3), dst.RGBAAt(x, y))
			}
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Scale(img, 0) did not panic")
		}
	}()
	Scale(src, 0)
}
