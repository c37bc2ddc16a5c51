// Command export writes the contour scenarios and the full edge rule table
// to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

func main() {
	var out struct {
		Isovalue  float64        `json:"isovalue"`
		Table     []jsonRule     `json:"table"`
		TestCases []jsonTestCase `json:"testcases"`
		Fields    []jsonField    `json:"fields"`
	}
	out.Isovalue = contour.Isovalue

	unit := contour.Cell{testcases.P0, testcases.P1, testcases.P2, testcases.P3}
	for p := range contour.Pattern(16) {
		code := contour.ClassifyPattern(p)
		out.Table = append(out.Table, jsonRule{
			Pattern:  p.String(),
			Code:     int(code),
			Segments: segmentsToJSON(contour.Trace(code, unit)),
		})
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	for _, fc := range testcases.Fields {
		out.Fields = append(out.Fields, jsonField{
			Name:    fc.Name,
			Samples: fc.Samples,
			Codes:   fc.Codes,
		})
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/table.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonRule struct {
	Pattern  string        `json:"pattern"`
	Code     int           `json:"code"`
	Segments [][][]float64 `json:"segments"`
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Corners  [4]bool       `json:"corners"`
	Pattern  string        `json:"pattern"`
	Code     int           `json:"code"`
	Segments [][][]float64 `json:"segments"`
}

type jsonField struct {
	Name    string   `json:"name"`
	Samples [][]bool `json:"samples"`
	Codes   [][]int  `json:"codes"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	c := tc.Corners
	segs := make([]contour.Segment, len(tc.Segments))
	for i, s := range tc.Segments {
		segs[i] = contour.Segment{A: s[0], B: s[1]}
	}
	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Corners:  c,
		Pattern:  contour.PatternOf(c[0], c[1], c[2], c[3]).String(),
		Code:     tc.Code,
		Segments: segmentsToJSON(segs),
	}
}

func segmentsToJSON(segs []contour.Segment) [][][]float64 {
	res := make([][][]float64, 0, len(segs))
	for _, s := range segs {
		res = append(res, [][]float64{point(s.A), point(s.B)})
	}
	return res
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}
