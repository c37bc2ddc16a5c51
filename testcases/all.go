package testcases

// All contains all cell test cases, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]TestCase{
	"empty":    emptyCases,
	"corner":   cornerCases,
	"straight": straightCases,
	"saddle":   saddleCases,
}

// Fields contains the sample grid test cases.
var Fields = []FieldCase{
	singleDot,
	hole,
	checkerboard,
	stripe,
}
