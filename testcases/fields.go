package testcases

var singleDot = FieldCase{
	Name: "single_dot",
	Samples: [][]bool{
		{F, F, F},
		{F, T, F},
		{F, F, F},
	},
	Codes: [][]int{
		{6, 3},
		{12, 9},
	},
}

// hole is the complement of singleDot and has the same codes.
var hole = FieldCase{
	Name: "hole",
	Samples: [][]bool{
		{T, T, T},
		{T, F, T},
		{T, T, T},
	},
	Codes: [][]int{
		{6, 3},
		{12, 9},
	},
}

var checkerboard = FieldCase{
	Name: "checkerboard",
	Samples: [][]bool{
		{T, F, T},
		{F, T, F},
		{T, F, T},
	},
	Codes: [][]int{
		{16, 15},
		{15, 16},
	},
}

var stripe = FieldCase{
	Name: "stripe",
	Samples: [][]bool{
		{F, T, T, F},
		{F, T, T, F},
	},
	Codes: [][]int{
		{10, 0, 10},
	},
}
