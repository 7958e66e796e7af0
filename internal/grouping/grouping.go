// Package grouping splits a count of items into the visual groups a child
// sees on screen.
package grouping

// Full is the size of a complete group.
const Full = 10

// remainders maps count%10 to the groups drawn after the full groups.
var remainders = [Full][]int{
	0: nil,
	1: {1},
	2: {2},
	3: {3},
	4: {4},
	5: {3, 2},
	6: {4, 2},
	7: {4, 3},
	8: {4, 2, 2},
	9: {4, 3, 2},
}

// Groups returns the ordered group sizes for count items: as many groups of
// 10 as fit, then the remainder split per the table above. The sizes sum to
// count. Negative counts yield no groups.
func Groups(count int) []int {
	if count <= 0 {
		return []int{}
	}

	out := make([]int, 0, count/Full+3)
	for count >= Full {
		out = append(out, Full)
		count -= Full
	}
	return append(out, remainders[count]...)
}

// Rows splits n items into rows of at most perRow items. A non-positive
// perRow puts everything on one row.
func Rows(n, perRow int) []int {
	if n <= 0 {
		return []int{}
	}
	if perRow <= 0 {
		return []int{n}
	}

	out := make([]int, 0, (n+perRow-1)/perRow)
	for n > perRow {
		out = append(out, perRow)
		n -= perRow
	}
	return append(out, n)
}
