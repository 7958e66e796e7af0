package grouping

import (
	"slices"
	"testing"
)

func TestGroups(t *testing.T) {
	tests := []struct {
		count int
		want  []int
	}{
		{0, []int{}},
		{1, []int{1}},
		{2, []int{2}},
		{3, []int{3}},
		{4, []int{4}},
		{5, []int{3, 2}},
		{6, []int{4, 2}},
		{7, []int{4, 3}},
		{8, []int{4, 2, 2}},
		{9, []int{4, 3, 2}},
		{10, []int{10}},
		{17, []int{10, 4, 3}},
		{20, []int{10, 10}},
		{25, []int{10, 10, 4, 1}},
		{-3, []int{}},
	}

	for _, tt := range tests {
		got := Groups(tt.count)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Groups(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestGroupsInvariants(t *testing.T) {
	allowed := map[int]bool{1: true, 2: true, 3: true, 4: true, 10: true}

	for count := 0; count <= 50; count++ {
		groups := Groups(count)
		sum := 0
		for _, g := range groups {
			if !allowed[g] {
				t.Errorf("Groups(%d) contains %d", count, g)
			}
			sum += g
		}
		if sum != count {
			t.Errorf("Groups(%d) sums to %d", count, sum)
		}
	}
}

func TestGroupsReturnsFreshSlice(t *testing.T) {
	a := Groups(8)
	a[0] = 99
	if b := Groups(8); b[0] != 4 {
		t.Fatalf("table mutated through result: %v", b)
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		n, perRow int
		want      []int
	}{
		{0, 5, []int{}},
		{3, 5, []int{3}},
		{5, 5, []int{5}},
		{6, 5, []int{5, 1}},
		{12, 5, []int{5, 5, 2}},
		{7, 0, []int{7}},
	}

	for _, tt := range tests {
		if got := Rows(tt.n, tt.perRow); !slices.Equal(got, tt.want) {
			t.Errorf("Rows(%d, %d) = %v, want %v", tt.n, tt.perRow, got, tt.want)
		}
	}
}
