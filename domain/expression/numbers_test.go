package expression

import (
	"slices"
	"testing"
)

func TestExtractNumbers(t *testing.T) {
	cases := []struct {
		expr string
		want []int
	}{
		{"(6+6)*12/9", []int{6, 6, 12, 9}},
		{"3.5", []int{3, 5}},
		{"-8*-3", []int{8, 3}},
		{"abc", nil},
		{"", nil},
		{"007+1", []int{7, 1}},
		{"1 2", []int{1, 2}},
	}
	for _, c := range cases {
		if got := ExtractNumbers(c.expr); !slices.Equal(got, c.want) {
			t.Errorf("ExtractNumbers(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}
