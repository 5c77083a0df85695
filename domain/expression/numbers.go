package expression

import (
	"math"
	"strconv"
)

// ExtractNumbers collects every maximal run of decimal digits in expr, in
// order of appearance and without deduplication. It is a lexical scan: signs,
// operators and decimal points are ignored, so "3.5" yields 3 and 5. A run
// too long for an int is reported as math.MaxInt.
func ExtractNumbers(expr string) []int {
	var nums []int
	for i := 0; i < len(expr); {
		if !isDigit(expr[i]) {
			i++
			continue
		}
		start := i
		for i < len(expr) && isDigit(expr[i]) {
			i++
		}
		n, err := strconv.Atoi(expr[start:i])
		if err != nil {
			n = math.MaxInt
		}
		nums = append(nums, n)
	}
	return nums
}
