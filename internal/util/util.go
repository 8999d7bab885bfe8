// Package util provides small generic helpers shared across packages.
package util

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sum returns the sum of all values in nums.
func Sum[T constraints.Integer](nums []T) T {
	var total T
	for _, v := range nums {
		total += v
	}
	return total
}

// FilterZeros returns nums without its zero elements.
func FilterZeros[T constraints.Integer](nums []T) []T {
	var res []T
	for _, v := range nums {
		if v != 0 {
			res = append(res, v)
		}
	}
	return res
}

// CrossProduct returns every combination that picks one element from
// each of the given sets, ordered by the position of the chosen
// elements (the first set varies slowest). An empty set in any
// position yields no combinations.
func CrossProduct[T any](sets [][]T) [][]T {
	if len(sets) == 0 {
		return nil
	}
	combos := [][]T{nil}
	for _, set := range sets {
		next := make([][]T, 0, len(combos)*len(set))
		for _, combo := range combos {
			for _, item := range set {
				c := make([]T, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, item))
			}
		}
		combos = next
	}
	return combos
}
