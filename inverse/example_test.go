package inverse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/inverse"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ExampleInvert inverts a 2×2 matrix and shows the singular failure.
func ExampleInvert() {
	a, _ := matrix.FromInts([][]int{{4, 7}, {2, 6}})
	inv, _, _ := inverse.Invert(a)
	fmt.Print(inv)

	s, _ := matrix.FromInts([][]int{{1, 2}, {2, 4}})
	_, _, err := inverse.Invert(s)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// [3/5, -7/10]
	// [-1/5, 2/5]
	// true
}

// ExampleCheckInvertible reports rank and determinant without building [A | I].
func ExampleCheckInvertible() {
	a, _ := matrix.FromInts([][]int{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})
	chk, _ := inverse.CheckInvertible(a)
	fmt.Println(chk.Invertible, chk.Rank, chk.Determinant)
	// Output:
	// false 2 0
}
