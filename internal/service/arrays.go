package service

import "golang.org/x/exp/constraints"

// Map returns a new slice holding fn applied to every element of xs.
func Map[T, U any](xs []T, fn func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x))
	}
	return out
}

// Filter returns the elements of xs for which keep reports true, in order.
// The result is never nil.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := []T{}
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reduce folds xs from the left, starting from initial.
func Reduce[T, A any](xs []T, initial A, fn func(acc A, x T) A) A {
	acc := initial
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

func isEven[T constraints.Integer](n T) bool { return n%2 == 0 }

func isOdd[T constraints.Integer](n T) bool { return n%2 != 0 }

// Double multiplies every element by two.
func Double[T Number](xs []T) []T {
	return Map(xs, func(x T) T { return x * 2 })
}

// FilterEven keeps the even elements of xs.
func FilterEven[T constraints.Integer](xs []T) []T {
	return Filter(xs, isEven[T])
}

// FilterOdd keeps the odd elements of xs. Negative odd numbers count as odd.
func FilterOdd[T constraints.Integer](xs []T) []T {
	return Filter(xs, isOdd[T])
}

// Sum adds all elements of xs. The sum of an empty slice is zero.
func Sum[T Number](xs []T) T {
	return Reduce(xs, T(0), func(acc, x T) T { return acc + x })
}

// SumOfEvenSquares squares the even elements of xs and adds them up.
func SumOfEvenSquares[T constraints.Integer](xs []T) T {
	return Sum(Map(FilterEven(xs), Square[T]))
}
