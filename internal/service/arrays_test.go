package service_test

import (
	"slices"
	"testing"

	"github.com/msomdec/practice-demos/internal/service"
)

func TestArithmetic(t *testing.T) {
	if got := service.Add(2, 3); got != 5 {
		t.Errorf("Add(2, 3) = %d, want 5", got)
	}
	if got := service.Multiply(2, 5); got != 10 {
		t.Errorf("Multiply(2, 5) = %d, want 10", got)
	}
	if got := service.Subtract(10, 4); got != 6 {
		t.Errorf("Subtract(10, 4) = %d, want 6", got)
	}
	if got := service.Square(5); got != 25 {
		t.Errorf("Square(5) = %d, want 25", got)
	}
	if got := service.Multiply(1.5, 2.0); got != 3.0 {
		t.Errorf("Multiply(1.5, 2.0) = %g, want 3", got)
	}
}

func TestFilterEvenOdd(t *testing.T) {
	seven := []int{1, 2, 3, 4, 5, 6, 7}

	if got := service.FilterEven(seven); !slices.Equal(got, []int{2, 4, 6}) {
		t.Errorf("FilterEven = %v, want [2 4 6]", got)
	}
	if got := service.FilterOdd(seven); !slices.Equal(got, []int{1, 3, 5, 7}) {
		t.Errorf("FilterOdd = %v, want [1 3 5 7]", got)
	}
	if got := service.FilterOdd([]int{-3, -2}); !slices.Equal(got, []int{-3}) {
		t.Errorf("FilterOdd(negatives) = %v, want [-3]", got)
	}
	if got := service.FilterEven([]int{}); got == nil || len(got) != 0 {
		t.Errorf("FilterEven(empty) = %#v, want empty non-nil slice", got)
	}
}

func TestDoubleAndSum(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5}

	if got := service.Double(numbers); !slices.Equal(got, []int{2, 4, 6, 8, 10}) {
		t.Errorf("Double = %v", got)
	}
	if !slices.Equal(numbers, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Double modified its input: %v", numbers)
	}
	if got := service.Sum(numbers); got != 15 {
		t.Errorf("Sum = %d, want 15", got)
	}
	if got := service.Sum([]float64{}); got != 0 {
		t.Errorf("Sum(empty) = %g, want 0", got)
	}
}

func TestSumOfEvenSquares(t *testing.T) {
	if got := service.SumOfEvenSquares([]int{1, 2, 3, 4, 5, 6}); got != 56 {
		t.Fatalf("SumOfEvenSquares = %d, want 56", got)
	}
}

func TestReduceIsLeftFold(t *testing.T) {
	got := service.Reduce([]string{"a", "b", "c"}, "", func(acc, s string) string { return acc + s })
	if got != "abc" {
		t.Fatalf("Reduce = %q, want %q", got, "abc")
	}
}
