package service

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func Add[T Number](a, b T) T { return a + b }

func Multiply[T Number](a, b T) T { return a * b }

func Subtract[T Number](a, b T) T { return a - b }

func Square[T Number](x T) T { return x * x }
