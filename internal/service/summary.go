package service

import "github.com/msomdec/practice-demos/internal/domain"

// SummarizeArray computes min, max and sum in a single pass.
// It reports false for an empty slice.
func SummarizeArray(xs []int) (domain.Summary, bool) {
	if len(xs) == 0 {
		return domain.Summary{}, false
	}

	s := domain.Summary{Min: xs[0], Max: xs[0]}
	for _, v := range xs {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}
	return s, true
}

// SummarizeArrayReduce is SummarizeArray expressed as a fold.
func SummarizeArrayReduce(xs []int) (domain.Summary, bool) {
	if len(xs) == 0 {
		return domain.Summary{}, false
	}

	initial := domain.Summary{Min: xs[0], Max: xs[0]}
	return Reduce(xs, initial, func(acc domain.Summary, v int) domain.Summary {
		acc.Min = min(acc.Min, v)
		acc.Max = max(acc.Max, v)
		acc.Sum += v
		return acc
	}), true
}

// Partition splits xs into even and odd values and computes the
// average. The average of an empty slice is 0.
func Partition(xs []int) domain.Partition {
	p := Reduce(xs, domain.Partition{Even: []int{}, Odd: []int{}}, func(acc domain.Partition, v int) domain.Partition {
		if isEven(v) {
			acc.Even = append(acc.Even, v)
		} else {
			acc.Odd = append(acc.Odd, v)
		}
		acc.Sum += v
		acc.Length++
		return acc
	})

	if p.Length > 0 {
		p.Avg = float64(p.Sum) / float64(p.Length)
	}
	return p
}
