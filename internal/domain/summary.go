package domain

// ScoreCard is the record serialized by the JSON round-trip demo.
type ScoreCard struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Summary holds the extremes and total of a non-empty series.
type Summary struct {
	Min int
	Max int
	Sum int
}

// Partition splits a series by parity and tracks its running totals.
type Partition struct {
	Even   []int
	Odd    []int
	Sum    int
	Avg    float64
	Length int
}
