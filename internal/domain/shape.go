package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// ShapeKind is the tag that selects a Shape variant.
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
)

// Shape is a closed set of geometric variants selected by Kind.
type Shape interface {
	Kind() ShapeKind
	Area() float64
}

// Circle is the circle variant of Shape.
type Circle struct {
	Radius float64
}

func (Circle) Kind() ShapeKind { return ShapeCircle }

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Rectangle is the rectangle variant of Shape.
type Rectangle struct {
	Width  float64
	Height float64
}

func (Rectangle) Kind() ShapeKind { return ShapeRectangle }

func (r Rectangle) Area() float64 { return r.Width * r.Height }

// DecodeShape reads a tagged JSON object and returns the matching variant.
// The "kind" field decides which of the remaining fields are read.
func DecodeShape(data []byte) (Shape, error) {
	var raw struct {
		Kind   ShapeKind `json:"kind"`
		Radius float64   `json:"radius"`
		Width  float64   `json:"width"`
		Height float64   `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode shape: %v", ErrInvalidInput, err)
	}

	switch raw.Kind {
	case ShapeCircle:
		return Circle{Radius: raw.Radius}, nil
	case ShapeRectangle:
		return Rectangle{Width: raw.Width, Height: raw.Height}, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape kind %q", ErrInvalidInput, raw.Kind)
	}
}
