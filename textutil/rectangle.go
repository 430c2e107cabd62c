package textutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the set of types a Rectangle can be measured in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rectangle is a width and height pair.
type Rectangle[T Number] struct {
	Width  T `json:"width"`
	Height T `json:"height"`
}

// Area returns Width*Height.
func (r Rectangle[T]) Area() T {
	return r.Width * r.Height
}

func (r Rectangle[T]) String() string {
	return fmt.Sprintf("(%v, %v)", r.Width, r.Height)
}

// BiggestRectangle returns the rectangle with the largest area. When several
// share the largest area the first of them is returned.
func BiggestRectangle[T Number](rects []Rectangle[T]) (Rectangle[T], error) {
	if len(rects) == 0 {
		return Rectangle[T]{}, fmt.Errorf("%w: no rectangles", ErrEmptyInput)
	}

	best := rects[0]
	bestArea := best.Area()
	for _, r := range rects[1:] {
		if area := r.Area(); area > bestArea {
			best, bestArea = r, area
		}
	}
	return best, nil
}

// ParseRectangle reads a rectangle written as "WxH", e.g. "3x4" or "2.5X1".
func ParseRectangle(s string) (Rectangle[float64], error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Rectangle[float64]{}, fmt.Errorf("%w: %q is not WxH", ErrMalformedRectangle, s)
	}

	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Rectangle[float64]{}, fmt.Errorf("%w: width %q: %w", ErrMalformedRectangle, w, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Rectangle[float64]{}, fmt.Errorf("%w: height %q: %w", ErrMalformedRectangle, h, err)
	}
	return Rectangle[float64]{Width: width, Height: height}, nil
}
