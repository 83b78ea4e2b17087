package wavetable

import (
	"fmt"
	"strings"
)

// Shape selects a harmonic series preset.
type Shape int

const (
	// ShapeSquare sums odd harmonics weighted 1/h.
	ShapeSquare Shape = iota
	// ShapeSawtooth sums all harmonics weighted 1/h.
	ShapeSawtooth
	// ShapeTriangle sums odd harmonics weighted ±1/h², alternating in sign.
	ShapeTriangle
)

var shapeNames = map[Shape]string{
	ShapeSquare:   "square",
	ShapeSawtooth: "sawtooth",
	ShapeTriangle: "triangle",
}

// Shapes returns all presets in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeSawtooth, ShapeTriangle}
}

// String returns the lower-case preset name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape resolves a preset by name. "sqr", "saw" and "tri" are accepted
// as short forms.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square", "sqr":
		return ShapeSquare, nil
	case "sawtooth", "saw":
		return ShapeSawtooth, nil
	case "triangle", "tri":
		return ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("wavetable: unknown shape %q", name)
	}
}

// Step returns the harmonic step of the preset.
func (s Shape) Step() int {
	if s == ShapeSawtooth {
		return 1
	}
	return 2
}

// Weight returns the amplitude function of the preset.
func (s Shape) Weight() HarmonicWeight {
	switch s {
	case ShapeTriangle:
		return triangleWeight
	default:
		return inverseWeight
	}
}

// inverseWeight is the square and sawtooth Fourier coefficient.
func inverseWeight(harmonic int) float64 {
	return 1.0 / float64(harmonic)
}

func triangleWeight(harmonic int) float64 {
	h := float64(harmonic)
	w := 1.0 / (h * h)
	if (harmonic/2)%2 == 1 {
		return -w
	}
	return w
}
