package math3d

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("coordinate array out of bounds")
	ErrParse       = errors.New("malformed vector")
)

// Vector is a 3-component floating-point vector.
// Components are stored as given: no normalization, NaN and Inf are kept.
type Vector struct {
	X, Y, Z float32
}

// NewVector returns the vector at the origin.
func NewVector() Vector { return Vector{} }

func NewVectorXYZ(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorFromArray reads x, y and z from the first three elements of coords.
// Extra elements are ignored; fewer than three is an error, never a zero fill.
func VectorFromArray(coords []float32) (Vector, error) {
	if len(coords) < 3 {
		return Vector{}, fmt.Errorf("%w: need 3 coordinates, got %d", ErrOutOfBounds, len(coords))
	}
	return Vector{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ToArray returns a newly allocated [x, y, z] slice.
func (v Vector) ToArray() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

func (v Vector) Components() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatComponent(v.X), formatComponent(v.Y), formatComponent(v.Z))
}

// ParseVector reads "x,y,z". Surrounding spaces and parentheses are allowed.
func ParseVector(s string) (Vector, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Vector{}, fmt.Errorf("%w: %q has %d components", ErrParse, s, len(parts))
	}

	coords := make([]float32, 0, 3)
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Vector{}, fmt.Errorf("%w: %q: %w", ErrParse, s, err)
		}
		coords = append(coords, float32(f))
	}
	return VectorFromArray(coords)
}

func formatComponent(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
