package glint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad / math.Pi * 180
}

// ParseDegrees parses a text angle in degrees and returns it in radians.
func ParseDegrees(s string) (float64, error) {
	deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrTypeMismatch)
	}
	if !isFinite(deg) {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrTypeMismatch)
	}
	return Radians(deg), nil
}

// ParseDegreesList parses whitespace separated angles, as typed at a prompt.
// It fails unless exactly n values are present.
func ParseDegreesList(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d angles, got %d: %w", n, len(fields), ErrInvalidArgument)
	}
	out := make([]float64, n)
	for i, f := range fields {
		rad, err := ParseDegrees(f)
		if err != nil {
			return nil, err
		}
		out[i] = rad
	}
	return out, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
