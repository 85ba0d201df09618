package domain

import (
	"fmt"
	"math"
)

// UTM coordinate bounds accepted for a movement.
const (
	CoordinateMin = 0.0
	CoordinateMax = 10000.0
)

// Coordinates is a UTM (east, north) pair.
type Coordinates struct {
	East  float64
	North float64
}

func (c Coordinates) Validate() error {
	if !inCoordinateRange(c.East) || !inCoordinateRange(c.North) {
		return fmt.Errorf("%w: east=%g north=%g (each must be within %g-%g)",
			ErrInvalidCoordinateRange, c.East, c.North, CoordinateMin, CoordinateMax)
	}
	return nil
}

// String formats the pair as "east, north".
func (c Coordinates) String() string {
	return fmt.Sprintf("%s, %s", FormatNumber(c.East), FormatNumber(c.North))
}

func inCoordinateRange(v float64) bool {
	return !math.IsNaN(v) && v >= CoordinateMin && v <= CoordinateMax
}
