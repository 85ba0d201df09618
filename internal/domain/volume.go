package domain

import (
	"fmt"
	"math"
)

// Dimensions are the measured extents of a movement, in meters.
type Dimensions struct {
	Width  float64
	Length float64
	Height float64
}

// Validate rejects any non-positive or non-finite dimension.
func (d Dimensions) Validate() error {
	for _, v := range []float64{d.Width, d.Length, d.Height} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: width=%g length=%g height=%g (all must be positive)",
				ErrInvalidDimensions, d.Width, d.Length, d.Height)
		}
	}
	return nil
}

// Volume holds the dimensions together with the derived raw total (m³).
// Total is only ever produced by NewVolume.
type Volume struct {
	Dimensions
	Total float64
}

func NewVolume(d Dimensions) (Volume, error) {
	total, err := ComputeRaw(d.Width, d.Length, d.Height)
	if err != nil {
		return Volume{}, err
	}
	return Volume{Dimensions: d, Total: total}, nil
}

// ComputeRaw returns width × length × height.
func ComputeRaw(width, length, height float64) (float64, error) {
	d := Dimensions{Width: width, Length: length, Height: height}
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return width * length * height, nil
}

// ComputeAdjusted returns the swollen volume reported per movement:
// raw × (1 + factor).
func ComputeAdjusted(raw float64, t TerrainType) float64 {
	return raw * (1 + t.Factor())
}

// CubicationContribution is the per-movement term of the aggregate total,
// computed as raw × factor + raw.
func CubicationContribution(raw float64, t TerrainType) float64 {
	return raw*t.Factor() + raw
}
