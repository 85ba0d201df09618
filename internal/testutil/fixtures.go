package testutil

import (
	"github.com/alexanderramin/earthmove/internal/domain"
)

type MovementOption func(*domain.MovementInput)

func WithDimensions(width, length, height float64) MovementOption {
	return func(in *domain.MovementInput) {
		in.Dimensions = domain.Dimensions{Width: width, Length: length, Height: height}
	}
}

func WithTerrain(t domain.TerrainType) MovementOption {
	return func(in *domain.MovementInput) {
		in.Terrain = t
	}
}

func WithCoordinates(east, north float64) MovementOption {
	return func(in *domain.MovementInput) {
		in.Coordinates = domain.Coordinates{East: east, North: north}
	}
}

// NewTestMovement returns a valid input: 2×3×4 m of dry clay at (100, 200).
func NewTestMovement(descriptor string, opts ...MovementOption) domain.MovementInput {
	in := domain.MovementInput{
		Descriptor: descriptor,
		MovementChange: domain.MovementChange{
			Dimensions:  domain.Dimensions{Width: 2, Length: 3, Height: 4},
			Terrain:     domain.TerrainDryClay,
			Coordinates: domain.Coordinates{East: 100, North: 200},
		},
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

