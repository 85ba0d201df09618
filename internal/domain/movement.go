package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MovementRecord is a single recorded earth movement. Volume, terrain and
// coordinates are owned by the record and never shared.
type MovementRecord struct {
	ID          string
	Descriptor  string
	Volume      Volume
	Terrain     TerrainType
	SwellFactor float64 // resolved from Terrain when the record was written
	Coordinates Coordinates
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdjustedVolume returns the swollen volume of the record.
func (m *MovementRecord) AdjustedVolume() float64 {
	return ComputeAdjusted(m.Volume.Total, m.Terrain)
}

// Summary projects the record onto the fields the reporting path reads.
func (m *MovementRecord) Summary() MovementSummary {
	return MovementSummary{
		Descriptor:  m.Descriptor,
		RawVolume:   m.Volume.Total,
		Terrain:     m.Terrain,
		Coordinates: m.Coordinates,
	}
}

// MovementSummary is the joined listing row used for totals and reports.
type MovementSummary struct {
	Descriptor  string
	RawVolume   float64
	Terrain     TerrainType
	Coordinates Coordinates
}

func (s MovementSummary) AdjustedVolume() float64 {
	return ComputeAdjusted(s.RawVolume, s.Terrain)
}

// NormalizeDescriptor trims surrounding whitespace and rejects empty
// descriptors.
func NormalizeDescriptor(descriptor string) (string, error) {
	d := strings.TrimSpace(descriptor)
	if d == "" {
		return "", fmt.Errorf("%w: descriptor is required", ErrInvalidDescriptor)
	}
	return d, nil
}

// ParseNumber reads a user- or file-supplied number. A lone comma is a
// decimal comma ("2,5"). When a point is present, commas are thousands
// separators ("1,000.5").
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// FormatNumber renders a float with the shortest exact representation.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MovementChange carries every field a movement's full-replace edit needs.
type MovementChange struct {
	Dimensions  Dimensions
	Terrain     TerrainType
	Coordinates Coordinates
}

// Validate checks dimensions, terrain type and coordinate range.
func (c MovementChange) Validate() error {
	if err := c.Dimensions.Validate(); err != nil {
		return err
	}
	if _, err := ParseTerrainType(c.Terrain.Code()); err != nil {
		return err
	}
	return c.Coordinates.Validate()
}

// MovementInput is a new movement before it is stored.
type MovementInput struct {
	Descriptor string
	MovementChange
}
