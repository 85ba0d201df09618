package domain

// ReportLine is one movement in a cubication report.
type ReportLine struct {
	Descriptor     string
	RawVolume      float64
	Terrain        TerrainType
	Coordinates    Coordinates
	AdjustedVolume float64
}

// Report is the ordered per-movement breakdown plus the grand total.
type Report struct {
	Lines []ReportLine
	Total float64
}

// TotalCubication sums the cubication contribution of every movement.
// An empty slice yields 0.
func TotalCubication(movements []MovementSummary) float64 {
	var total float64
	for _, m := range movements {
		total += CubicationContribution(m.RawVolume, m.Terrain)
	}
	return total
}

// BuildReport assembles a report in the order the movements are given.
func BuildReport(movements []MovementSummary) (*Report, error) {
	if len(movements) == 0 {
		return nil, ErrNothingToReport
	}
	r := &Report{Lines: make([]ReportLine, 0, len(movements))}
	for _, m := range movements {
		r.Lines = append(r.Lines, ReportLine{
			Descriptor:     m.Descriptor,
			RawVolume:      m.RawVolume,
			Terrain:        m.Terrain,
			Coordinates:    m.Coordinates,
			AdjustedVolume: m.AdjustedVolume(),
		})
	}
	r.Total = TotalCubication(movements)
	return r, nil
}
