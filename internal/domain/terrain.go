package domain

import "fmt"

// TerrainType classifies the excavated material. Codes 1-8 are the only
// valid values.
type TerrainType int

const (
	TerrainNaturalClay TerrainType = iota + 1
	TerrainDryClay
	TerrainWetClay
	TerrainDryGravel
	TerrainWetGravel
	TerrainRock75
	TerrainRock50
	TerrainRock25
)

type terrainInfo struct {
	key    string
	label  string
	factor float64
}

// terrainCatalog is indexed by code; index 0 is unused.
var terrainCatalog = [...]terrainInfo{
	TerrainNaturalClay: {key: "arcilla_natural", label: "Natural clay", factor: 0.83},
	TerrainDryClay:     {key: "arcilla_seca", label: "Dry clay", factor: 0.81},
	TerrainWetClay:     {key: "arcilla_humeda", label: "Wet clay", factor: 0.80},
	TerrainDryGravel:   {key: "grava_seca", label: "Dry gravel", factor: 0.86},
	TerrainWetGravel:   {key: "grava_humeda", label: "Wet gravel", factor: 0.84},
	TerrainRock75:      {key: "roca_75", label: "Rock 75%", factor: 0.70},
	TerrainRock50:      {key: "roca_50", label: "Rock 50%", factor: 0.75},
	TerrainRock25:      {key: "roca_25", label: "Rock 25%", factor: 0.80},
}

// ParseTerrainType coerces a raw code into a TerrainType.
func ParseTerrainType(code int) (TerrainType, error) {
	t := TerrainType(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: code %d (expected 1-%d)", ErrInvalidTerrainType, code, len(terrainCatalog)-1)
	}
	return t, nil
}

// TerrainTypes returns every terrain type in code order.
func TerrainTypes() []TerrainType {
	out := make([]TerrainType, 0, len(terrainCatalog)-1)
	for code := 1; code < len(terrainCatalog); code++ {
		out = append(out, TerrainType(code))
	}
	return out
}

func (t TerrainType) Valid() bool {
	return t >= TerrainNaturalClay && int(t) < len(terrainCatalog)
}

func (t TerrainType) Code() int { return int(t) }

// Factor returns the swell correction factor for t. Invalid types return 0;
// callers obtain a TerrainType through ParseTerrainType.
func (t TerrainType) Factor() float64 {
	if !t.Valid() {
		return 0
	}
	return terrainCatalog[t].factor
}

// Key is the stable identifier written to reports, e.g. "arcilla_seca".
func (t TerrainType) Key() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", int(t))
	}
	return terrainCatalog[t].key
}

func (t TerrainType) Label() string {
	if !t.Valid() {
		return fmt.Sprintf("Unknown terrain (%d)", int(t))
	}
	return terrainCatalog[t].label
}

func (t TerrainType) String() string { return t.Key() }
