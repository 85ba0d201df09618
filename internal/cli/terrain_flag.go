package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/earthmove/internal/domain"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*terrainValue)(nil)

// terrainValue is a pflag.Value accepting a terrain code (1-8) or its key,
// e.g. "2" or "arcilla_seca".
type terrainValue struct {
	t *domain.TerrainType
}

func newTerrainValue(t *domain.TerrainType) *terrainValue {
	return &terrainValue{t: t}
}

func (v *terrainValue) String() string {
	if v.t == nil || !v.t.Valid() {
		return ""
	}
	return strconv.Itoa(v.t.Code())
}

func (v *terrainValue) Set(s string) error {
	t, err := parseTerrain(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *terrainValue) Type() string { return "terrain" }

func parseTerrain(s string) (domain.TerrainType, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		return domain.ParseTerrainType(code)
	}
	for _, t := range domain.TerrainTypes() {
		if strings.EqualFold(s, t.Key()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (see `earthmove terrain`)", domain.ErrInvalidTerrainType, s)
}
