package battle

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/goccy/go-yaml"
)

// GenerateConfig bounds the random battlefields made by Generate. All
// ranges are inclusive.
type GenerateConfig struct {
	MinRows    int `yaml:"minRows"`
	MaxRows    int `yaml:"maxRows"`
	MinColumns int `yaml:"minColumns"`
	MaxColumns int `yaml:"maxColumns"`
	MinUnits   int `yaml:"minUnits"`
	MaxUnits   int `yaml:"maxUnits"`
	// SpecialPercent is the chance, in percent, that a grid is special.
	SpecialPercent int `yaml:"specialPercent"`
}

func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		MinRows:        10,
		MaxRows:        14,
		MinColumns:     10,
		MaxColumns:     14,
		MinUnits:       2,
		MaxUnits:       4,
		SpecialPercent: 5,
	}
}

var ErrConfig = errors.New("invalid generate config")

func (c GenerateConfig) Validate() error {
	ranges := []struct {
		name   string
		lo, hi int
	}{
		{"rows", c.MinRows, c.MaxRows},
		{"columns", c.MinColumns, c.MaxColumns},
		{"units", c.MinUnits, c.MaxUnits},
	}
	for _, r := range ranges {
		if r.lo < 0 || r.hi < r.lo {
			return fmt.Errorf("%w: %s range [%d, %d]", ErrConfig, r.name, r.lo, r.hi)
		}
	}
	if c.MaxRows*c.MaxColumns > MaxGrids {
		return fmt.Errorf("%w: %d x %d grids exceeds %d", ErrConfig, c.MaxRows, c.MaxColumns, MaxGrids)
	}
	if c.SpecialPercent < 0 || c.SpecialPercent > 100 {
		return fmt.Errorf("%w: specialPercent %d", ErrConfig, c.SpecialPercent)
	}
	return nil
}

// LoadGenerateConfig reads a YAML config. Fields absent from the input
// keep their DefaultGenerateConfig values.
func LoadGenerateConfig(r io.Reader) (GenerateConfig, error) {
	c := DefaultGenerateConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return c, err
	}
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return c, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return c, c.Validate()
}

// Generate builds a random battlefield from p. The caller owns the result
// and releases it with Release.
func Generate(p *Pools, rng *rand.Rand, c GenerateConfig) *BattleField {
	f := p.Fields.Acquire()
	f.Map = p.NewMap(between(rng, c.MinRows, c.MaxRows), between(rng, c.MinColumns, c.MaxColumns))
	for _, g := range f.Map.Grids {
		if rng.IntN(100) >= 100-c.SpecialPercent {
			g.Type = GridSpecial
		}
	}
	n := between(rng, c.MinUnits, c.MaxUnits)
	f.Units = make([]*BattleUnit, 0, n)
	for i := range n {
		f.Units = append(f.Units, newUnit(p, rng, i))
	}
	return f
}

func newUnit(p *Pools, rng *rand.Rand, id int) *BattleUnit {
	u := p.Units.Acquire()
	u.ID = id
	u.Atk = between(rng, 10, 19)
	u.MaxHP = between(rng, 100, 149)
	u.HP = between(rng, 1, u.MaxHP)
	return u
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
