package battle

import (
	"sync"

	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/recycle"
)

// GridCapacity is the capacity of the grid pool, enough for one map of
// the default generated size.
const GridCapacity = 256

// Pools holds one pool per model type together with the dispatcher pools
// used to read the model back.
type Pools struct {
	Grids  *recycle.Pool[*MapGrid]
	Maps   *recycle.Pool[*BattleMap]
	Units  *recycle.Pool[*BattleUnit]
	Fields *recycle.Pool[*BattleField]

	Dispatch *dispatch.Pools
}

// NewPools creates model pools registered with reg.
func NewPools(reg *recycle.Registry) *Pools {
	p := &Pools{Dispatch: dispatch.NewPools(reg)}
	p.Grids = recycle.NewPool(reg, "battle.MapGrid", func() *MapGrid {
		return &MapGrid{pool: p.Grids}
	}, recycle.WithCapacity(GridCapacity))
	p.Maps = recycle.NewPool(reg, "battle.BattleMap", func() *BattleMap {
		return &BattleMap{pools: p}
	})
	p.Units = recycle.NewPool(reg, "battle.BattleUnit", func() *BattleUnit {
		return &BattleUnit{pools: p}
	})
	p.Fields = recycle.NewPool(reg, "battle.BattleField", func() *BattleField {
		return &BattleField{pools: p}
	})
	return p
}

var (
	defaultOnce  sync.Once
	defaultPools *Pools
)

// DefaultPools returns the model pools of recycle.Default().
func DefaultPools() *Pools {
	defaultOnce.Do(func() {
		defaultPools = NewPools(recycle.Default())
	})
	return defaultPools
}
