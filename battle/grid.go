package battle

import (
	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

type GridType int

const (
	GridNormal GridType = iota
	GridSpecial
)

func (t GridType) String() string {
	switch t {
	case GridNormal:
		return "normal"
	case GridSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// MapGrid is one cell of a BattleMap.
type MapGrid struct {
	Index  int
	Row    int
	Column int
	Type   GridType

	pool *recycle.Pool[*MapGrid]
}

func (g *MapGrid) Reset() {
	g.Index, g.Row, g.Column = 0, 0, 0
	g.Type = GridNormal
}

func (g *MapGrid) Release() {
	if g.pool != nil {
		g.pool.Release(g)
	}
}

// Serialize writes the grid as its bare index.
func (g *MapGrid) Serialize(w stream.Writer) error {
	return w.WriteInt(g.Index)
}
