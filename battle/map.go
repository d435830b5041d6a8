package battle

import (
	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/serial"
	"github.com/signadot/streamdispatch/stream"
)

// MaxGrids bounds the number of grids a map may hold.
const MaxGrids = 1 << 16

// BattleMap is a Rows x Columns grid map.
type BattleMap struct {
	Rows    int
	Columns int
	// Grids holds the grids in row-major order; Grids[i].Index == i.
	Grids []*MapGrid

	pools *Pools
}

// NewMap acquires a map of rows x columns normal grids.
func (p *Pools) NewMap(rows, columns int) *BattleMap {
	m := p.Maps.Acquire()
	m.Rows = rows
	m.Columns = columns
	m.setup()
	return m
}

// setup rebuilds the grids from Rows and Columns.
func (m *BattleMap) setup() {
	m.releaseGrids()
	n := m.Rows * m.Columns
	if m.Rows < 0 || m.Columns < 0 || n > MaxGrids {
		dispatch.Logger().Error("invalid map size", "rows", m.Rows, "columns", m.Columns)
		return
	}
	for r := range m.Rows {
		for c := range m.Columns {
			g := m.pools.Grids.Acquire()
			g.Index = len(m.Grids)
			g.Row = r
			g.Column = c
			m.Grids = append(m.Grids, g)
		}
	}
}

func (m *BattleMap) releaseGrids() {
	for _, g := range m.Grids {
		g.Release()
	}
	clear(m.Grids)
	m.Grids = m.Grids[:0]
}

// Reset releases the grids back to their pool.
func (m *BattleMap) Reset() {
	m.releaseGrids()
	m.Rows, m.Columns = 0, 0
}

func (m *BattleMap) Release() {
	if m.pools != nil {
		m.pools.Maps.Release(m)
	}
}

// Specials returns the special grids in index order.
func (m *BattleMap) Specials() []*MapGrid {
	var res []*MapGrid
	for _, g := range m.Grids {
		if g.Type == GridSpecial {
			res = append(res, g)
		}
	}
	return res
}

// Serialize writes the dimensions and the indices of the special grids,
// omitting specialGrids when there are none.
func (m *BattleMap) Serialize(w stream.Writer) error {
	if err := serial.WriteInt(w, "mapRow", m.Rows); err != nil {
		return err
	}
	if err := serial.WriteInt(w, "mapColumn", m.Columns); err != nil {
		return err
	}
	return serial.WriteList(w, "specialGrids", m.Specials())
}

// Deserialize reads a map. The grids are rebuilt whenever mapRow or
// mapColumn is read, so specialGrids must follow both.
func (m *BattleMap) Deserialize(r stream.Reader) error {
	var specialsErr error
	_, err := m.pools.Dispatch.DecodeObject(r, dispatch.ObjectHandlers{
		Int: func(name string, v int) {
			switch name {
			case "mapRow":
				m.Rows = v
				m.setup()
			case "mapColumn":
				m.Columns = v
				m.setup()
			}
		},
		Array: func(name string, r stream.Reader) bool {
			if name != "specialGrids" {
				return false
			}
			_, specialsErr = m.pools.Dispatch.DecodeArray(r, dispatch.ArrayHandlers{
				Int: func(_ int, v int) { m.markSpecial(v) },
			})
			return true
		},
	})
	if specialsErr != nil {
		return specialsErr
	}
	return err
}

func (m *BattleMap) markSpecial(i int) {
	if i < 0 || i >= len(m.Grids) {
		dispatch.Logger().Error("special grid index out of range", "index", i, "grids", len(m.Grids))
		return
	}
	m.Grids[i].Type = GridSpecial
}
