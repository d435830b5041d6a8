package battle

import (
	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/serial"
	"github.com/signadot/streamdispatch/stream"
)

// BattleField is a map together with the units on it. Either may be
// absent.
type BattleField struct {
	Map   *BattleMap
	Units []*BattleUnit

	pools *Pools
}

// Reset releases the map and units back to their pools.
func (f *BattleField) Reset() {
	if f.Map != nil {
		f.Map.Release()
		f.Map = nil
	}
	f.releaseUnits()
	f.Units = nil
}

func (f *BattleField) releaseUnits() {
	for _, u := range f.Units {
		u.Release()
	}
	clear(f.Units)
	f.Units = f.Units[:0]
}

func (f *BattleField) Release() {
	if f.pools != nil {
		f.pools.Fields.Release(f)
	}
}

func (f *BattleField) Serialize(w stream.Writer) error {
	if err := serial.WriteObject(w, "battleMap", f.Map); err != nil {
		return err
	}
	return serial.WriteList(w, "battleUnits", f.Units)
}

// Deserialize reads a battlefield, replacing any map or units f holds. A
// unit that fails to read is released, not appended.
func (f *BattleField) Deserialize(r stream.Reader) error {
	p := f.pools
	var readErr error
	keep := func(err error) {
		if readErr == nil {
			readErr = err
		}
	}
	_, err := p.Dispatch.DecodeObject(r, dispatch.ObjectHandlers{
		Object: func(name string, r stream.Reader) bool {
			if name != "battleMap" {
				return false
			}
			if f.Map != nil {
				f.Map.Release()
			}
			f.Map = p.Maps.Acquire()
			if err := f.Map.Deserialize(r); err != nil {
				keep(err)
			}
			return true
		},
		Array: func(name string, r stream.Reader) bool {
			if name != "battleUnits" {
				return false
			}
			f.releaseUnits()
			if f.Units == nil {
				f.Units = []*BattleUnit{}
			}
			_, err := p.Dispatch.DecodeArray(r, dispatch.ArrayHandlers{
				Object: func(_ int, r stream.Reader) bool {
					u := p.Units.Acquire()
					if err := u.Deserialize(r); err != nil {
						u.Release()
						keep(err)
						return true
					}
					f.Units = append(f.Units, u)
					return true
				},
			})
			if err != nil {
				keep(err)
			}
			return true
		},
	})
	if readErr != nil {
		return readErr
	}
	return err
}
