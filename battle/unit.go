package battle

import (
	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/serial"
	"github.com/signadot/streamdispatch/stream"
)

type BattleUnit struct {
	ID    int
	Atk   int
	HP    int
	MaxHP int

	pools *Pools
}

func (u *BattleUnit) Reset() {
	u.ID, u.Atk, u.HP, u.MaxHP = 0, 0, 0, 0
}

func (u *BattleUnit) Release() {
	if u.pools != nil {
		u.pools.Units.Release(u)
	}
}

// Serialize writes the unit as a whole object, as list elements do.
func (u *BattleUnit) Serialize(w stream.Writer) error {
	if err := w.BeginObject(); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		v    int
	}{{"id", u.ID}, {"atk", u.Atk}, {"hp", u.HP}, {"maxHp", u.MaxHP}} {
		if err := serial.WriteInt(w, m.name, m.v); err != nil {
			return err
		}
	}
	return w.EndObject()
}

func (u *BattleUnit) Deserialize(r stream.Reader) error {
	_, err := u.pools.Dispatch.DecodeObject(r, dispatch.ObjectHandlers{
		Int: func(name string, v int) {
			switch name {
			case "id":
				u.ID = v
			case "atk":
				u.Atk = v
			case "hp":
				u.HP = v
			case "maxHp":
				u.MaxHP = v
			}
		},
	})
	return err
}
