package battle

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// UnitFilter selects units with a boolean expr-lang expression over the
// variables id, atk, hp and maxHp, for example "hp < maxHp / 2".
type UnitFilter struct {
	src  string
	prog *vm.Program
}

func NewUnitFilter(src string) (*UnitFilter, error) {
	prog, err := expr.Compile(src, expr.Env(unitEnv(&BattleUnit{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling unit filter %q: %w", src, err)
	}
	return &UnitFilter{src: src, prog: prog}, nil
}

func (uf *UnitFilter) String() string {
	return uf.src
}

func (uf *UnitFilter) Match(u *BattleUnit) (bool, error) {
	out, err := expr.Run(uf.prog, unitEnv(u))
	if err != nil {
		return false, fmt.Errorf("evaluating %q on unit %d: %w", uf.src, u.ID, err)
	}
	return out.(bool), nil
}

// Filter returns the units matching uf, in order.
func (uf *UnitFilter) Filter(units []*BattleUnit) ([]*BattleUnit, error) {
	var res []*BattleUnit
	for _, u := range units {
		ok, err := uf.Match(u)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func unitEnv(u *BattleUnit) map[string]any {
	return map[string]any{
		"id":    u.ID,
		"atk":   u.Atk,
		"hp":    u.HP,
		"maxHp": u.MaxHP,
	}
}
