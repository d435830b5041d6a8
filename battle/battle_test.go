package battle

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/streamdispatch/dispatch"
	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

var ignorePools = cmpopts.IgnoreUnexported(BattleField{}, BattleMap{}, MapGrid{}, BattleUnit{})

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func write(t *testing.T, f *BattleField, opts ...stream.EncoderOption) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, f, opts...))
	return buf.String()
}

func TestRoundTrip(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	for seed := range uint64(20) {
		f := Generate(p, newRNG(seed), DefaultGenerateConfig())
		doc := write(t, f)

		g, err := Read(p, strings.NewReader(doc))
		require.NoError(t, err, "seed %d", seed)
		if diff := cmp.Diff(f, g, ignorePools); diff != "" {
			t.Errorf("seed %d (-want +got):\n%s", seed, diff)
		}
		assert.Equal(t, doc, write(t, g), "seed %d mirror", seed)

		f.Release()
		g.Release()
	}
}

func TestRoundTripPretty(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	f := Generate(p, newRNG(7), DefaultGenerateConfig())
	defer f.Release()
	doc := write(t, f, stream.WithIndent("", "  "))
	assert.Contains(t, doc, "\n  \"battleField\": {")

	g, err := Read(p, strings.NewReader(doc))
	require.NoError(t, err)
	defer g.Release()
	if diff := cmp.Diff(f, g, ignorePools); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDocumentLayout(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	f := p.Fields.Acquire()
	f.Map = p.NewMap(2, 3)
	f.Map.Grids[4].Type = GridSpecial
	f.Units = []*BattleUnit{{ID: 0, Atk: 12, HP: 40, MaxHP: 120}}
	want := `{"battleField":{"battleMap":{"mapRow":2,"mapColumn":3,"specialGrids":[4]},` +
		`"battleUnits":[{"id":0,"atk":12,"hp":40,"maxHp":120}]}}` + "\n"
	assert.Equal(t, want, write(t, f))
}

func TestOptionalMembersStayAbsent(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	docs := []string{
		`{"battleField":{}}`,
		`{"battleField":{"battleUnits":[]}}`,
		`{"battleField":{"battleMap":{"mapRow":1,"mapColumn":2}}}`,
	}
	for _, doc := range docs {
		f, err := Read(p, strings.NewReader(doc))
		require.NoError(t, err, doc)
		assert.Equal(t, doc+"\n", write(t, f))
		f.Release()
	}
}

func TestReadSkipsUnknownMembers(t *testing.T) {
	var logBuf bytes.Buffer
	dispatch.SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer dispatch.SetLogger(nil)

	doc := `{"version": 3, "meta": {"by": ["x", {"y": 1}]}, "battleField": {"weather": [1, 2],` +
		` "battleUnits": [{"id": 5, "hp": 1, "name": "ogre", "buffs": {"a": 1}}]}, "extra": []}`
	p := NewPools(recycle.NewRegistry())
	f, err := Read(p, strings.NewReader(doc))
	require.NoError(t, err)
	defer f.Release()

	require.Len(t, f.Units, 1)
	assert.Equal(t, 5, f.Units[0].ID)
	assert.Equal(t, 1, f.Units[0].HP)
	assert.Nil(t, f.Map)
	// meta, weather, buffs and extra
	assert.Equal(t, 4, strings.Count(logBuf.String(), "level=WARN"), logBuf.String())
}

func TestSpecialGridOutOfRange(t *testing.T) {
	var logBuf bytes.Buffer
	dispatch.SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer dispatch.SetLogger(nil)

	doc := `{"battleField":{"battleMap":{"mapRow":2,"mapColumn":2,"specialGrids":[1,9,-1]}}}`
	p := NewPools(recycle.NewRegistry())
	f, err := Read(p, strings.NewReader(doc))
	require.NoError(t, err)
	defer f.Release()

	require.Len(t, f.Map.Grids, 4)
	var types []GridType
	for _, g := range f.Map.Grids {
		types = append(types, g.Type)
	}
	assert.Equal(t, []GridType{GridNormal, GridSpecial, GridNormal, GridNormal}, types)
	assert.Equal(t, 2, strings.Count(logBuf.String(), "special grid index out of range"))
}

func TestMapKeyOrder(t *testing.T) {
	doc := `{"battleField":{"battleMap":{"mapColumn":3,"mapRow":2,"specialGrids":[5]}}}`
	p := NewPools(recycle.NewRegistry())
	f, err := Read(p, strings.NewReader(doc))
	require.NoError(t, err)
	defer f.Release()
	require.Len(t, f.Map.Grids, 6)
	assert.Equal(t, GridSpecial, f.Map.Grids[5].Type)
}

func TestReadErrors(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"empty", ``, nil},
		{"array", `[]`, ErrNotObject},
		{"missing", `{"other": {}}`, ErrNoBattleField},
		{"truncated", `{"battleField": {"battleUnits": [{"id": 1`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Read(p, strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, f)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDeserializeTruncated(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	f := p.Fields.Acquire()
	defer f.Release()
	dec := stream.NewDecoder([]byte(`{"battleUnits": [{"id": 1}, {"id": 2, "hp"`))
	require.True(t, dec.Read())

	err := f.Deserialize(dec)
	require.Error(t, err)
	require.Len(t, f.Units, 1, "the unit cut short must not be kept")
	assert.Equal(t, 1, f.Units[0].ID)
	assert.Equal(t, 1, p.Units.Size(), "the unit cut short goes back to its pool")

	g := p.Fields.Acquire()
	defer g.Release()
	dec = stream.NewDecoder([]byte(`{"battleMap": {"mapRow": 2, "mapColumn": 2, "specialGrids": [1,`))
	require.True(t, dec.Read())
	var serr *stream.Error
	assert.ErrorAs(t, g.Deserialize(dec), &serr)
}

func TestReleaseReturnsChildren(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	f := Generate(p, newRNG(1), DefaultGenerateConfig())
	grids, units := len(f.Map.Grids), len(f.Units)
	f.Release()

	assert.Equal(t, grids, p.Grids.Size())
	assert.Equal(t, units, p.Units.Size())
	assert.Equal(t, 1, p.Maps.Size())
	assert.Equal(t, 1, p.Fields.Size())

	g := p.Fields.Acquire()
	assert.Nil(t, g.Map)
	assert.Nil(t, g.Units)
	m := p.Maps.Acquire()
	assert.Empty(t, m.Grids)
	assert.Zero(t, m.Rows)
}

func TestMapRebuildOnColumn(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	m := p.NewMap(3, 3)
	defer m.Release()
	m.Rows, m.Columns = 2, 4
	m.setup()
	require.Len(t, m.Grids, 8)
	last := m.Grids[7]
	assert.Equal(t, []int{7, 1, 3}, []int{last.Index, last.Row, last.Column})
	assert.Equal(t, GridNormal, last.Type)
}

func TestGenerateBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	c := DefaultGenerateConfig()
	p := NewPools(recycle.NewRegistry())

	properties.Property("generated battlefields respect the config", prop.ForAll(
		func(seed uint64) bool {
			f := Generate(p, newRNG(seed), c)
			defer f.Release()
			m := f.Map
			if m.Rows < c.MinRows || m.Rows > c.MaxRows || m.Columns < c.MinColumns || m.Columns > c.MaxColumns {
				return false
			}
			if len(m.Grids) != m.Rows*m.Columns {
				return false
			}
			if len(f.Units) < c.MinUnits || len(f.Units) > c.MaxUnits {
				return false
			}
			for i, u := range f.Units {
				if u.ID != i || u.Atk < 10 || u.Atk > 19 || u.MaxHP < 100 || u.MaxHP > 149 || u.HP < 1 || u.HP > u.MaxHP {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestGenerateAllSpecial(t *testing.T) {
	p := NewPools(recycle.NewRegistry())
	c := DefaultGenerateConfig()
	c.SpecialPercent = 100
	f := Generate(p, newRNG(3), c)
	defer f.Release()
	assert.Len(t, f.Map.Specials(), len(f.Map.Grids))

	c.SpecialPercent = 0
	g := Generate(p, newRNG(3), c)
	defer g.Release()
	assert.Empty(t, g.Map.Specials())
}

func TestLoadGenerateConfig(t *testing.T) {
	c, err := LoadGenerateConfig(strings.NewReader("minRows: 3\nmaxRows: 4\nspecialPercent: 50\n"))
	require.NoError(t, err)
	want := DefaultGenerateConfig()
	want.MinRows, want.MaxRows, want.SpecialPercent = 3, 4, 50
	assert.Equal(t, want, c)

	_, err = LoadGenerateConfig(strings.NewReader("minRows: 5\nmaxRows: 4\n"))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = LoadGenerateConfig(strings.NewReader("rows: 5\n"))
	assert.ErrorIs(t, err, ErrConfig)

	_, err = LoadGenerateConfig(strings.NewReader("specialPercent: 101\n"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestUnitFilter(t *testing.T) {
	units := []*BattleUnit{
		{ID: 0, Atk: 10, HP: 10, MaxHP: 100},
		{ID: 1, Atk: 19, HP: 90, MaxHP: 100},
		{ID: 2, Atk: 15, HP: 49, MaxHP: 100},
	}
	uf, err := NewUnitFilter("hp < maxHp / 2 && atk >= 10")
	require.NoError(t, err)
	got, err := uf.Filter(units)
	require.NoError(t, err)
	var ids []int
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int{0, 2}, ids)
	assert.Equal(t, "hp < maxHp / 2 && atk >= 10", uf.String())

	_, err = NewUnitFilter("hp +")
	assert.Error(t, err)
	_, err = NewUnitFilter("hp + 1")
	assert.Error(t, err, "non-boolean filters are rejected")
	_, err = NewUnitFilter("speed > 1")
	assert.Error(t, err, "unknown variables are rejected")
}

func TestApplyPatch(t *testing.T) {
	doc := []byte(`{"battleField":{"battleUnits":[{"id":0,"atk":11,"hp":20,"maxHp":100}]}}`)
	patch := []byte(`[
		{"op": "replace", "path": "/battleField/battleUnits/0/hp", "value": 100},
		{"op": "add", "path": "/battleField/battleUnits/-", "value": {"id": 1, "atk": 12, "hp": 5, "maxHp": 110}}
	]`)
	out, err := ApplyPatch(doc, patch)
	require.NoError(t, err)

	p := NewPools(recycle.NewRegistry())
	f, err := Read(p, bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Release()
	want := []*BattleUnit{
		{ID: 0, Atk: 11, HP: 100, MaxHP: 100},
		{ID: 1, Atk: 12, HP: 5, MaxHP: 110},
	}
	if diff := cmp.Diff(want, f.Units, ignorePools); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = ApplyPatch(doc, []byte(`{"op": "replace"}`))
	assert.Error(t, err)
	_, err = ApplyPatch(doc, []byte(`[{"op": "remove", "path": "/nope/0"}]`))
	assert.Error(t, err)
}

func TestGridTypeString(t *testing.T) {
	assert.Equal(t, "normal", GridNormal.String())
	assert.Equal(t, "special", GridSpecial.String())
	assert.Equal(t, "unknown", GridType(9).String())
}
