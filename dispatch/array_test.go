package dispatch

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/signadot/streamdispatch/stream"
)

func TestArraySelectiveDispatch(t *testing.T) {
	logBuf := captureLog(t)
	dec := open(t, `[5, "x", {"q": [1, 2]}, true]`)

	type call struct {
		Index int
		V     any
	}
	var calls []call
	res, err := newTestPools().DecodeArray(dec, ArrayHandlers{
		Int:  func(i int, v int) { calls = append(calls, call{i, v}) },
		Bool: func(i int, v bool) { calls = append(calls, call{i, v}) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]call{{0, 5}, {3, true}}, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if res.Count != 4 {
		t.Errorf("count %d, want 4", res.Count)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Index != 2 || res.Skipped[0].Kind != stream.BeginObject {
		t.Errorf("skipped %v", res.Skipped)
	}
	if n := countWarnings(logBuf); n != 1 {
		t.Errorf("got %d warnings, want 1:\n%s", n, logBuf)
	}
	expectEnd(t, dec)
}

func TestArrayNullsAdvanceIndex(t *testing.T) {
	dec := open(t, `[null, 1.5, null, "s"]`)
	var floats []int
	var strs []int
	res, err := newTestPools().DecodeArray(dec, ArrayHandlers{
		Float:  func(i int, _ float64) { floats = append(floats, i) },
		String: func(i int, _ string) { strs = append(strs, i) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1}, floats); diff != "" {
		t.Errorf("float indices (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, strs); diff != "" {
		t.Errorf("string indices (-want +got):\n%s", diff)
	}
	if res.Count != 4 {
		t.Errorf("count %d, want 4", res.Count)
	}
}

func TestArrayOfObjects(t *testing.T) {
	captureLog(t)
	dec := open(t, `[{"id": 1}, {"id": 2}, [3], {"id": 4}]`)
	p := newTestPools()

	ids := map[int]int{}
	res, err := p.DecodeArray(dec, ArrayHandlers{
		Object: func(i int, r stream.Reader) bool {
			_, err := p.DecodeObject(r, ObjectHandlers{
				Int: func(_ string, v int) { ids[i] = v },
			})
			return err == nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[int]int{0: 1, 1: 2, 3: 4}, ids); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Index != 2 || res.Skipped[0].Kind != stream.BeginArray {
		t.Errorf("skipped %v", res.Skipped)
	}
	expectEnd(t, dec)
}

func TestArrayResetOnRelease(t *testing.T) {
	captureLog(t)
	p := newTestPools()
	d := p.Arrays.Acquire()
	if _, err := d.Deserialize(open(t, `[1, [2, [3`), ArrayHandlers{Int: func(int, int) {}}, false); err == nil {
		t.Fatal("expected error from truncated input")
	}
	if d.Index() != 2 || !d.skip.skipping() {
		t.Fatalf("index %d skipping %v", d.Index(), d.skip.skipping())
	}
	d.Release()

	got := p.Arrays.Acquire()
	if got != d {
		t.Fatal("expected the released dispatcher back")
	}
	if got.Index() != 0 {
		t.Errorf("index %d survived reset", got.Index())
	}
	if diff := cmp.Diff(skipState{}, got.skip, cmp.AllowUnexported(skipState{})); diff != "" {
		t.Errorf("skip state (-want +got):\n%s", diff)
	}
	nilFuncs(t, got.h)
}

func TestArrayAutoReturn(t *testing.T) {
	p := newTestPools()
	d := p.Arrays.Acquire()
	if _, err := d.Deserialize(open(t, `[]`), ArrayHandlers{}, true); err != nil {
		t.Fatal(err)
	}
	if p.Arrays.Size() != 1 {
		t.Errorf("size %d, want 1", p.Arrays.Size())
	}
	if p.Objects.Size() != 0 {
		t.Errorf("object pool touched: size %d", p.Objects.Size())
	}
}

func TestArrayNilReader(t *testing.T) {
	var r stream.Reader
	res, err := newTestPools().DecodeArray(r, ArrayHandlers{})
	if err != nil || res.Count != 0 {
		t.Errorf("got %+v, %v", res, err)
	}
}

func TestArraySkipCompleteness(t *testing.T) {
	captureLog(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("skipped elements are consumed exactly", prop.ForAll(
		func(depth int, shape uint) bool {
			in := fmt.Sprintf(`{"xs": [%s, 11], "tail": 1}`, nested(depth, shape))
			dec := stream.NewDecoder([]byte(in))
			dec.Read() // {
			dec.Read() // "xs"
			dec.Read() // [
			var got []int
			res, err := newTestPools().DecodeArray(dec, ArrayHandlers{
				Int: func(i int, v int) { got = append(got, i, v) },
			})
			if err != nil || res.Count != 2 {
				return false
			}
			if len(got) != 2 || got[0] != 1 || got[1] != 11 {
				return false
			}
			return dec.Read() && dec.Token() == stream.Key && dec.Value() == "tail"
		},
		gen.IntRange(0, 8),
		gen.UInt(),
	))
	properties.TestingRun(t)
}
