package dispatch

import (
	"github.com/signadot/streamdispatch/debug"
	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

// ArrayHandlers holds the optional callbacks of an Array dispatcher,
// keyed by 0-based element position.
type ArrayHandlers struct {
	Int    func(index int, v int)
	Float  func(index int, v float64)
	String func(index int, v string)
	Bool   func(index int, v bool)

	// Object and Array follow the same contract as in ObjectHandlers.
	Object func(index int, r stream.Reader) bool
	Array  func(index int, r stream.Reader) bool
}

// Array dispatches the elements of one array by position.
type Array struct {
	pool  *recycle.Pool[*Array]
	h     ArrayHandlers
	skip  skipState
	index int
}

// Reset clears the handlers, skip state and position.
func (d *Array) Reset() {
	d.h = ArrayHandlers{}
	d.skip = skipState{}
	d.index = 0
}

// Release returns d to the pool it was acquired from.
func (d *Array) Release() {
	if d.pool != nil {
		d.pool.Release(d)
	}
}

// Index returns the position of the next element.
func (d *Array) Index() int {
	return d.index
}

// Deserialize reads elements from r until the end of the enclosing
// array, routing each to h. Every element advances the position by one,
// whether it was dispatched, dropped or skipped. The opening token of the
// array must already have been read.
//
// Errors and autoReturn behave as for Object.Deserialize.
func (d *Array) Deserialize(r stream.Reader, h ArrayHandlers, autoReturn bool) (Result, error) {
	if autoReturn {
		defer d.Release()
	}
	if recycle.IsNil(r) {
		return Result{}, nil
	}
	d.h = h
	res := Result{}
	for r.Read() {
		tok := r.Token()
		if d.skip.skipping() {
			d.skip.account(tok)
			if debug.Skip() {
				debug.Logf("array skip %s depth %d\n", tok, d.skip.depth)
			}
			continue
		}
		switch tok {
		case stream.EndArray, stream.EndObject:
			res.Count = d.index
			return res, nil
		case stream.Key:
			// keys never occur directly inside an array
			continue
		}
		i := d.index
		d.index++
		d.element(r, i, &res)
	}
	res.Count = d.index
	return res, r.Err()
}

func (d *Array) element(r stream.Reader, i int, res *Result) {
	tok := r.Token()
	if debug.Dispatch() {
		debug.Logf("array [%d]: %s %s\n", i, tok, r.Value())
	}
	switch tok {
	case stream.Int:
		if d.h.Int != nil {
			d.h.Int(i, parseInt(r.Value()))
		}
	case stream.Float:
		if d.h.Float != nil {
			d.h.Float(i, parseFloat(r.Value()))
		}
	case stream.String:
		if d.h.String != nil {
			d.h.String(i, r.Value())
		}
	case stream.Bool:
		if d.h.Bool != nil {
			d.h.Bool(i, parseBool(r.Value()))
		}
	case stream.BeginObject:
		if d.h.Object == nil || !d.h.Object(i, r) {
			d.skipValue(r, i, tok, res)
		}
	case stream.BeginArray:
		if d.h.Array == nil || !d.h.Array(i, r) {
			d.skipValue(r, i, tok, res)
		}
	}
}

func (d *Array) skipValue(r stream.Reader, i int, kind stream.Token, res *Result) {
	s := Skip{Index: i, Kind: kind, Path: pathOf(r)}
	res.Skipped = append(res.Skipped, s)
	theLog().Warn("skipping unhandled element", "index", i, "kind", kind, "path", s.Path)
	d.skip.enter(kind)
}
