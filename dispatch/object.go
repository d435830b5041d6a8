package dispatch

import (
	"github.com/signadot/streamdispatch/debug"
	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

// ObjectHandlers holds the optional callbacks of an Object dispatcher,
// one per value kind. A nil callback drops scalars of its kind and skips
// nested values of its kind.
type ObjectHandlers struct {
	Int    func(name string, v int)
	Float  func(name string, v float64)
	String func(name string, v string)
	Bool   func(name string, v bool)

	// Object and Array receive the reader positioned on the value's
	// opening token and return whether they consumed the whole value.
	Object func(name string, r stream.Reader) bool
	Array  func(name string, r stream.Reader) bool
}

// Object dispatches the members of one object by name.
type Object struct {
	pool *recycle.Pool[*Object]
	h    ObjectHandlers
	skip skipState
}

// Reset clears the handlers and skip state.
func (d *Object) Reset() {
	d.h = ObjectHandlers{}
	d.skip = skipState{}
}

// Release returns d to the pool it was acquired from.
func (d *Object) Release() {
	if d.pool != nil {
		d.pool.Release(d)
	}
}

// Deserialize reads members from r until the end of the enclosing
// object, routing each value to h. The opening token of the object must
// already have been read.
//
// The returned error is r's error; Deserialize stops at the first
// malformed token and leaves r where it failed. With autoReturn, d is
// released before Deserialize returns and must not be used afterwards.
func (d *Object) Deserialize(r stream.Reader, h ObjectHandlers, autoReturn bool) (Result, error) {
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
				debug.Logf("object skip %s depth %d\n", tok, d.skip.depth)
			}
			continue
		}
		switch tok {
		case stream.EndObject, stream.EndArray:
			return res, nil
		case stream.Key:
			name := r.Value()
			if !r.Read() {
				return res, r.Err()
			}
			res.Count++
			d.member(r, name, &res)
		}
	}
	return res, r.Err()
}

func (d *Object) member(r stream.Reader, name string, res *Result) {
	tok := r.Token()
	if debug.Dispatch() {
		debug.Logf("object %q: %s %s\n", name, tok, r.Value())
	}
	switch tok {
	case stream.Int:
		if d.h.Int != nil {
			d.h.Int(name, parseInt(r.Value()))
		}
	case stream.Float:
		if d.h.Float != nil {
			d.h.Float(name, parseFloat(r.Value()))
		}
	case stream.String:
		if d.h.String != nil {
			d.h.String(name, r.Value())
		}
	case stream.Bool:
		if d.h.Bool != nil {
			d.h.Bool(name, parseBool(r.Value()))
		}
	case stream.BeginObject:
		if d.h.Object == nil || !d.h.Object(name, r) {
			d.skipValue(r, name, tok, res)
		}
	case stream.BeginArray:
		if d.h.Array == nil || !d.h.Array(name, r) {
			d.skipValue(r, name, tok, res)
		}
	}
}

func (d *Object) skipValue(r stream.Reader, name string, kind stream.Token, res *Result) {
	s := Skip{Key: name, Index: -1, Kind: kind, Path: pathOf(r)}
	res.Skipped = append(res.Skipped, s)
	theLog().Warn("skipping unhandled value", "key", name, "kind", kind, "path", s.Path)
	d.skip.enter(kind)
}
