// Package recycle provides typed free-list pools for short lived values
// and a registry that periodically trims pools back to their capacity.
//
// A pool hands out values with Acquire and takes them back with Release.
// Release always calls the value's Reset before the value becomes idle, so
// a value coming out of Acquire never carries state from a previous holder.
//
//	units := recycle.NewPool(reg, "unit", func() *Unit { return &Unit{} })
//	u := units.Acquire()
//	defer units.Release(u)
//
// Pools never shrink on their own. Every Release arms a quiescence timer
// on the pool; the owning Registry advances the timers when it is ticked,
// either explicitly with Tick from an update loop or with Run on a
// goroutine, and a pool whose timer expires discards idle values above
// its capacity.
package recycle
