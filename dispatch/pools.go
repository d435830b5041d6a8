package dispatch

import (
	"sync"

	"github.com/signadot/streamdispatch/recycle"
	"github.com/signadot/streamdispatch/stream"
)

// Pools holds the dispatcher pools of one registry.
type Pools struct {
	Objects *recycle.Pool[*Object]
	Arrays  *recycle.Pool[*Array]
}

// NewPools creates dispatcher pools registered with reg.
func NewPools(reg *recycle.Registry) *Pools {
	p := &Pools{}
	p.Objects = recycle.NewPool(reg, "dispatch.Object", func() *Object {
		return &Object{pool: p.Objects}
	})
	p.Arrays = recycle.NewPool(reg, "dispatch.Array", func() *Array {
		return &Array{pool: p.Arrays}
	})
	return p
}

var (
	defaultOnce  sync.Once
	defaultPools *Pools
)

// DefaultPools returns the dispatcher pools of recycle.Default().
func DefaultPools() *Pools {
	defaultOnce.Do(func() {
		defaultPools = NewPools(recycle.Default())
	})
	return defaultPools
}

// AcquireObject returns an Object dispatcher from the default pools.
func AcquireObject() *Object {
	return DefaultPools().Objects.Acquire()
}

// AcquireArray returns an Array dispatcher from the default pools.
func AcquireArray() *Array {
	return DefaultPools().Arrays.Acquire()
}

// DecodeObject dispatches one object from r with a pooled dispatcher.
func (p *Pools) DecodeObject(r stream.Reader, h ObjectHandlers) (Result, error) {
	return p.Objects.Acquire().Deserialize(r, h, true)
}

// DecodeArray dispatches one array from r with a pooled dispatcher.
func (p *Pools) DecodeArray(r stream.Reader, h ArrayHandlers) (Result, error) {
	return p.Arrays.Acquire().Deserialize(r, h, true)
}
