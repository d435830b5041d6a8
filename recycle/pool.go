package recycle

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/signadot/streamdispatch/debug"
)

const (
	// DefaultCapacity is the soft capacity of a pool created without
	// WithCapacity.
	DefaultCapacity = 10

	// Quiescence is how long a pool must go without a Release before
	// a tick trims it back to capacity.
	Quiescence = 10 * time.Second
)

// Ticker is the part of a pool the Registry drives.
type Ticker interface {
	Tick(elapsed time.Duration)
	Stats() Stats
}

// Stats is a snapshot of a pool's counters.
type Stats struct {
	Name      string
	Generated int
	Returned  int
	Capacity  int
	Size      int
}

func (s Stats) String() string {
	return fmt.Sprintf("[%s], gen:%d, ret:%d, cap:%d, size:%d",
		s.Name, s.Generated, s.Returned, s.Capacity, s.Size)
}

// PoolOption configures a Pool.
type PoolOption func(*poolOpts)

type poolOpts struct {
	capacity int
}

// WithCapacity sets the initial soft capacity of a pool.
func WithCapacity(n int) PoolOption {
	return func(o *poolOpts) {
		o.capacity = max(n, 0)
	}
}

// Pool is a free list of idle values of one type.
//
// The free list may hold more than Capacity values between a burst of
// releases and the next expired shrink timer; SetCapacity and an expired
// timer both trim it back down.
type Pool[T Recyclable] struct {
	mu       sync.Mutex
	name     string
	newFn    func() T
	free     *queue.Queue
	capacity int

	generated int
	returned  int

	armed bool
	timer time.Duration
}

// NewPool creates a pool whose cold path constructs values with newFn and
// registers it with reg. A nil reg registers with Default().
func NewPool[T Recyclable](reg *Registry, name string, newFn func() T, opts ...PoolOption) *Pool[T] {
	o := &poolOpts{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(o)
	}
	p := &Pool[T]{
		name:     name,
		newFn:    newFn,
		free:     queue.New(),
		capacity: o.capacity,
	}
	if reg == nil {
		reg = Default()
	}
	reg.Register(p)
	return p
}

// Name returns the name the pool was created with.
func (p *Pool[T]) Name() string {
	return p.name
}

// Acquire returns an idle value, or a newly constructed one when the free
// list is empty.
func (p *Pool[T]) Acquire() T {
	p.mu.Lock()
	if p.free.Length() > 0 {
		v := p.free.Remove().(T)
		p.mu.Unlock()
		return v
	}
	p.generated++
	n := p.generated
	p.mu.Unlock()
	if debug.Pool() {
		debug.Logf("pool %s: generate #%d\n", p.name, n)
	}
	return p.newFn()
}

// Release resets v and puts it on the free list. Releasing nil, including
// a typed nil pointer, does nothing.
//
// v must not be used by the caller after Release.
func (p *Pool[T]) Release(v T) {
	if IsNil(v) {
		return
	}
	v.Reset()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.returned++
	p.free.Add(v)
	p.armed = true
	p.timer = Quiescence
}

// Capacity returns the soft capacity.
func (p *Pool[T]) Capacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity
}

// SetCapacity changes the soft capacity and immediately trims the free
// list down to it.
func (p *Pool[T]) SetCapacity(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.capacity = max(n, 0)
	p.shrink()
}

// Size returns the number of idle values.
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}

func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Name:      p.name,
		Generated: p.generated,
		Returned:  p.returned,
		Capacity:  p.capacity,
		Size:      p.free.Length(),
	}
}

func (p *Pool[T]) String() string {
	return p.Stats().String()
}

// Tick advances the shrink timer. Once Quiescence has elapsed since the
// last Release the free list is trimmed to capacity and the timer is
// disarmed until the next Release.
func (p *Pool[T]) Tick(elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.armed {
		return
	}
	p.timer -= elapsed
	if p.timer <= 0 {
		p.shrink()
	}
}

// shrink must be called with p.mu held.
func (p *Pool[T]) shrink() {
	p.armed = false
	p.timer = 0
	gap := p.free.Length() - p.capacity
	if gap <= 0 {
		return
	}
	for range gap {
		p.free.Remove()
	}
	if debug.Pool() {
		debug.Logf("pool %s: discarded %d idle values\n", p.name, gap)
	}
}
