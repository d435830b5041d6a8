package recycle

import (
	"context"
	"sync"
	"time"
)

// UpdateInterval is the fixed cadence at which a Registry ticks its
// pools, independent of how often the Registry itself is ticked.
const UpdateInterval = time.Second

// Registry holds a set of pools and drives their shrink timers.
type Registry struct {
	mu    sync.Mutex
	pools []Ticker
	acc   time.Duration
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry used by pools created with
// a nil registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds p to the registry. A nil p or a p that is already
// registered is ignored.
func (r *Registry) Register(p Ticker) {
	if IsNil(p) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.pools {
		if q == p {
			return
		}
	}
	r.pools = append(r.pools, p)
}

// Len returns the number of registered pools.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}

// Tick accumulates elapsed time. Each time a full UpdateInterval has
// accumulated, every pool is ticked once with UpdateInterval, in
// registration order.
func (r *Registry) Tick(elapsed time.Duration) {
	r.mu.Lock()
	r.acc += elapsed
	if r.acc < UpdateInterval {
		r.mu.Unlock()
		return
	}
	r.acc -= UpdateInterval
	pools := make([]Ticker, len(r.pools))
	copy(pools, r.pools)
	r.mu.Unlock()

	for _, p := range pools {
		p.Tick(UpdateInterval)
	}
}

// Run ticks the registry every interval until ctx is done, and returns
// ctx.Err().
func (r *Registry) Run(ctx context.Context, every time.Duration) error {
	if every <= 0 {
		every = UpdateInterval
	}
	t := time.NewTicker(every)
	defer t.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			r.Tick(now.Sub(last))
			last = now
		}
	}
}

// Pools returns a snapshot of every registered pool's stats, in
// registration order.
func (r *Registry) Pools() []Stats {
	r.mu.Lock()
	pools := make([]Ticker, len(r.pools))
	copy(pools, r.pools)
	r.mu.Unlock()

	res := make([]Stats, 0, len(pools))
	for _, p := range pools {
		res = append(res, p.Stats())
	}
	return res
}
