package pipeline

import (
	"context"
	"runtime"

	"subburn/internal/config"
)

// Gate is a counting permit pool. The number of holders between Acquire and
// Release never exceeds capacity.
type Gate struct {
	permits chan struct{}
}

// NewGate creates a gate with the given capacity. Capacities below one are
// raised to one.
func NewGate(capacity int) *Gate {
	if capacity < 1 {
		capacity = 1
	}
	return &Gate{permits: make(chan struct{}, capacity)}
}

// Acquire blocks until a permit is free or ctx is done.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.permits <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a permit. Must be called exactly once per successful
// Acquire.
func (g *Gate) Release() {
	<-g.permits
}

// Capacity returns the maximum number of simultaneous permit holders.
func (g *Gate) Capacity() int {
	return cap(g.permits)
}

// DefaultCapacity sizes concurrency as min(logical CPUs, the fixed ceiling).
func DefaultCapacity() int {
	n := runtime.NumCPU()
	if n > config.DefaultConcurrencyCeiling {
		n = config.DefaultConcurrencyCeiling
	}
	if n < 1 {
		n = 1
	}
	return n
}
