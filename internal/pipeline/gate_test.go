package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"subburn/internal/config"
)

func TestGateCapacityInvariant(t *testing.T) {
	for _, capacity := range []int{1, 2, 4} {
		gate := NewGate(capacity)
		var current, peak atomic.Int64
		var wg sync.WaitGroup

		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := gate.Acquire(context.Background()); err != nil {
					t.Errorf("Acquire: %v", err)
					return
				}
				defer gate.Release()

				now := current.Add(1)
				for {
					prev := peak.Load()
					if now <= prev || peak.CompareAndSwap(prev, now) {
						break
					}
				}
				current.Add(-1)
			}()
		}
		wg.Wait()

		if got := peak.Load(); got > int64(capacity) {
			t.Errorf("capacity %d: %d holders observed inside the gate", capacity, got)
		}
	}
}

func TestGateRaisesZeroCapacity(t *testing.T) {
	if got := NewGate(0).Capacity(); got != 1 {
		t.Fatalf("Capacity = %d, want 1", got)
	}
}

func TestGateAcquireHonorsContext(t *testing.T) {
	gate := NewGate(1)
	if err := gate.Acquire(context.Background()); err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := gate.Acquire(ctx); err == nil {
		t.Fatal("expected context error on saturated gate")
	}
	gate.Release()
}

func TestDefaultCapacityRespectsCeiling(t *testing.T) {
	got := DefaultCapacity()
	if got < 1 || got > config.DefaultConcurrencyCeiling {
		t.Fatalf("DefaultCapacity = %d, want within [1, %d]", got, config.DefaultConcurrencyCeiling)
	}
}
