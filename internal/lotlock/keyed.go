// Package lotlock provides an in-process exclusive lease per lot id.
package lotlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/biddingerrors"
)

// Keyed hands out one exclusive lease per key. Leases on different keys never block each other.
type Keyed struct {
	mu    sync.Mutex
	slots map[string]*slot
	wait  time.Duration
}

type slot struct {
	ch      chan struct{}
	holders int // waiting or holding goroutines
}

// NewKeyed creates a locker whose Acquire gives up after wait (zero waits for ctx only)
func NewKeyed(wait time.Duration) *Keyed {
	return &Keyed{
		slots: make(map[string]*slot),
		wait:  wait,
	}
}

// Acquire blocks until the lease for key is free. The returned release func must be called
// exactly once. A lease not obtained within the wait timeout fails with ErrBusy.
func (k *Keyed) Acquire(ctx context.Context, key string) (func(), error) {
	s := k.ref(key)

	var timeout <-chan time.Time
	if k.wait > 0 {
		timer := time.NewTimer(k.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case s.ch <- struct{}{}:
	case <-timeout:
		k.unref(key)
		return nil, fmt.Errorf("lock lot %s: waited %s: %w", key, k.wait, biddingerrors.ErrBusy)
	case <-ctx.Done():
		k.unref(key)
		return nil, fmt.Errorf("lock lot %s: %w", key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			k.unref(key)
		})
	}, nil
}

func (k *Keyed) ref(key string) *slot {
	k.mu.Lock()
	defer k.mu.Unlock()
	s, ok := k.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		k.slots[key] = s
	}
	s.holders++
	return s
}

func (k *Keyed) unref(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	s := k.slots[key]
	s.holders--
	if s.holders == 0 {
		delete(k.slots, key)
	}
}

// Len returns the number of keys currently held or waited on
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.slots)
}
