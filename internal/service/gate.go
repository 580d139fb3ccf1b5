package service

import "sync"

// Gate is the process-wide exclusion region around batch execution.
// At most one holder at a time; waiters are not served in arrival order.
type Gate struct {
	mu sync.Mutex
}

func NewGate() *Gate {
	return &Gate{}
}

// Acquire blocks until the gate is free.
func (g *Gate) Acquire() {
	g.mu.Lock()
}

func (g *Gate) Release() {
	g.mu.Unlock()
}

// Do runs fn while holding the gate.
func (g *Gate) Do(fn func() error) error {
	g.Acquire()
	defer g.Release()
	return fn()
}
