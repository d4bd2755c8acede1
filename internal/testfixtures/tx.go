package testfixtures

import (
	"context"
	"sync"
)

// TxManager runs callbacks inline and counts how they were started.
type TxManager struct {
	mu       sync.Mutex
	Writes   int
	ReadOnly int
}

// Do runs fn as a read-write unit of work.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.Writes++
	m.mu.Unlock()
	return fn(ctx)
}

// DoReadOnly runs fn as a read-only unit of work.
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.ReadOnly++
	m.mu.Unlock()
	return fn(ctx)
}
