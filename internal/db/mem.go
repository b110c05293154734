package db

import (
	"context"
	"sort"
	"sync"

	"github.com/mithrel/lovelog/pkg/api"
)

// Mem is an in-memory Store used by tests and as a throwaway backend.
type Mem struct {
	mu   sync.RWMutex
	byID map[string]api.LogEntry
}

func NewMem() *Mem {
	return &Mem{byID: make(map[string]api.LogEntry)}
}

func (m *Mem) GetAll(ctx context.Context) ([]api.LogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]api.LogEntry, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *Mem) GetByDay(ctx context.Context, dayKey string) ([]api.LogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []api.LogEntry
	for _, e := range m.byID {
		if e.DayKey == dayKey {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (m *Mem) Add(ctx context.Context, e api.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[e.ID]; ok {
		return ErrConflict
	}
	m.byID[e.ID] = e.Clone()
	return nil
}

func (m *Mem) Update(ctx context.Context, e api.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[e.ID] = e.Clone()
	return nil
}

func (m *Mem) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *Mem) BulkAdd(ctx context.Context, entries []api.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.byID[e.ID] = e.Clone()
	}
	return nil
}

func (m *Mem) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID = make(map[string]api.LogEntry)
	return nil
}
