package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is a process-local index used when no database is configured.
// Its contents are lost on restart.
type Memory struct {
	mu      sync.Mutex
	records map[string]Record
	now     func() time.Time
}

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{records: map[string]Record{}, now: time.Now}
}

func (m *Memory) Insert(_ context.Context, rec Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID]; ok {
		return nil, fmt.Errorf("insert analysis %s: duplicate id", rec.ID)
	}
	rec.CreatedAt = m.now().UTC()
	rec.RescoredAt = nil
	m.records[rec.ID] = rec
	return &rec, nil
}

func (m *Memory) Get(_ context.Context, id string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("get analysis %s: %w", id, ErrNotFound)
	}
	return &rec, nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Record{}
	for _, rec := range m.records {
		if f.Role == "" || rec.Role == f.Role {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *Memory) UpdateScore(_ context.Context, id string, u ScoreUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return fmt.Errorf("update analysis %s: %w", id, ErrNotFound)
	}
	now := m.now().UTC()
	rec.OverallScore = u.OverallScore
	rec.Rating = u.Rating
	rec.Confidence = u.Confidence
	rec.RescoredAt = &now
	m.records[id] = rec
	return nil
}
