package history

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	tick := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for _, rec := range []Record{
		{ID: "a", Role: "data-analyst", OverallScore: 40},
		{ID: "b", Role: "qa-engineer", OverallScore: 55},
		{ID: "c", Role: "data-analyst", OverallScore: 81},
	} {
		if _, err := m.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert(%s): %v", rec.ID, err)
		}
	}
	if _, err := m.Insert(ctx, Record{ID: "a"}); err == nil {
		t.Error("expected duplicate id error")
	}

	list, err := m.List(ctx, Filter{Role: "data-analyst"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "a" {
		t.Errorf("List = %+v, want c then a", list)
	}

	list, _ = m.List(ctx, Filter{Limit: 1})
	if len(list) != 1 || list[0].ID != "c" {
		t.Errorf("List with limit = %+v", list)
	}

	if err := m.UpdateScore(ctx, "b", ScoreUpdate{OverallScore: 60, Rating: "Good", Confidence: "medium"}); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	got, err := m.Get(ctx, "b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.OverallScore != 60 || got.Rating != "Good" || got.RescoredAt == nil {
		t.Errorf("Get after update = %+v", got)
	}

	if _, err := m.Get(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing: %v", err)
	}
	if err := m.UpdateScore(ctx, "zzz", ScoreUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateScore missing: %v", err)
	}
}
