package store

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type testRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestCollection_AllOnEmptySlot(t *testing.T) {
	s := newTestStore(t)
	col := NewCollection[testRecord](s, SlotClients)

	items := col.All()
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected 0 records, got %d", len(items))
	}
}

func TestCollection_ReplaceAndAll(t *testing.T) {
	s := newTestStore(t)
	col := NewCollection[testRecord](s, SlotClients)

	col.Replace([]testRecord{{ID: 1, Name: "Maria"}, {ID: 2, Name: "Ana"}})

	items := col.All()
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].Name != "Maria" || items[1].Name != "Ana" {
		t.Errorf("unexpected records: %v", items)
	}
}

func TestCollection_MutateErrorWritesNothing(t *testing.T) {
	s := newTestStore(t)
	col := NewCollection[testRecord](s, SlotProducts)

	col.Replace([]testRecord{{ID: 1, Name: "original"}})

	err := col.Mutate(func(items []testRecord) ([]testRecord, error) {
		items[0].Name = "mutated"
		return items, errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected Mutate to surface fn error")
	}

	items := col.All()
	if items[0].Name != "original" {
		t.Errorf("expected persisted record untouched, got %q", items[0].Name)
	}
}

func TestCollection_ConcurrentMutates(t *testing.T) {
	s := newTestStore(t)
	col := NewCollection[testRecord](s, SlotAppointments)

	const writers = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_ = col.Mutate(func(items []testRecord) ([]testRecord, error) {
				ids := make([]int64, 0, len(items))
				for _, it := range items {
					ids = append(ids, it.ID)
				}
				return append(items, testRecord{ID: NextID(ids)}), nil
			})
		}(i)
	}
	wg.Wait()

	items := col.All()
	if len(items) != writers {
		t.Fatalf("expected %d records after %d creates, got %d", writers, writers, len(items))
	}

	seen := map[int64]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestNextID_BumpsPastExisting(t *testing.T) {
	now := time.Now().UnixMilli()
	existing := []int64{now, now + 1, now + 2}

	id := NextID(existing)
	if id <= now+2 {
		t.Errorf("expected id past %d, got %d", now+2, id)
	}
	for _, e := range existing {
		if id == e {
			t.Errorf("NextID returned an id already in use: %d", id)
		}
	}
}

func TestNextID_UniqueInTightLoop(t *testing.T) {
	var existing []int64
	seen := map[int64]bool{}

	for i := 0; i < 50; i++ {
		id := NextID(existing)
		if seen[id] {
			t.Fatalf("duplicate id generated: %d", id)
		}
		seen[id] = true
		existing = append(existing, id)
	}
}
