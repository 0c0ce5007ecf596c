package audit

import (
	"testing"

	"github.com/belezaclinic/clinic-manager/internal/store"
)

func TestLogger_AppendsWithUniqueIDs(t *testing.T) {
	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	l := New(s)

	entityID := int64(42)
	for i := 0; i < 3; i++ {
		if err := l.Log("admin@beleza.com", "client_created", "client", &entityID, nil); err != nil {
			t.Fatalf("log failed: %v", err)
		}
	}

	logs := l.All()
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}

	seen := map[int64]bool{}
	for _, entry := range logs {
		if seen[entry.ID] {
			t.Errorf("duplicate audit id %d", entry.ID)
		}
		seen[entry.ID] = true

		if entry.Action != "client_created" || entry.UserEmail != "admin@beleza.com" {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if entry.EntityID == nil || *entry.EntityID != 42 {
			t.Errorf("expected entity id 42, got %v", entry.EntityID)
		}
	}
}

func TestLogger_MetadataSerialized(t *testing.T) {
	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	l := New(s)

	if err := l.Log("admin@beleza.com", "stock_moved", "product", nil, map[string]any{"quantity": 5}); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	logs := l.All()
	if logs[0].Metadata != `{"quantity":5}` {
		t.Errorf("unexpected metadata %q", logs[0].Metadata)
	}
}
