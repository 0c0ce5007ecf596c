package audit

import (
	"testing"

	"github.com/belezaclinic/clinic-manager/internal/store"
)

func TestDispatcher_CloseDrains(t *testing.T) {
	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	logger := New(s)
	d := NewDispatcher(logger, nil)

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{
			UserEmail: "admin@beleza.com",
			Action:    "client_created",
			Entity:    "client",
		})
	}

	d.Close()

	if got := len(logger.All()); got != 5 {
		t.Errorf("expected 5 entries after drain, got %d", got)
	}
}

func TestDispatcher_DropsAfterClose(t *testing.T) {
	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	logger := New(s)
	d := NewDispatcher(logger, nil)
	d.Close()

	// Depois do Close o dispatch vira no-op, nunca panic.
	d.Dispatch(Event{Action: "client_created", Entity: "client"})
	d.Close()

	if got := len(logger.All()); got != 0 {
		t.Errorf("expected no entries after close, got %d", got)
	}
}
