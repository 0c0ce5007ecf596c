package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestStore_ReadAbsentSlot(t *testing.T) {
	s := newTestStore(t)

	out := []string{"default"}
	if s.Read("agendamentos", &out) {
		t.Fatal("expected Read to report failure for absent slot")
	}
	if len(out) != 1 || out[0] != "default" {
		t.Errorf("expected default value untouched, got %v", out)
	}
}

func TestStore_ReadCorruptSlot(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Dir(), "clientes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	out := []int{1, 2, 3}
	if s.Read("clientes", &out) {
		t.Fatal("expected Read to report failure for corrupt slot")
	}
	if len(out) != 3 {
		t.Errorf("expected default value untouched, got %v", out)
	}
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := map[string]int{"a": 1, "b": 2}
	s.Write("produtos", in)

	out := map[string]int{}
	if !s.Read("produtos", &out) {
		t.Fatal("expected Read to succeed after Write")
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestStore_WriteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	value := []string{"x", "y"}

	s.Write("transacoes", value)
	first := s.ReadRaw("transacoes")

	s.Write("transacoes", value)
	second := s.ReadRaw("transacoes")

	if !bytes.Equal(first, second) {
		t.Errorf("persisted bytes changed between identical writes:\n%s\n%s", first, second)
	}
}

func TestStore_DeleteAndClear(t *testing.T) {
	s := newTestStore(t)

	s.Write(SlotSession, map[string]bool{"authenticated": true})
	s.Delete(SlotSession)

	var out map[string]bool
	if s.Read(SlotSession, &out) {
		t.Fatal("expected slot gone after Delete")
	}

	// Delete em slot inexistente não pode explodir.
	s.Delete(SlotSession)

	s.Write(SlotClients, []string{"a"})
	s.Write(SlotProducts, []string{"b"})
	s.Clear()

	var items []string
	if s.Read(SlotClients, &items) || s.Read(SlotProducts, &items) {
		t.Error("expected all slots gone after Clear")
	}
}
