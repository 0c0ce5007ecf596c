package backup

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	src.Write(store.SlotClients, []models.Client{{ID: 1, Name: "Maria Silva"}})
	src.Write(store.SlotProducts, []models.Product{{ID: 2, Name: "Shampoo", Quantity: 7}})

	data, err := New(src).Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	dst := newTestStore(t)
	if err := New(dst).Import(data); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	for _, slot := range store.DataSlots {
		if !bytes.Equal(src.ReadRaw(slot), dst.ReadRaw(slot)) && src.ReadRaw(slot) != nil {
			t.Errorf("slot %s differs after round trip", slot)
		}
	}

	var clients []models.Client
	if !dst.Read(store.SlotClients, &clients) || len(clients) != 1 || clients[0].Name != "Maria Silva" {
		t.Errorf("restored clients mismatch: %v", clients)
	}
}

func TestExport_EmptySlotsAsEmptyCollections(t *testing.T) {
	s := newTestStore(t)

	data, err := New(s).Export()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("exported document unparseable: %v", err)
	}

	for _, slot := range store.DataSlots {
		raw, ok := doc[slot]
		if !ok {
			t.Errorf("slot %s missing from export", slot)
			continue
		}
		if string(raw) != "[]" {
			t.Errorf("slot %s: expected empty collection, got %s", slot, raw)
		}
	}

	if _, ok := doc["dataExportacao"]; !ok {
		t.Error("export timestamp missing")
	}
	if _, ok := doc[store.SlotSettings]; !ok {
		t.Error("settings missing from export")
	}
}

func TestImport_PartialRestore(t *testing.T) {
	s := newTestStore(t)
	s.Write(store.SlotProducts, []models.Product{{ID: 1, Name: "existente"}})

	doc := `{"clientes": [{"id": 9, "name": "Ana"}]}`
	if err := New(s).Import([]byte(doc)); err != nil {
		t.Fatalf("partial import failed: %v", err)
	}

	var clients []models.Client
	if !s.Read(store.SlotClients, &clients) || len(clients) != 1 {
		t.Errorf("expected imported clients, got %v", clients)
	}

	var products []models.Product
	if !s.Read(store.SlotProducts, &products) || len(products) != 1 || products[0].Name != "existente" {
		t.Errorf("expected products untouched by partial import, got %v", products)
	}
}

func TestImport_NormalizesIndentedDocument(t *testing.T) {
	s := newTestStore(t)

	doc := "{\n  \"clientes\": [\n    {\n      \"id\": 9,\n      \"name\": \"Ana\"\n    }\n  ]\n}"
	if err := New(s).Import([]byte(doc)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	restored := s.ReadRaw(store.SlotClients)
	if !bytes.Equal(restored, []byte(`[{"id":9,"name":"Ana"}]`)) {
		t.Errorf("expected compact slot bytes, got %s", restored)
	}
}

func TestImport_InvalidDocumentWritesNothing(t *testing.T) {
	s := newTestStore(t)
	s.Write(store.SlotClients, []models.Client{{ID: 1, Name: "Maria"}})

	err := New(s).Import([]byte("não é json"))
	if httperr.BusinessCode(err) != "invalid_backup" {
		t.Fatalf("expected invalid_backup, got %v", err)
	}

	var clients []models.Client
	if !s.Read(store.SlotClients, &clients) || len(clients) != 1 {
		t.Errorf("expected clients untouched after failed import, got %v", clients)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	s.Write(store.SlotClients, []models.Client{{ID: 1}})
	s.Write(store.SlotSettings, models.Settings{Name: "alterado"})

	New(s).Reset()

	var clients []models.Client
	if s.Read(store.SlotClients, &clients) {
		t.Error("expected clients wiped by reset")
	}

	var settings models.Settings
	if !s.Read(store.SlotSettings, &settings) {
		t.Fatal("expected default settings written by reset")
	}
	if settings.Name != models.DefaultSettings().Name {
		t.Errorf("expected default settings, got name %q", settings.Name)
	}
}

func TestFilename(t *testing.T) {
	name := New(newTestStore(t)).Filename()
	if !strings.HasPrefix(name, "backup-dados-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename %q", name)
	}
}
