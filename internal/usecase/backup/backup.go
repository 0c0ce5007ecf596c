package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

// Chave extra gravada no documento exportado, fora dos slots.
const exportedAtKey = "dataExportacao"

// ======================================================
// USE CASE
// ======================================================

// Backup exporta e restaura o conjunto completo de slots num único
// documento JSON, no mesmo layout dos backups já exportados pelo painel.
type Backup struct {
	store *store.Store
}

func New(s *store.Store) *Backup {
	return &Backup{store: s}
}

// ======================================================
// EXPORT
// ======================================================

// Export monta o documento de backup. Slots vazios entram como coleções
// vazias, nunca como null.
func (b *Backup) Export() ([]byte, error) {
	doc := map[string]json.RawMessage{}

	settings := models.DefaultSettings()
	b.store.Read(store.SlotSettings, &settings)
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	doc[store.SlotSettings] = raw

	for _, slot := range store.DataSlots {
		if data := b.store.ReadRaw(slot); data != nil {
			doc[slot] = json.RawMessage(data)
		} else {
			doc[slot] = json.RawMessage("[]")
		}
	}

	ts, err := json.Marshal(timezone.Now())
	if err != nil {
		return nil, err
	}
	doc[exportedAtKey] = ts

	return json.MarshalIndent(doc, "", "  ")
}

// Filename segue o padrão de download do painel: backup-dados-AAAA-MM-DD.json.
func (b *Backup) Filename() string {
	return fmt.Sprintf("backup-dados-%s.json", timezone.Now().Format("2006-01-02"))
}

// ======================================================
// IMPORT
// ======================================================

// Import restaura os slots presentes no documento. Slot ausente fica como
// está (restauração parcial). Documento ilegível não grava nada.
func (b *Backup) Import(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return httperr.ErrBusiness("invalid_backup")
	}

	if raw, ok := doc[store.SlotSettings]; ok {
		b.store.WriteRaw(store.SlotSettings, compactJSON(raw))
	}

	for _, slot := range store.DataSlots {
		if raw, ok := doc[slot]; ok {
			b.store.WriteRaw(slot, compactJSON(raw))
		}
	}

	return nil
}

// compactJSON remove a indentação do documento exportado antes de gravar,
// deixando o slot restaurado byte a byte igual ao que Write produziria.
func compactJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

// ======================================================
// RESET
// ======================================================

// Reset apaga todos os slots e volta as configurações ao padrão.
func (b *Backup) Reset() {
	b.store.Clear()
	b.store.Write(store.SlotSettings, models.DefaultSettings())
}

// ======================================================
// LOCAL SNAPSHOT (backup automático)
// ======================================================

// WriteLocal grava o documento exportado em <data-dir>/backups. Usado pelo
// job de backup automático.
func (b *Backup) WriteLocal() (string, error) {
	data, err := b.Export()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(b.store.Dir(), "backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, b.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
