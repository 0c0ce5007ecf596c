package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Nomes dos slots persistidos. Mantidos iguais ao layout exportado pelos
// backups existentes, então não renomear sem migração.
const (
	SlotAppointments = "agendamentos"
	SlotClients      = "clientes"
	SlotProducts     = "produtos"
	SlotTransactions = "transacoes"
	SlotSettings     = "configuracoes"
	SlotSession      = "sessao"
	SlotCampaigns    = "campanhas"
	SlotAuditLogs    = "auditoria"
)

// DataSlots are the collection slots included in a full backup, in the
// order they appear in the exported document.
var DataSlots = []string{
	SlotTransactions,
	SlotClients,
	SlotProducts,
	SlotAppointments,
}

// Store binds named slots to JSON files in a data directory. Every write
// rewrites the whole slot file; there is no partial update, no versioning
// and no cross-process coordination. Two concurrent writers are
// last-write-wins.
type Store struct {
	mu  sync.Mutex
	dir string
	log *zap.Logger
}

func Open(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Read deserializes the slot into out and reports whether it succeeded.
// An absent file or unparseable JSON is not an error: the caller keeps
// whatever default it already holds.
func (s *Store) Read(slot string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked(slot, out)
}

// readLocked assumes s.mu is held.
func (s *Store) readLocked(slot string, out any) bool {
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("slot unreadable, using default",
				zap.String("slot", slot), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("slot corrupted, using default",
			zap.String("slot", slot), zap.Error(err))
		return false
	}

	return true
}

// ReadRaw returns the persisted bytes of a slot, or nil when absent.
func (s *Store) ReadRaw(slot string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		return nil
	}
	return data
}

// Write serializes value and persists it synchronously. Failures are
// logged and swallowed: the call is fire-and-forget and never surfaces an
// error to the caller.
func (s *Store) Write(slot string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeLocked(slot, value)
}

// writeLocked assumes s.mu is held.
func (s *Store) writeLocked(slot string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("slot marshal failed", zap.String("slot", slot), zap.Error(err))
		return
	}

	if err := os.WriteFile(s.path(slot), data, 0o644); err != nil {
		s.log.Error("slot write failed", zap.String("slot", slot), zap.Error(err))
	}
}

// WriteRaw persists pre-serialized JSON into a slot.
func (s *Store) WriteRaw(slot string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path(slot), data, 0o644); err != nil {
		s.log.Error("slot write failed", zap.String("slot", slot), zap.Error(err))
	}
}

// Delete removes a slot file. Missing files are fine.
func (s *Store) Delete(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(slot)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error("slot delete failed", zap.String("slot", slot), zap.Error(err))
	}
}

// Clear removes every known slot. Used by the full data reset.
func (s *Store) Clear() {
	for _, slot := range []string{
		SlotAppointments, SlotClients, SlotProducts, SlotTransactions,
		SlotSettings, SlotSession, SlotCampaigns, SlotAuditLogs,
	} {
		s.Delete(slot)
	}
}
