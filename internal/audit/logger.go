package audit

import (
	"encoding/json"

	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

// Logger grava eventos de auditoria no slot próprio. Mesma estratégia de
// persistência do resto do sistema: lê tudo, acrescenta, regrava tudo.
type Logger struct {
	logs *store.Collection[models.AuditLog]
}

func New(s *store.Store) *Logger {
	return &Logger{
		logs: store.NewCollection[models.AuditLog](s, store.SlotAuditLogs),
	}
}

func (l *Logger) Log(
	userEmail string,
	action string,
	entity string,
	entityID *int64,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.logs.Mutate(func(items []models.AuditLog) ([]models.AuditLog, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		items = append(items, models.AuditLog{
			ID:        store.NextID(ids),
			UserEmail: userEmail,
			Action:    action,
			Entity:    entity,
			EntityID:  entityID,
			Metadata:  metaJSON,
			CreatedAt: timezone.Now(),
		})
		return items, nil
	})
}

// All devolve os eventos registrados, mais recentes por último.
func (l *Logger) All() []models.AuditLog {
	return l.logs.All()
}
