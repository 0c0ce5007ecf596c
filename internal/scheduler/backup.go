package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	ucBackup "github.com/belezaclinic/clinic-manager/internal/usecase/backup"
)

// StartBackupJob agenda o snapshot automático. O switch de backup
// automático é lido das configurações a cada disparo, então ligar ou
// desligar não exige reiniciar o servidor.
func StartBackupJob(
	spec string,
	s *store.Store,
	bk *ucBackup.Backup,
	log *zap.Logger,
) (*cron.Cron, error) {

	if log == nil {
		log = zap.NewNop()
	}

	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		settings := models.DefaultSettings()
		s.Read(store.SlotSettings, &settings)

		if !settings.AutoBackup {
			log.Debug("automatic backup disabled, skipping")
			return
		}

		path, err := bk.WriteLocal()
		if err != nil {
			log.Error("automatic backup failed", zap.Error(err))
			return
		}
		log.Info("automatic backup written", zap.String("path", path))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
