package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/belezaclinic/clinic-manager/internal/config"
	"github.com/belezaclinic/clinic-manager/internal/logger"
	"github.com/belezaclinic/clinic-manager/internal/middleware"
	"github.com/belezaclinic/clinic-manager/internal/routes"
	"github.com/belezaclinic/clinic-manager/internal/scheduler"
	"github.com/belezaclinic/clinic-manager/internal/store"
	ucBackup "github.com/belezaclinic/clinic-manager/internal/usecase/backup"
)

func main() {

	log := logger.Must(logger.New())
	defer log.Sync()

	cfg := config.Load()

	s, err := store.Open(cfg.DataDir, logger.Named(log, "store"))
	if err != nil {
		log.Fatal("failed to open data store", zap.Error(err))
	}

	backupUC := ucBackup.New(s)
	cronJob, err := scheduler.StartBackupJob(
		cfg.BackupSchedule,
		s,
		backupUC,
		logger.Named(log, "backup"),
	)
	if err != nil {
		log.Fatal("failed to start backup job", zap.Error(err))
	}
	defer cronJob.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auditDispatcher := routes.RegisterRoutes(r, s, cfg, log)
	defer auditDispatcher.Close()

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
