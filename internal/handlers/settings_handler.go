package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
	ucBackup "github.com/belezaclinic/clinic-manager/internal/usecase/backup"
)

type SettingsHandler struct {
	store  *store.Store
	backup *ucBackup.Backup
	audit  *audit.Dispatcher
}

func NewSettingsHandler(
	s *store.Store,
	backup *ucBackup.Backup,
	audit *audit.Dispatcher,
) *SettingsHandler {
	return &SettingsHandler{store: s, backup: backup, audit: audit}
}

// ======================================================
// GET / UPDATE
// ======================================================

func (h *SettingsHandler) Get(c *gin.Context) {
	settings := models.DefaultSettings()
	h.store.Read(store.SlotSettings, &settings)
	httpresp.OK(c, settings)
}

// Update grava o documento de configurações inteiro, como a aba do painel
// faz. Os campos de segurança são aceitos mas nunca aplicados.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if settings.Timezone != "" && !timezone.IsValid(settings.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
		return
	}

	h.store.Write(store.SlotSettings, settings)

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "settings_updated",
		Entity:    "settings",
	})

	httpresp.OK(c, settings)
}

// ======================================================
// EXPORT / IMPORT / RESET
// ======================================================

func (h *SettingsHandler) ExportData(c *gin.Context) {
	data, err := h.backup.Export()
	if err != nil {
		httperr.Internal(c, "export_failed", "Ocorreu um erro ao exportar os dados.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "data_exported",
		Entity:    "backup",
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.backup.Filename()))
	c.Data(http.StatusOK, "application/json", data)
}

// ImportData aceita o documento de backup no corpo ou como arquivo
// multipart no campo "file".
func (h *SettingsHandler) ImportData(c *gin.Context) {
	data, err := h.readImportPayload(c)
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo de backup.")
		return
	}

	if err := h.backup.Import(data); err != nil {
		writeBusinessError(c, err, "import_failed", "Erro ao importar os dados.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "data_imported",
		Entity:    "backup",
	})

	httpresp.OK(c, gin.H{"status": "imported"})
}

func (h *SettingsHandler) readImportPayload(c *gin.Context) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	return data, nil
}

// ResetData apaga todos os slots. Exige a confirmação em duas fases, igual
// às exclusões.
func (h *SettingsHandler) ResetData(c *gin.Context) {
	if !deleteConfirmed(c, gin.H{"scope": "all_data"}) {
		return
	}

	h.backup.Reset()

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "data_reset",
		Entity:    "backup",
	})

	httpresp.OK(c, gin.H{"status": "reset"})
}
