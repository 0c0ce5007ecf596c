package handlers

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

type CampaignHandler struct {
	campaigns *store.Collection[models.Campaign]
	audit     *audit.Dispatcher
}

func NewCampaignHandler(
	campaigns *store.Collection[models.Campaign],
	audit *audit.Dispatcher,
) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, audit: audit}
}

// --------- Requests ---------

type CreateCampaignRequest struct {
	Name    string `json:"name" binding:"required"`
	Channel string `json:"channel"`
	Message string `json:"message" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *CampaignHandler) List(c *gin.Context) {
	status := c.Query("status")

	items := h.campaigns.All()

	filtered := make([]models.Campaign, 0, len(items))
	for _, cp := range items {
		if status != "" && cp.Status != status {
			continue
		}
		filtered = append(filtered, cp)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID > filtered[j].ID
	})

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE
// ======================================================

func (h *CampaignHandler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha o nome e a mensagem da campanha.")
		return
	}

	channel := req.Channel
	if channel == "" {
		channel = models.CampaignChannelEmail
	}
	if !models.ValidCampaignChannel(channel) {
		httperr.BadRequest(c, "invalid_channel", "Canal de campanha inválido.")
		return
	}

	now := timezone.Now()
	var created models.Campaign

	_ = h.campaigns.Mutate(func(items []models.Campaign) ([]models.Campaign, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		created = models.Campaign{
			ID:        store.NextID(ids),
			Name:      req.Name,
			Channel:   channel,
			Message:   req.Message,
			Status:    models.CampaignStatusActive,
			Date:      now.Format("2006-01-02"),
			CreatedAt: now,
		}
		return append(items, created), nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "campaign_created",
		Entity:    "campaign",
		EntityID:  &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *CampaignHandler) Pause(c *gin.Context) {
	h.setStatus(c, "campaign_paused", models.CampaignStatusActive, models.CampaignStatusPaused)
}

func (h *CampaignHandler) Resume(c *gin.Context) {
	h.setStatus(c, "campaign_resumed", models.CampaignStatusPaused, models.CampaignStatusActive)
}

func (h *CampaignHandler) Finish(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var changed *models.Campaign

	mErr := h.campaigns.Mutate(func(items []models.Campaign) ([]models.Campaign, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Status == models.CampaignStatusFinished {
				return nil, httperr.ErrBusiness("invalid_state")
			}
			items[i].Status = models.CampaignStatusFinished
			changed = &items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness("campaign_not_found")
	})

	if mErr != nil {
		if httperr.IsBusiness(mErr, "campaign_not_found") {
			httperr.NotFound(c, "campaign_not_found", "Campanha não encontrada.")
			return
		}
		writeBusinessError(c, mErr, "failed_to_update_campaign", "Erro ao atualizar campanha.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "campaign_finished",
		Entity:    "campaign",
		EntityID:  &changed.ID,
	})

	httpresp.OK(c, changed)
}

func (h *CampaignHandler) setStatus(c *gin.Context, action, from, to string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var changed *models.Campaign

	mErr := h.campaigns.Mutate(func(items []models.Campaign) ([]models.Campaign, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Status != from {
				return nil, httperr.ErrBusiness("invalid_state")
			}
			items[i].Status = to
			changed = &items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness("campaign_not_found")
	})

	if mErr != nil {
		if httperr.IsBusiness(mErr, "campaign_not_found") {
			httperr.NotFound(c, "campaign_not_found", "Campanha não encontrada.")
			return
		}
		writeBusinessError(c, mErr, "failed_to_update_campaign", "Erro ao atualizar campanha.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    action,
		Entity:    "campaign",
		EntityID:  &changed.ID,
	})

	httpresp.OK(c, changed)
}

// ======================================================
// DELETE (duas fases)
// ======================================================

func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var target *models.Campaign
	for _, cp := range h.campaigns.All() {
		if cp.ID == id {
			target = &cp
			break
		}
	}
	if target == nil {
		httperr.NotFound(c, "campaign_not_found", "Campanha não encontrada.")
		return
	}

	if !deleteConfirmed(c, target) {
		return
	}

	_ = h.campaigns.Mutate(func(items []models.Campaign) ([]models.Campaign, error) {
		kept := items[:0]
		for _, cp := range items {
			if cp.ID != id {
				kept = append(kept, cp)
			}
		}
		return kept, nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "campaign_deleted",
		Entity:    "campaign",
		EntityID:  &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
