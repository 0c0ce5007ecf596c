package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	domain "github.com/belezaclinic/clinic-manager/internal/domain/appointment"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *store.Collection[models.Appointment]
	audit        *audit.Dispatcher
}

func NewAppointmentHandler(
	appointments *store.Collection[models.Appointment],
	audit *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		audit:        audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Client       string  `json:"client" binding:"required"`
	Service      string  `json:"service" binding:"required"`
	Professional string  `json:"professional"`
	Date         string  `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	Duration     int     `json:"duration_min"`
	Value        float64 `json:"value"`
	Phone        string  `json:"phone"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status"`
}

type UpdateAppointmentRequest struct {
	Client       *string  `json:"client,omitempty"`
	Service      *string  `json:"service,omitempty"`
	Professional *string  `json:"professional,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Time         *string  `json:"time,omitempty"`
	Duration     *int     `json:"duration_min,omitempty"`
	Value        *float64 `json:"value,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")
	query := c.Query("query")

	items := h.appointments.All()

	filtered := make([]models.Appointment, 0, len(items))
	for _, ap := range items {
		if date != "" && ap.Date != date {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		if query != "" && !containsFold(ap.Client, query) && !containsFold(ap.Service, query) {
			continue
		}
		filtered = append(filtered, ap)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos obrigatórios.")
		return
	}

	status := domain.Status(req.Status)
	if req.Status == "" {
		status = domain.InitialStatus()
	}
	if !domain.Valid(status) {
		httperr.BadRequest(c, "invalid_status", "Status de agendamento inválido.")
		return
	}

	duration := req.Duration
	if duration <= 0 {
		duration = 60
	}

	now := timezone.Now()
	var created models.Appointment

	_ = h.appointments.Mutate(func(items []models.Appointment) ([]models.Appointment, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		created = models.Appointment{
			ID:           store.NextID(ids),
			Client:       req.Client,
			Service:      req.Service,
			Professional: req.Professional,
			Date:         req.Date,
			Time:         req.Time,
			Duration:     duration,
			Value:        req.Value,
			Status:       string(status),
			Phone:        req.Phone,
			Notes:        req.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return append(items, created), nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != nil && !domain.Valid(domain.Status(*req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Status de agendamento inválido.")
		return
	}

	var updated *models.Appointment

	mErr := h.appointments.Mutate(func(items []models.Appointment) ([]models.Appointment, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			ap := &items[i]
			if req.Client != nil {
				ap.Client = *req.Client
			}
			if req.Service != nil {
				ap.Service = *req.Service
			}
			if req.Professional != nil {
				ap.Professional = *req.Professional
			}
			if req.Date != nil {
				ap.Date = *req.Date
			}
			if req.Time != nil {
				ap.Time = *req.Time
			}
			if req.Duration != nil {
				ap.Duration = *req.Duration
			}
			if req.Value != nil {
				ap.Value = *req.Value
			}
			if req.Phone != nil {
				ap.Phone = *req.Phone
			}
			if req.Notes != nil {
				ap.Notes = *req.Notes
			}
			if req.Status != nil {
				ap.Status = *req.Status
			}
			ap.UpdatedAt = timezone.Now()

			updated = ap
			return items, nil
		}
		return nil, httperr.ErrBusiness("appointment_not_found")
	})

	if mErr != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, "appointment_confirmed", domain.Confirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "appointment_cancelled", domain.Cancel)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action string,
	apply func(*models.Appointment, time.Time) error,
) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var changed *models.Appointment

	mErr := h.appointments.Mutate(func(items []models.Appointment) ([]models.Appointment, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if err := apply(&items[i], timezone.Now()); err != nil {
				return nil, err
			}
			changed = &items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness("appointment_not_found")
	})

	if mErr != nil {
		if httperr.IsBusiness(mErr, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		writeBusinessError(c, mErr, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    action,
		Entity:    "appointment",
		EntityID:  &changed.ID,
	})

	httpresp.OK(c, changed)
}

// ======================================================
// DELETE (duas fases)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var target *models.Appointment
	for _, ap := range h.appointments.All() {
		if ap.ID == id {
			target = &ap
			break
		}
	}
	if target == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if !deleteConfirmed(c, target) {
		return
	}

	_ = h.appointments.Mutate(func(items []models.Appointment) ([]models.Appointment, error) {
		kept := items[:0]
		for _, ap := range items {
			if ap.ID != id {
				kept = append(kept, ap)
			}
		}
		return kept, nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
