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
	"github.com/belezaclinic/clinic-manager/internal/validators"
)

type ClientHandler struct {
	clients *store.Collection[models.Client]
	audit   *audit.Dispatcher
}

func NewClientHandler(
	clients *store.Collection[models.Client],
	audit *audit.Dispatcher,
) *ClientHandler {
	return &ClientHandler{clients: clients, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	Category  string `json:"category"`
}

type UpdateClientRequest struct {
	Name       *string  `json:"name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	BirthDate  *string  `json:"birth_date,omitempty"`
	Address    *string  `json:"address,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Category   *string  `json:"category,omitempty"`
	TotalSpent *float64 `json:"total_spent,omitempty"`
	LastVisit  *string  `json:"last_visit,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := c.Query("query")
	status := c.Query("status")
	category := c.Query("category")

	items := h.clients.All()

	filtered := make([]models.Client, 0, len(items))
	for _, cl := range items {
		if status != "" && cl.Status != status {
			continue
		}
		if category != "" && cl.Category != category {
			continue
		}
		if query != "" &&
			!containsFold(cl.Name, query) &&
			!containsFold(cl.Phone, query) &&
			!containsFold(cl.Email, query) {
			continue
		}
		filtered = append(filtered, cl)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos obrigatórios.")
		return
	}

	if req.Email != "" && !validators.IsEmailShapeValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "O e-mail informado não parece ser válido.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.ClientStatusActive
	}
	if !models.ValidClientStatus(status) {
		httperr.BadRequest(c, "invalid_status", "Status de cliente inválido.")
		return
	}

	category := req.Category
	if category == "" {
		category = models.ClientCategoryNew
	}
	if !models.ValidClientCategory(category) {
		httperr.BadRequest(c, "invalid_category", "Categoria de cliente inválida.")
		return
	}

	now := timezone.Now()
	var created models.Client

	_ = h.clients.Mutate(func(items []models.Client) ([]models.Client, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		created = models.Client{
			ID:        store.NextID(ids),
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			BirthDate: req.BirthDate,
			Address:   req.Address,
			Notes:     req.Notes,
			Status:    status,
			Category:  category,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return append(items, created), nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "client_created",
		Entity:    "client",
		EntityID:  &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != nil && !models.ValidClientStatus(*req.Status) {
		httperr.BadRequest(c, "invalid_status", "Status de cliente inválido.")
		return
	}
	if req.Category != nil && !models.ValidClientCategory(*req.Category) {
		httperr.BadRequest(c, "invalid_category", "Categoria de cliente inválida.")
		return
	}
	if req.Email != nil && *req.Email != "" && !validators.IsEmailShapeValid(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "O e-mail informado não parece ser válido.")
		return
	}

	var updated *models.Client

	mErr := h.clients.Mutate(func(items []models.Client) ([]models.Client, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			cl := &items[i]
			if req.Name != nil {
				cl.Name = *req.Name
			}
			if req.Phone != nil {
				cl.Phone = *req.Phone
			}
			if req.Email != nil {
				cl.Email = *req.Email
			}
			if req.BirthDate != nil {
				cl.BirthDate = *req.BirthDate
			}
			if req.Address != nil {
				cl.Address = *req.Address
			}
			if req.Notes != nil {
				cl.Notes = *req.Notes
			}
			if req.Status != nil {
				cl.Status = *req.Status
			}
			if req.Category != nil {
				cl.Category = *req.Category
			}
			if req.TotalSpent != nil {
				cl.TotalSpent = *req.TotalSpent
			}
			if req.LastVisit != nil {
				cl.LastVisit = *req.LastVisit
			}
			cl.UpdatedAt = timezone.Now()

			updated = cl
			return items, nil
		}
		return nil, httperr.ErrBusiness("client_not_found")
	})

	if mErr != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE (duas fases)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var target *models.Client
	for _, cl := range h.clients.All() {
		if cl.ID == id {
			target = &cl
			break
		}
	}
	if target == nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	if !deleteConfirmed(c, target) {
		return
	}

	_ = h.clients.Mutate(func(items []models.Client) ([]models.Client, error) {
		kept := items[:0]
		for _, cl := range items {
			if cl.ID != id {
				kept = append(kept, cl)
			}
		}
		return kept, nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "client_deleted",
		Entity:    "client",
		EntityID:  &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
