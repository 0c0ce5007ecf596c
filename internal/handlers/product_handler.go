package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	domain "github.com/belezaclinic/clinic-manager/internal/domain/inventory"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
	ucInventory "github.com/belezaclinic/clinic-manager/internal/usecase/inventory"
)

type ProductHandler struct {
	products  *store.Collection[models.Product]
	moveStock *ucInventory.MoveStock
	audit     *audit.Dispatcher
}

func NewProductHandler(
	products *store.Collection[models.Product],
	moveStock *ucInventory.MoveStock,
	audit *audit.Dispatcher,
) *ProductHandler {
	return &ProductHandler{
		products:  products,
		moveStock: moveStock,
		audit:     audit,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	SKU           string  `json:"sku" binding:"required"`
	Quantity      int     `json:"quantity"`
	MinQuantity   int     `json:"min_quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	Supplier      string  `json:"supplier" binding:"required"`
	Batch         string  `json:"batch"`
	Expiry        string  `json:"expiry"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name,omitempty"`
	Category      *string  `json:"category,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
	MinQuantity   *int     `json:"min_quantity,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	Supplier      *string  `json:"supplier,omitempty"`
	Batch         *string  `json:"batch,omitempty"`
	Expiry        *string  `json:"expiry,omitempty"`
}

type MoveStockRequest struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	query := c.Query("query")
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	status := c.Query("status")

	items := h.products.All()

	filtered := make([]models.Product, 0, len(items))
	for _, p := range items {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		if query != "" && !containsFold(p.Name, query) && !containsFold(p.SKU, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos obrigatórios.")
		return
	}

	if req.Quantity < 0 {
		httperr.BadRequest(c, "invalid_quantity", "A quantidade não pode ser negativa.")
		return
	}

	minQuantity := req.MinQuantity
	if minQuantity <= 0 {
		minQuantity = 1
	}

	now := timezone.Now()
	var created models.Product

	_ = h.products.Mutate(func(items []models.Product) ([]models.Product, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		created = models.Product{
			ID:            store.NextID(ids),
			Name:          req.Name,
			Category:      strings.ToLower(req.Category),
			SKU:           req.SKU,
			Quantity:      req.Quantity,
			MinQuantity:   minQuantity,
			PurchasePrice: req.PurchasePrice,
			SalePrice:     req.SalePrice,
			Supplier:      req.Supplier,
			Batch:         req.Batch,
			Expiry:        req.Expiry,
			Status:        string(domain.DeriveStatus(req.Quantity, minQuantity)),
			LastMovement:  now.Format("2006-01-02"),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return append(items, created), nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "product_created",
		Entity:    "product",
		EntityID:  &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Quantity != nil && *req.Quantity < 0 {
		httperr.BadRequest(c, "invalid_quantity", "A quantidade não pode ser negativa.")
		return
	}

	var updated *models.Product

	mErr := h.products.Mutate(func(items []models.Product) ([]models.Product, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			p := &items[i]
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Category != nil {
				p.Category = strings.ToLower(*req.Category)
			}
			if req.SKU != nil {
				p.SKU = *req.SKU
			}
			if req.Quantity != nil {
				p.Quantity = *req.Quantity
			}
			if req.MinQuantity != nil {
				p.MinQuantity = *req.MinQuantity
			}
			if req.PurchasePrice != nil {
				p.PurchasePrice = *req.PurchasePrice
			}
			if req.SalePrice != nil {
				p.SalePrice = *req.SalePrice
			}
			if req.Supplier != nil {
				p.Supplier = *req.Supplier
			}
			if req.Batch != nil {
				p.Batch = *req.Batch
			}
			if req.Expiry != nil {
				p.Expiry = *req.Expiry
			}

			// Status é sempre recalculado na gravação, nunca aceito do
			// cliente.
			p.Status = string(domain.DeriveStatus(p.Quantity, p.MinQuantity))
			p.UpdatedAt = timezone.Now()

			updated = p
			return items, nil
		}
		return nil, httperr.ErrBusiness("product_not_found")
	})

	if mErr != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// STOCK MOVEMENT
// ======================================================

func (h *ProductHandler) Move(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req MoveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	moved, err := h.moveStock.Execute(actorEmail(c), ucInventory.MoveStockInput{
		ProductID: id,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "product_not_found") {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return
		}
		writeBusinessError(c, err, "failed_to_move_stock", "Erro ao movimentar estoque.")
		return
	}

	httpresp.OK(c, moved)
}

// ======================================================
// DELETE (duas fases)
// ======================================================

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var target *models.Product
	for _, p := range h.products.All() {
		if p.ID == id {
			target = &p
			break
		}
	}
	if target == nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	if !deleteConfirmed(c, target) {
		return
	}

	_ = h.products.Mutate(func(items []models.Product) ([]models.Product, error) {
		kept := items[:0]
		for _, p := range items {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "product_deleted",
		Entity:    "product",
		EntityID:  &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
