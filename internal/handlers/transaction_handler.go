package handlers

import (
	"io"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/audit"
	domain "github.com/belezaclinic/clinic-manager/internal/domain/transaction"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/receipts"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

type TransactionHandler struct {
	transactions *store.Collection[models.Transaction]
	receipts     *receipts.Registry
	audit        *audit.Dispatcher
}

func NewTransactionHandler(
	transactions *store.Collection[models.Transaction],
	receipts *receipts.Registry,
	audit *audit.Dispatcher,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		receipts:     receipts,
		audit:        audit,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type          string  `json:"type" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Client        string  `json:"client"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

type UpdateTransactionRequest struct {
	Description   *string  `json:"description,omitempty"`
	Client        *string  `json:"client,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *TransactionHandler) List(c *gin.Context) {
	query := c.Query("query")
	txType := c.Query("type")
	status := c.Query("status")

	items := h.transactions.All()

	filtered := make([]models.Transaction, 0, len(items))
	for _, tx := range items {
		if txType != "" && tx.Type != txType {
			continue
		}
		if status != "" && tx.Status != status {
			continue
		}
		if query != "" && !containsFold(tx.Description, query) && !containsFold(tx.Client, query) {
			continue
		}
		filtered = append(filtered, tx)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date > filtered[j].Date
		}
		return filtered[i].ID > filtered[j].ID
	})

	httpresp.List(c, filtered)
}

// ======================================================
// CREATE
// ======================================================

func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos obrigatórios.")
		return
	}

	if !domain.ValidType(domain.Type(req.Type)) {
		httperr.BadRequest(c, "invalid_type", "Tipo de transação inválido.")
		return
	}
	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "O valor deve ser maior que zero.")
		return
	}

	// O formulário do painel grava lançamentos novos já como pagos.
	status := req.Status
	if status == "" {
		status = string(domain.StatusPaid)
	}
	if !domain.ValidStatus(domain.Status(status)) {
		httperr.BadRequest(c, "invalid_status", "Status de transação inválido.")
		return
	}

	date := req.Date
	if date == "" {
		date = today()
	}

	now := timezone.Now()
	var created models.Transaction

	_ = h.transactions.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		ids := make([]int64, 0, len(items))
		for _, it := range items {
			ids = append(ids, it.ID)
		}

		created = models.Transaction{
			ID:            store.NextID(ids),
			Type:          req.Type,
			Description:   req.Description,
			Client:        req.Client,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			Date:          date,
			Category:      req.Category,
			Status:        status,
			Notes:         req.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return append(items, created), nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "transaction_created",
		Entity:    "transaction",
		EntityID:  &created.ID,
	})

	httpresp.Created(c, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != nil && !domain.ValidStatus(domain.Status(*req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Status de transação inválido.")
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "O valor deve ser maior que zero.")
		return
	}

	var updated *models.Transaction

	mErr := h.transactions.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}

			tx := &items[i]
			if req.Description != nil {
				tx.Description = *req.Description
			}
			if req.Client != nil {
				tx.Client = *req.Client
			}
			if req.Amount != nil {
				tx.Amount = *req.Amount
			}
			if req.PaymentMethod != nil {
				tx.PaymentMethod = *req.PaymentMethod
			}
			if req.Date != nil {
				tx.Date = *req.Date
			}
			if req.Category != nil {
				tx.Category = *req.Category
			}
			if req.Status != nil {
				tx.Status = *req.Status
			}
			if req.Notes != nil {
				tx.Notes = *req.Notes
			}
			tx.UpdatedAt = timezone.Now()

			updated = tx
			return items, nil
		}
		return nil, httperr.ErrBusiness("transaction_not_found")
	})

	if mErr != nil {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// RECEIPT ATTACHMENT
// ======================================================

// AttachReceipt anexa um comprovante à transação. O arquivo fica só em
// memória; a URL gravada deixa de funcionar após reiniciar o servidor.
func (h *TransactionHandler) AttachReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'file'.")
		return
	}
	if fileHeader.Size > receipts.MaxFileSize {
		httperr.BadRequest(c, "file_too_large", "Arquivo muito grande. Máximo 5MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}

	url, err := h.receipts.Add(fileHeader.Filename, data)
	if err != nil {
		writeBusinessError(c, err, "failed_to_attach_receipt", "Erro ao anexar comprovante.")
		return
	}

	var updated *models.Transaction

	mErr := h.transactions.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items[i].ReceiptURL = url
			items[i].UpdatedAt = timezone.Now()
			updated = &items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness("transaction_not_found")
	})

	if mErr != nil {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "receipt_attached",
		Entity:    "transaction",
		EntityID:  &id,
	})

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE (duas fases)
// ======================================================

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var target *models.Transaction
	for _, tx := range h.transactions.All() {
		if tx.ID == id {
			target = &tx
			break
		}
	}
	if target == nil {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return
	}

	if !deleteConfirmed(c, target) {
		return
	}

	_ = h.transactions.Mutate(func(items []models.Transaction) ([]models.Transaction, error) {
		kept := items[:0]
		for _, tx := range items {
			if tx.ID != id {
				kept = append(kept, tx)
			}
		}
		return kept, nil
	})

	h.audit.Dispatch(audit.Event{
		UserEmail: actorEmail(c),
		Action:    "transaction_deleted",
		Entity:    "transaction",
		EntityID:  &id,
	})

	httpresp.OK(c, gin.H{"status": "deleted"})
}
