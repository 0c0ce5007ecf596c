package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/receipts"
)

type ReceiptHandler struct {
	receipts *receipts.Registry
}

func NewReceiptHandler(r *receipts.Registry) *ReceiptHandler {
	return &ReceiptHandler{receipts: r}
}

// Serve entrega o comprovante referenciado pela URL transitória. Depois de
// um restart o registro está vazio e toda URL antiga responde 404.
func (h *ReceiptHandler) Serve(c *gin.Context) {
	f, ok := h.receipts.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "receipt_not_found", "Comprovante não encontrado.")
		return
	}

	c.Data(http.StatusOK, f.ContentType, f.Data)
}
