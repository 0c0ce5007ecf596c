package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/middleware"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

func actorEmail(c *gin.Context) string {
	email, _ := c.MustGet(middleware.ContextUserEmail).(string)
	return email
}

// containsFold é o filtro de substring dos módulos de listagem:
// case-insensitive, sempre sobre campos de texto.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func today() string {
	return timezone.Now().Format("2006-01-02")
}

// deleteConfirmed implementa a exclusão em duas fases: a primeira chamada
// devolve o pedido de confirmação com o registro, a segunda (confirm=true)
// efetiva a exclusão.
func deleteConfirmed(c *gin.Context, record any) bool {
	if c.Query("confirm") == "true" {
		return true
	}

	c.JSON(409, gin.H{
		"error_code": "confirmation_required",
		"message":    "Confirme a exclusão repetindo a chamada com confirm=true.",
		"record":     record,
	})
	return false
}

// writeBusinessError converte um erro de negócio na resposta HTTP padrão.
func writeBusinessError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.BadRequest(c, code, businessMessage(code))
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMsg)
}

func businessMessage(code string) string {
	switch code {
	case "invalid_credentials":
		return "Email ou senha incorretos."
	case "invalid_state":
		return "O registro não permite essa transição de status."
	case "insufficient_stock":
		return "Quantidade de saída não pode ser maior que o estoque atual."
	case "invalid_quantity":
		return "A quantidade deve ser maior que zero."
	case "invalid_movement_type":
		return "Tipo de movimentação inválido."
	case "product_not_found":
		return "Produto não encontrado."
	case "file_too_large":
		return "Arquivo muito grande. Máximo 5MB."
	case "invalid_file_type":
		return "Formato não suportado. Use PDF, JPG ou PNG."
	case "invalid_backup":
		return "Arquivo inválido ou corrompido."
	default:
		return "Operação inválida."
	}
}
