package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
)

// RequireRoles libera a rota apenas para os papéis informados. Papel fora
// da lista recebe acesso negado, não erro.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)

		if !allowed[role] {
			httperr.Forbidden(c, "access_denied",
				"Você não tem permissão para acessar esta área do sistema.")
			c.Abort()
			return
		}

		c.Next()
	}
}
