package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/middleware"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
)

type MeHandler struct {
	store *store.Store
}

func NewMeHandler(s *store.Store) *MeHandler {
	return &MeHandler{store: s}
}

// GetMe devolve a sessão persistida. Quando o slot não existe (ex.: limpo
// por um restore), reconstrói a partir das claims do token — o timeout de
// sessão configurado não é verificado em nenhum dos casos.
func (h *MeHandler) GetMe(c *gin.Context) {
	var session models.Session
	if h.store.Read(store.SlotSession, &session) && session.Authenticated {
		httpresp.OK(c, session)
		return
	}

	email, _ := c.MustGet(middleware.ContextUserEmail).(string)
	name, _ := c.MustGet(middleware.ContextUserName).(string)
	role, _ := c.MustGet(middleware.ContextUserRole).(string)

	httpresp.OK(c, models.Session{
		Authenticated: true,
		User: models.UserProfile{
			Email: email,
			Name:  name,
			Role:  role,
		},
	})
}
