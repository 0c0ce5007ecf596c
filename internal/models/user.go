package models

// Papéis de acesso do painel. Os valores são gravados direto na sessão e
// no token, então não renomear sem invalidar logins.
const (
	RoleAdmin        = "admin"
	RoleReception    = "recepcao"
	RoleProfessional = "profissional"
	RoleClient       = "cliente"
)

type UserProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the persisted login state. It is restored as-is on startup;
// the configured session timeout is stored but never enforced.
type Session struct {
	Authenticated bool        `json:"authenticated"`
	User          UserProfile `json:"user"`
}
