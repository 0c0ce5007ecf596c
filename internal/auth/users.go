package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
)

// Usuários de demonstração do painel. Sistema single-tenant sem cadastro:
// a lista é fixa e as senhas são conhecidas (admin123 etc.).
type demoUser struct {
	Email        string
	Name         string
	Role         string
	PasswordHash []byte
}

var demoUsers = seedDemoUsers()

func seedDemoUsers() []demoUser {
	plain := []struct {
		email, password, name, role string
	}{
		{"admin@beleza.com", "admin123", "Administrador", models.RoleAdmin},
		{"recepcao@beleza.com", "recepcao123", "Recepcionista", models.RoleReception},
		{"dra.ana@beleza.com", "ana123", "Dra. Ana Silva", models.RoleProfessional},
		{"cliente@email.com", "cliente123", "Maria Silva", models.RoleClient},
	}

	users := make([]demoUser, 0, len(plain))
	for _, p := range plain {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		users = append(users, demoUser{
			Email:        p.email,
			Name:         p.name,
			Role:         p.role,
			PasswordHash: hash,
		})
	}
	return users
}

// Authenticate verifica o par email/senha contra a tabela fixa. Falha
// sempre com o mesmo código genérico, sem distinguir usuário inexistente
// de senha errada.
func Authenticate(email, password string) (*models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	for _, u := range demoUsers {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
			break
		}
		return &models.UserProfile{
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		}, nil
	}

	return nil, httperr.ErrBusiness("invalid_credentials")
}
