package auth

import (
	"testing"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
)

func TestAuthenticate(t *testing.T) {
	profile, err := Authenticate("admin@beleza.com", "admin123")
	if err != nil {
		t.Fatalf("expected login to succeed: %v", err)
	}
	if profile.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", profile.Role)
	}
	if profile.Name != "Administrador" {
		t.Errorf("expected name Administrador, got %q", profile.Name)
	}
}

func TestAuthenticate_NormalizesEmail(t *testing.T) {
	profile, err := Authenticate("  Admin@Beleza.com ", "admin123")
	if err != nil {
		t.Fatalf("expected normalized email to authenticate: %v", err)
	}
	if profile.Email != "admin@beleza.com" {
		t.Errorf("expected lowercased email back, got %q", profile.Email)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@beleza.com", "errada"},
		{"unknown user", "ninguem@beleza.com", "admin123"},
		{"swapped credentials", "recepcao@beleza.com", "admin123"},
		{"empty password", "admin@beleza.com", ""},
	}

	for _, tc := range cases {
		_, err := Authenticate(tc.email, tc.password)
		if httperr.BusinessCode(err) != "invalid_credentials" {
			t.Errorf("%s: expected invalid_credentials, got %v", tc.name, err)
		}
	}
}
