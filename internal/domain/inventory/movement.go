package inventory

import (
	"time"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
)

// ===============================
// Stock Movement
// ===============================

type MovementType string

const (
	MovementEntry MovementType = "entry"
	MovementExit  MovementType = "exit"
)

type Movement struct {
	Type     MovementType
	Quantity int
	Reason   string
	Notes    string
}

// Apply valida e aplica a movimentação sobre o produto. Nada é alterado
// quando a validação falha.
func Apply(p *models.Product, mv Movement, now time.Time) error {
	if mv.Quantity <= 0 {
		return httperr.ErrBusiness("invalid_quantity")
	}

	switch mv.Type {
	case MovementEntry:
		p.Quantity += mv.Quantity

	case MovementExit:
		if mv.Quantity > p.Quantity {
			return httperr.ErrBusiness("insufficient_stock")
		}
		p.Quantity -= mv.Quantity

	default:
		return httperr.ErrBusiness("invalid_movement_type")
	}

	p.Status = string(DeriveStatus(p.Quantity, p.MinQuantity))
	p.LastMovement = now.Format("2006-01-02")
	p.UpdatedAt = now
	return nil
}
