package inventory

import (
	"github.com/belezaclinic/clinic-manager/internal/audit"
	domain "github.com/belezaclinic/clinic-manager/internal/domain/inventory"
	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type MoveStockInput struct {
	ProductID int64

	Type     string // entry | exit
	Quantity int
	Reason   string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type MoveStock struct {
	products *store.Collection[models.Product]
	audit    *audit.Dispatcher
}

func NewMoveStock(
	products *store.Collection[models.Product],
	audit *audit.Dispatcher,
) *MoveStock {
	return &MoveStock{
		products: products,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *MoveStock) Execute(actor string, in MoveStockInput) (*models.Product, error) {

	var moved *models.Product

	err := uc.products.Mutate(func(items []models.Product) ([]models.Product, error) {
		for i := range items {
			if items[i].ID != in.ProductID {
				continue
			}

			mv := domain.Movement{
				Type:     domain.MovementType(in.Type),
				Quantity: in.Quantity,
				Reason:   in.Reason,
				Notes:    in.Notes,
			}

			if err := domain.Apply(&items[i], mv, timezone.Now()); err != nil {
				return nil, err
			}

			moved = &items[i]
			return items, nil
		}

		return nil, httperr.ErrBusiness("product_not_found")
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserEmail: actor,
		Action:    "stock_moved",
		Entity:    "product",
		EntityID:  &moved.ID,
		Metadata: map[string]any{
			"type":     in.Type,
			"quantity": in.Quantity,
			"reason":   in.Reason,
		},
	})

	return moved, nil
}
