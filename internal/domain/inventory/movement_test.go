package inventory

import (
	"testing"
	"time"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
)

func testProduct(quantity, minQuantity int) *models.Product {
	return &models.Product{
		ID:          1,
		Name:        "Shampoo Profissional",
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Status:      string(DeriveStatus(quantity, minQuantity)),
	}
}

func TestApply_Entry(t *testing.T) {
	p := testProduct(3, 5)
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	err := Apply(p, Movement{Type: MovementEntry, Quantity: 10}, now)
	if err != nil {
		t.Fatalf("entry failed: %v", err)
	}
	if p.Quantity != 13 {
		t.Errorf("expected quantity 13, got %d", p.Quantity)
	}
	if p.Status != string(StatusNormal) {
		t.Errorf("expected status normal, got %q", p.Status)
	}
	if p.LastMovement != "2026-03-10" {
		t.Errorf("expected last movement 2026-03-10, got %q", p.LastMovement)
	}
}

func TestApply_ExitToZero(t *testing.T) {
	p := testProduct(4, 5)

	err := Apply(p, Movement{Type: MovementExit, Quantity: 4}, time.Now())
	if err != nil {
		t.Fatalf("exit failed: %v", err)
	}
	if p.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", p.Quantity)
	}
	if p.Status != string(StatusZeroed) {
		t.Errorf("expected status zeroed, got %q", p.Status)
	}
}

func TestApply_ExitBeyondStock(t *testing.T) {
	p := testProduct(2, 5)

	err := Apply(p, Movement{Type: MovementExit, Quantity: 3}, time.Now())
	if err == nil {
		t.Fatal("expected insufficient_stock error")
	}
	if httperr.BusinessCode(err) != "insufficient_stock" {
		t.Errorf("expected insufficient_stock, got %v", err)
	}
	if p.Quantity != 2 {
		t.Errorf("expected product untouched, got quantity %d", p.Quantity)
	}
}

func TestApply_InvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		p := testProduct(5, 2)
		err := Apply(p, Movement{Type: MovementEntry, Quantity: qty}, time.Now())
		if httperr.BusinessCode(err) != "invalid_quantity" {
			t.Errorf("quantity %d: expected invalid_quantity, got %v", qty, err)
		}
	}
}

func TestApply_InvalidType(t *testing.T) {
	p := testProduct(5, 2)
	err := Apply(p, Movement{Type: "transfer", Quantity: 1}, time.Now())
	if httperr.BusinessCode(err) != "invalid_movement_type" {
		t.Errorf("expected invalid_movement_type, got %v", err)
	}
}
