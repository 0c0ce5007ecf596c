package models

import "time"

type Product struct {
	ID int64 `json:"id"`

	Name     string `json:"name"`
	Category string `json:"category"`
	SKU      string `json:"sku"`

	Quantity    int `json:"quantity"`
	MinQuantity int `json:"min_quantity"`

	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`

	Supplier string `json:"supplier"`
	Batch    string `json:"batch"`
	Expiry   string `json:"expiry"`

	// Derivado de Quantity vs MinQuantity a cada gravação, nunca editado
	// diretamente.
	Status string `json:"status"`

	LastMovement string `json:"last_movement"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
