package models

import "time"

type Transaction struct {
	ID int64 `json:"id"`

	Type        string `json:"type"`
	Description string `json:"description"`

	// Contraparte em texto livre: cliente ou fornecedor.
	Client string `json:"client"`

	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`

	// Transient object URL of the attached receipt. Lost on restart, kept
	// that way on purpose.
	ReceiptURL string `json:"receipt_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
