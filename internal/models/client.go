package models

import "time"

// Client status and category values. Clients are referenced from
// appointments and transactions by name only, never by id.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusBlocked  = "blocked"
)

const (
	ClientCategoryNew     = "New"
	ClientCategoryRegular = "Regular"
	ClientCategoryVIP     = "VIP"
	ClientCategoryPremium = "Premium"
)

type Client struct {
	ID int64 `json:"id"`

	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`

	Status   string `json:"status"`
	Category string `json:"category"`

	TotalSpent float64 `json:"total_spent"`
	LastVisit  string  `json:"last_visit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidClientStatus(s string) bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusBlocked:
		return true
	}
	return false
}

func ValidClientCategory(c string) bool {
	switch c {
	case ClientCategoryNew, ClientCategoryRegular, ClientCategoryVIP, ClientCategoryPremium:
		return true
	}
	return false
}
