package models

import "time"

type Appointment struct {
	ID int64 `json:"id"`

	Client       string `json:"client"`
	Service      string `json:"service"`
	Professional string `json:"professional"`

	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration_min"`

	Value  float64 `json:"value"`
	Status string  `json:"status"`

	Phone string `json:"phone"`
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
