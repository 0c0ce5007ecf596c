package models

import "time"

const (
	CampaignChannelEmail    = "email"
	CampaignChannelWhatsApp = "whatsapp"
	CampaignChannelSMS      = "sms"
)

const (
	CampaignStatusActive   = "active"
	CampaignStatusPaused   = "paused"
	CampaignStatusFinished = "finished"
)

type Campaign struct {
	ID int64 `json:"id"`

	Name    string `json:"name"`
	Channel string `json:"channel"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Date    string `json:"date"`

	Sent    int `json:"sent"`
	Opened  int `json:"opened"`
	Clicked int `json:"clicked"`

	CreatedAt time.Time `json:"created_at"`
}

func ValidCampaignChannel(ch string) bool {
	switch ch {
	case CampaignChannelEmail, CampaignChannelWhatsApp, CampaignChannelSMS:
		return true
	}
	return false
}
