package models

// Settings espelha a aba de configurações do painel. Os campos de
// segurança (dois fatores, tempo de sessão) são apenas armazenados: nenhum
// deles é aplicado pelo sistema.
type Settings struct {
	// Perfil
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Bio     string `json:"bio"`

	// Notificações
	EmailNotifications    bool `json:"email_notifications"`
	SMSNotifications      bool `json:"sms_notifications"`
	WhatsAppNotifications bool `json:"whatsapp_notifications"`
	AppointmentReminders  bool `json:"appointment_reminders"`
	StockAlerts           bool `json:"stock_alerts"`

	// Sistema
	Theme           string `json:"theme"`
	Language        string `json:"language"`
	Timezone        string `json:"timezone"`
	DefaultCurrency string `json:"default_currency"`
	DateFormat      string `json:"date_format"`

	// Segurança (placeholders, não aplicados)
	TwoFactorAuth     bool `json:"two_factor_auth"`
	SessionTimeoutMin int  `json:"session_timeout_min"`
	AutoBackup        bool `json:"auto_backup"`

	// Empresa
	CompanyName    string `json:"company_name"`
	CNPJ           string `json:"cnpj"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`
	BusinessHours  string `json:"business_hours"`
}

func DefaultSettings() Settings {
	return Settings{
		Name:    "Dra. Nathália",
		Email:   "dra.nathalia@email.com",
		Phone:   "(11) 99999-9999",
		Address: "Rua das Flores, 123",
		Bio:     "Profissional dedicada ao bem-estar dos pacientes",

		EmailNotifications:    true,
		SMSNotifications:      false,
		WhatsAppNotifications: true,
		AppointmentReminders:  true,
		StockAlerts:           true,

		Theme:           "light",
		Language:        "pt-br",
		Timezone:        "America/Sao_Paulo",
		DefaultCurrency: "BRL",
		DateFormat:      "DD/MM/YYYY",

		TwoFactorAuth:     false,
		SessionTimeoutMin: 60,
		AutoBackup:        true,

		CompanyName:    "Clínica Dra. Nathália",
		CNPJ:           "12.345.678/0001-90",
		CompanyPhone:   "(11) 3333-4444",
		CompanyAddress: "Av. Principal, 456",
		BusinessHours:  "08:00 - 18:00",
	}
}
