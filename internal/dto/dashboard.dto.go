package dto

type DashboardSummaryDTO struct {
	AppointmentsToday   int     `json:"appointments_today"`
	PendingAppointments int     `json:"pending_appointments"`
	ActiveClients       int     `json:"active_clients"`
	LowStockProducts    int     `json:"low_stock_products"`
	MonthRevenue        float64 `json:"month_revenue"`
	MonthExpenses       float64 `json:"month_expenses"`
	PendingTransactions int     `json:"pending_transactions"`
}
