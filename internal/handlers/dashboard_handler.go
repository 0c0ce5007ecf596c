package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domainAp "github.com/belezaclinic/clinic-manager/internal/domain/appointment"
	domainInv "github.com/belezaclinic/clinic-manager/internal/domain/inventory"
	domainTx "github.com/belezaclinic/clinic-manager/internal/domain/transaction"
	"github.com/belezaclinic/clinic-manager/internal/dto"
	"github.com/belezaclinic/clinic-manager/internal/httpresp"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

type DashboardHandler struct {
	appointments *store.Collection[models.Appointment]
	clients      *store.Collection[models.Client]
	products     *store.Collection[models.Product]
	transactions *store.Collection[models.Transaction]
}

func NewDashboardHandler(
	appointments *store.Collection[models.Appointment],
	clients *store.Collection[models.Client],
	products *store.Collection[models.Product],
	transactions *store.Collection[models.Transaction],
) *DashboardHandler {
	return &DashboardHandler{
		appointments: appointments,
		clients:      clients,
		products:     products,
		transactions: transactions,
	}
}

// Summary agrega os números do painel inicial direto das coleções, sem
// nada pré-computado.
func (h *DashboardHandler) Summary(c *gin.Context) {
	var out dto.DashboardSummaryDTO

	todayStr := today()
	monthPrefix := timezone.Now().Format("2006-01")

	for _, ap := range h.appointments.All() {
		if ap.Date == todayStr {
			out.AppointmentsToday++
		}
		if ap.Status == string(domainAp.StatusPending) {
			out.PendingAppointments++
		}
	}

	for _, cl := range h.clients.All() {
		if cl.Status == models.ClientStatusActive {
			out.ActiveClients++
		}
	}

	for _, p := range h.products.All() {
		if p.Status == string(domainInv.StatusLow) || p.Status == string(domainInv.StatusZeroed) {
			out.LowStockProducts++
		}
	}

	for _, tx := range h.transactions.All() {
		if tx.Status == string(domainTx.StatusPending) {
			out.PendingTransactions++
		}
		if !strings.HasPrefix(tx.Date, monthPrefix) || tx.Status != string(domainTx.StatusPaid) {
			continue
		}
		switch tx.Type {
		case string(domainTx.TypeRevenue):
			out.MonthRevenue += tx.Amount
		case string(domainTx.TypeExpense):
			out.MonthExpenses += tx.Amount
		}
	}

	httpresp.OK(c, out)
}
