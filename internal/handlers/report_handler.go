package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/belezaclinic/clinic-manager/internal/httperr"
	"github.com/belezaclinic/clinic-manager/internal/models"
	"github.com/belezaclinic/clinic-manager/internal/report"
	"github.com/belezaclinic/clinic-manager/internal/store"
	"github.com/belezaclinic/clinic-manager/internal/timezone"
)

type ReportHandler struct {
	appointments *store.Collection[models.Appointment]
	clients      *store.Collection[models.Client]
	products     *store.Collection[models.Product]
	transactions *store.Collection[models.Transaction]
}

func NewReportHandler(
	appointments *store.Collection[models.Appointment],
	clients *store.Collection[models.Client],
	products *store.Collection[models.Product],
	transactions *store.Collection[models.Transaction],
) *ReportHandler {
	return &ReportHandler{
		appointments: appointments,
		clients:      clients,
		products:     products,
		transactions: transactions,
	}
}

// Generate produz o PDF do relatório pedido: resumo fixo mais os primeiros
// registros da coleção. Só formatação, nenhum estado é alterado.
func (h *ReportHandler) Generate(c *gin.Context) {
	reportType := c.Param("type")

	var doc report.Document
	switch reportType {
	case "financeiro":
		doc = h.financialReport()
	case "clientes":
		doc = h.clientsReport()
	case "estoque":
		doc = h.inventoryReport()
	case "agendamentos":
		doc = h.appointmentsReport()
	default:
		httperr.BadRequest(c, "invalid_report_type", "Tipo de relatório inválido.")
		return
	}

	doc.GeneratedAt = timezone.Now()

	data, err := report.Render(doc)
	if err != nil {
		httperr.Internal(c, "report_failed", "Erro ao gerar o relatório.")
		return
	}

	filename := fmt.Sprintf("relatorio-%s-%s.pdf", reportType, doc.GeneratedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ReportHandler) financialReport() report.Document {
	items := h.transactions.All()

	var revenue, expenses float64
	for _, tx := range items {
		switch tx.Type {
		case "revenue":
			revenue += tx.Amount
		case "expense":
			expenses += tx.Amount
		}
	}

	rows := make([][]string, 0, len(items))
	for _, tx := range items {
		rows = append(rows, []string{
			tx.Date,
			tx.Type,
			tx.Description,
			fmt.Sprintf("R$ %.2f", tx.Amount),
			tx.Status,
		})
	}

	return report.Document{
		Title: "Relatório Financeiro",
		Summary: []string{
			fmt.Sprintf("Total de lançamentos: %d", len(items)),
			fmt.Sprintf("Receitas: R$ %.2f", revenue),
			fmt.Sprintf("Despesas: R$ %.2f", expenses),
			fmt.Sprintf("Saldo: R$ %.2f", revenue-expenses),
		},
		Columns: []string{"Data", "Tipo", "Descrição", "Valor", "Status"},
		Rows:    rows,
	}
}

func (h *ReportHandler) clientsReport() report.Document {
	items := h.clients.All()

	active := 0
	for _, cl := range items {
		if cl.Status == models.ClientStatusActive {
			active++
		}
	}

	rows := make([][]string, 0, len(items))
	for _, cl := range items {
		rows = append(rows, []string{
			cl.Name,
			cl.Phone,
			cl.Category,
			cl.Status,
			fmt.Sprintf("R$ %.2f", cl.TotalSpent),
		})
	}

	return report.Document{
		Title: "Relatório de Clientes",
		Summary: []string{
			fmt.Sprintf("Total de clientes: %d", len(items)),
			fmt.Sprintf("Clientes ativos: %d", active),
		},
		Columns: []string{"Nome", "Telefone", "Categoria", "Status", "Total gasto"},
		Rows:    rows,
	}
}

func (h *ReportHandler) inventoryReport() report.Document {
	items := h.products.All()

	low := 0
	for _, p := range items {
		if p.Status != "normal" {
			low++
		}
	}

	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.Name,
			p.SKU,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinQuantity),
			p.Status,
		})
	}

	return report.Document{
		Title: "Relatório de Estoque",
		Summary: []string{
			fmt.Sprintf("Total de produtos: %d", len(items)),
			fmt.Sprintf("Produtos abaixo do mínimo: %d", low),
		},
		Columns: []string{"Produto", "SKU", "Qtde", "Mínimo", "Status"},
		Rows:    rows,
	}
}

func (h *ReportHandler) appointmentsReport() report.Document {
	items := h.appointments.All()

	confirmed := 0
	for _, ap := range items {
		if ap.Status == "confirmed" {
			confirmed++
		}
	}

	rows := make([][]string, 0, len(items))
	for _, ap := range items {
		rows = append(rows, []string{
			ap.Date,
			ap.Time,
			ap.Client,
			ap.Service,
			ap.Status,
		})
	}

	return report.Document{
		Title: "Relatório de Agendamentos",
		Summary: []string{
			fmt.Sprintf("Total de agendamentos: %d", len(items)),
			fmt.Sprintf("Confirmados: %d", confirmed),
		},
		Columns: []string{"Data", "Hora", "Cliente", "Serviço", "Status"},
		Rows:    rows,
	}
}
