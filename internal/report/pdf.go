package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// MaxRecords limita quantos registros entram no PDF. O relatório é um
// resumo formatado, não uma exportação de dados.
const MaxRecords = 20

type Document struct {
	Title       string
	GeneratedAt time.Time

	// Linhas do resumo textual fixo, uma por linha.
	Summary []string

	Columns []string
	Rows    [][]string
}

// Render produz o PDF do relatório: cabeçalho, resumo e a tabela com os
// primeiros registros.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Gerado em %s", doc.GeneratedAt.Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
	for _, line := range doc.Summary {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	if len(doc.Columns) > 0 {
		colWidth := 190.0 / float64(len(doc.Columns))

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range doc.Columns {
			pdf.CellFormat(colWidth, 8, tr(col), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		rows := doc.Rows
		if len(rows) > MaxRecords {
			rows = rows[:MaxRecords]
		}
		for _, row := range rows {
			for i, cell := range row {
				if i >= len(doc.Columns) {
					break
				}
				pdf.CellFormat(colWidth, 7, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
