package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"costindex/go_backend/internal/domain/basket"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(items []basket.Item) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CostIndex Shopping List", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "CostIndex Shopping List")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Product")
	pdf.Cell(35, 7, "Price")
	pdf.Cell(55, 7, "Store")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		store := it.Store
		if store == "" {
			store = "Unknown store"
		}
		pdf.Cell(100, 6, trim(it.ProductName, 55))
		pdf.Cell(35, 6, trim(it.Price, 18))
		pdf.Cell(55, 6, trim(store, 30))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Items: %d", len(items)))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
