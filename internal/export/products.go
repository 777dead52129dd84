package export

import (
	"fmt"
	"io"
	"strings"

	"go-firestore-catalog/internal/model"

	"github.com/tealeg/xlsx"
)

const (
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ProductsSheet   = "Products"
	timestampLayout = "2006-01-02 15:04:05"
)

var ProductHeaders = []string{
	"ID", "Name", "Category", "Description", "Specs", "Image",
	"Featured", "Reviews", "AverageRating", "CreatedAt", "UpdatedAt",
}

// WriteProducts writes a workbook with a header row and one row per product.
// Review columns come from stats; products without reviews get zeros.
func WriteProducts(w io.Writer, products []model.Product, stats map[string]model.ReviewStats) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(ProductsSheet)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range ProductHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		s := stats[p.Id]
		row := sheet.AddRow()

		row.AddCell().SetString(p.Id)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(strings.Join(p.Specs, "\n"))
		row.AddCell().SetString(p.Image)
		row.AddCell().SetBool(p.Featured)
		row.AddCell().SetInt(s.Count)
		row.AddCell().SetFloat(s.AverageRating)
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timestampLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timestampLayout))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
