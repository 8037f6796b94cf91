package infra

import (
	"bytes"
	"fmt"

	"biocristal/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// RenderFacturaPDF renders a printable invoice document.
func RenderFacturaPDF(f *model.Factura) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "BioCristal")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Factura %s", f.Codigo))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Fecha: %s", f.Fecha.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Tipo de pago: %s", f.TipoPago))
	pdf.Ln(6)
	if f.ClienteDocumento != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Cliente: %s", *f.ClienteDocumento))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Line item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 8, "Producto", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Cantidad", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Precio unit.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range f.Items {
		subtotal := item.PrecioUnitario.Mul(decimalFromInt(item.Cantidad))
		pdf.CellFormat(60, 8, item.ProductoCodigo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, item.PrecioUnitario.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, f.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render factura pdf: %w", err)
	}
	return buf.Bytes(), nil
}
