package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/netline-api/internal/application/reports"
	"github.com/jhoicas/netline-api/pkg/format"
)

var _ reports.Exporter = (*XLSXExporter)(nil)

const commissionSheet = "Commissions"

// XLSXExporter reporte de comisiones como libro Excel con una hoja.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (XLSXExporter) Format() string    { return "xlsx" }
func (XLSXExporter) Extension() string { return "xlsx" }
func (XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render arma la hoja: título y período, cabecera en negrita, filas y totales.
// Los montos se escriben como números redondeados a 2 decimales.
func (XLSXExporter) Render(doc reports.CommissionDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", commissionSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	set := func(cell string, v any) {
		if err == nil {
			err = f.SetCellValue(commissionSheet, cell, v)
		}
	}

	set("A1", doc.Title)
	set("A2", doc.PeriodLabel)
	for i, h := range commissionHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		set(cell, h)
	}

	rowIdx := 5
	for _, r := range doc.Reports {
		values := []any{
			r.VendorName,
			string(r.Role),
			format.Round2(r.TotalSales).InexactFloat64(),
			format.Percent(r.CommissionPercentage),
			format.Round2(r.CommissionAmount).InexactFloat64(),
			format.Round2(r.SystemAmount).InexactFloat64(),
			r.SalesCount,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			set(cell, v)
		}
		rowIdx++
	}

	totalRow := rowIdx + 1
	totals := map[int]any{
		1: "TOTAL",
		3: format.Round2(doc.Totals.TotalSales).InexactFloat64(),
		5: format.Round2(doc.Totals.TotalCommission).InexactFloat64(),
		6: format.Round2(doc.Totals.TotalSystem).InexactFloat64(),
		7: doc.Totals.TotalCount,
	}
	for colIdx, v := range totals {
		cell, _ := excelize.CoordinatesToCellName(colIdx, totalRow)
		set(cell, v)
	}
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", err)
	}

	lastData := fmt.Sprintf("F%d", totalRow)
	styles := []struct {
		from, to string
		id       int
	}{
		{"A1", "A1", bold},
		{"A4", "G4", bold},
		{fmt.Sprintf("A%d", totalRow), fmt.Sprintf("G%d", totalRow), bold},
		{"C5", lastData, money},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(commissionSheet, s.from, s.to, s.id); err != nil {
			return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
		}
	}
	if err := f.SetColWidth(commissionSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
