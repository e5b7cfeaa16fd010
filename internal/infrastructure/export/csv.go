// Package export implementa los exportadores de reportes (CSV y XLSX).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/netline-api/internal/application/reports"
	"github.com/jhoicas/netline-api/pkg/format"
)

var _ reports.Exporter = (*CSVExporter)(nil)

// commissionHeader columnas comunes a CSV y XLSX.
var commissionHeader = []string{
	"Name", "Type", "Total Sales", "Commission %", "Commission Amount", "System Amount", "Sales Count",
}

// CSVExporter reporte de comisiones en CSV: cabecera, una fila por vendedor,
// una fila vacía y la fila TOTAL.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (CSVExporter) Format() string      { return "csv" }
func (CSVExporter) Extension() string   { return "csv" }
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Render serializa el reporte. Los campos con comas o comillas se escapan según RFC 4180.
func (CSVExporter) Render(doc reports.CommissionDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{commissionHeader}
	for _, r := range doc.Reports {
		records = append(records, []string{
			r.VendorName,
			string(r.Role),
			format.Fixed2(r.TotalSales),
			format.Percent(r.CommissionPercentage),
			format.Fixed2(r.CommissionAmount),
			format.Fixed2(r.SystemAmount),
			strconv.Itoa(r.SalesCount),
		})
	}
	records = append(records,
		make([]string, len(commissionHeader)),
		[]string{
			"TOTAL", "",
			format.Fixed2(doc.Totals.TotalSales), "",
			format.Fixed2(doc.Totals.TotalCommission),
			format.Fixed2(doc.Totals.TotalSystem),
			strconv.Itoa(doc.Totals.TotalCount),
		},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
