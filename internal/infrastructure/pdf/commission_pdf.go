// Package pdf genera el reporte de comisiones en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período    │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Tipo | Ventas | % | Comisión | Sistema | N │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/netline-api/internal/application/reports"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Exporter ──────────────────────────────────────────────────────────────────

var _ reports.Exporter = (*CommissionPDFExporter)(nil)

// CommissionPDFExporter implementa reports.Exporter usando Maroto v2.
type CommissionPDFExporter struct {
	author string
}

// NewCommissionPDFExporter construye el exportador; author va en los metadatos del PDF.
func NewCommissionPDFExporter(author string) *CommissionPDFExporter {
	return &CommissionPDFExporter{author: author}
}

func (CommissionPDFExporter) Format() string      { return "pdf" }
func (CommissionPDFExporter) Extension() string   { return "pdf" }
func (CommissionPDFExporter) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *CommissionPDFExporter) Render(doc reports.CommissionDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(doc.Reports) {
		m.AddRows(r)
	}
	if len(doc.Reports) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el período", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Totals))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y período (izq), fecha de generación (der).
func headerRow(doc reports.CommissionDocument) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.PeriodLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+doc.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Name", 3, align.Left),
		h("Type", 2, align.Left),
		h("Total Sales", 2, align.Right),
		h("%", 1, align.Center),
		h("Commission", 2, align.Right),
		h("System", 1, align.Right),
		h("Sales", 1, align.Center),
	)
}

// tableDetailRows: una fila por vendedor.
func tableDetailRows(items []sales.VendorCommissionReport) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, r := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				r.VendorName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				string(r.Role),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				format.Fixed2(r.TotalSales),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				format.Percent(r.CommissionPercentage),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				format.Fixed2(r.CommissionAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				format.Fixed2(r.SystemAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				strconv.Itoa(r.SalesCount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(t sales.CommissionTotals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Total sales:"),
			label("Commissions:"),
			label("System:"),
			label("Sales count:"),
		),
		col.New(3).Add(
			value(format.Fixed2(t.TotalSales)),
			value(format.Fixed2(t.TotalCommission)),
			value(format.Fixed2(t.TotalSystem)),
			value(strconv.Itoa(t.TotalCount)),
		),
	)
}
