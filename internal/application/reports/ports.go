package reports

import (
	"time"

	"github.com/jhoicas/netline-api/internal/domain/sales"
)

// CommissionDocument contenido de un reporte de comisiones listo para exportar.
type CommissionDocument struct {
	Title       string
	PeriodLabel string
	Reports     []sales.VendorCommissionReport
	Totals      sales.CommissionTotals
	GeneratedAt time.Time
}

// Exporter puerto de salida: serializa un reporte en un formato de archivo.
// Los montos se redondean a 2 decimales solo en el archivo generado.
type Exporter interface {
	Format() string    // csv | xlsx | pdf
	Extension() string // sin punto
	ContentType() string
	Render(doc CommissionDocument) ([]byte, error)
}
