// Package format reúne el formateo de montos y magnitudes para presentación y exportes.
// Internamente los montos se manejan en float64 con precisión completa; el redondeo
// ocurre solo aquí.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Round2 redondea a 2 decimales (half-up) para exportes.
func Round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Fixed2 texto con exactamente 2 decimales, sin separador de miles ("1234.50").
func Fixed2(v float64) string {
	return Round2(v).StringFixed(2)
}

// Percent porcentaje sin decimales superfluos ("10%", "12.5%").
func Percent(v float64) string {
	return decimal.NewFromFloat(v).String() + "%"
}

// HTG monto en gourdes redondeado a la unidad con separador de miles ("1,235 HTG").
func HTG(v float64) string {
	whole := decimal.NewFromFloat(v).Round(0).IntPart()
	return printer.Sprintf("%d HTG", whole)
}

// Count entero con separador de miles.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// BitRate velocidad en bps, Kbps o Mbps con 2 decimales.
func BitRate(bps float64) string {
	switch {
	case math.IsNaN(bps) || bps <= 0:
		return "0.00 bps"
	case bps > 1_000_000:
		return fmt.Sprintf("%.2f Mbps", bps/1_000_000)
	case bps > 1_000:
		return fmt.Sprintf("%.2f Kbps", bps/1_000)
	default:
		return fmt.Sprintf("%.2f bps", bps)
	}
}
