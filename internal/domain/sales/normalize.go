// Package sales es el motor de agregación del panel NETLINE: normaliza los registros
// crudos del store, filtra por período, agrupa por plan/vendedor/cliente/día/mes,
// reparte comisiones y arma rankings.
//
// Todas las funciones son puras: no hacen I/O, no guardan estado entre llamadas y no
// mutan sus entradas, por lo que pueden ejecutarse en cualquier orden o en paralelo.
package sales

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// NotAvailable marcador visible para fechas u otros campos de presentación inválidos.
const NotAvailable = "N/A"

// TargetLocation zona horaria de negocio: UTC-5 fija, sin horario de verano.
var TargetLocation = time.FixedZone("America/Port-au-Prince", -5*60*60)

// Layouts aceptados para fechas en texto. RFC3339 acepta fracciones de segundo al parsear.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp interpreta una fecha del store: texto ISO-8601, envoltorio {"$date": ...}
// (con texto o {"$numberLong": ms}), time.Time o milisegundos epoch.
// Nunca falla con error: devuelve ok=false cuando la fecha no es utilizable.
func ParseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case string:
		return parseTimeString(t)
	case map[string]any:
		if inner, ok := t["$date"]; ok {
			return ParseTimestamp(inner)
		}
		if ms, ok := t["$numberLong"].(string); ok {
			n, err := strconv.ParseInt(ms, 10, 64)
			if err != nil {
				return time.Time{}, false
			}
			return time.UnixMilli(n).UTC(), true
		}
		return time.Time{}, false
	case entity.Document:
		return ParseTimestamp(map[string]any(t))
	default:
		if ms, ok := toFloat(v); ok && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
			return time.UnixMilli(int64(ms)).UTC(), true
		}
		return time.Time{}, false
	}
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "undefined", "null":
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toFloat convierte los tipos numéricos que puede entregar un decodificador JSON/BSON.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case interface{ Float64() (float64, error) }: // json.Number
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// stringify devuelve el valor como texto para campos que el store guarda a veces como número.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case map[string]any:
		if oid, ok := s["$oid"].(string); ok {
			return oid
		}
		return ""
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// NormalizeSale convierte un documento de "histories" en un SaleRecord canónico.
// La fecha se toma de created_at y, si falta, de date.
func NormalizeSale(doc entity.Document) entity.SaleRecord {
	return normalizeSale(doc, "created_at", "date")
}

// NormalizeVendorSale igual que NormalizeSale para "solds", donde la fecha de la venta es date.
func NormalizeVendorSale(doc entity.Document) entity.SaleRecord {
	return normalizeSale(doc, "date", "created_at")
}

func normalizeSale(doc entity.Document, timeKeys ...string) entity.SaleRecord {
	price, _ := toFloat(doc["price"])
	if price < 0 || math.IsNaN(price) {
		price = 0
	}

	ts, valid := ParseTimestamp(firstPresent(doc, timeKeys...))

	return entity.SaleRecord{
		ID:               doc.ID(),
		PlanName:         doc.FirstString("plan", "profile", "name"),
		Price:            price,
		VendorID:         stringify(firstPresent(doc, "by", "vendor_id")),
		ClientID:         stringify(doc["user_id"]),
		ConnectionNumber: stringify(doc["number"]),
		Timestamp:        ts,
		ValidTimestamp:   valid,
		Status:           parseStatus(doc.String("status")),
	}
}

// NormalizeSales aplica NormalizeSale a cada documento conservando el orden.
func NormalizeSales(docs []entity.Document) []entity.SaleRecord {
	return normalizeAll(docs, NormalizeSale)
}

// NormalizeVendorSales aplica NormalizeVendorSale a cada documento conservando el orden.
func NormalizeVendorSales(docs []entity.Document) []entity.SaleRecord {
	return normalizeAll(docs, NormalizeVendorSale)
}

func normalizeAll(docs []entity.Document, fn func(entity.Document) entity.SaleRecord) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, fn(d))
	}
	return out
}

// NormalizeUser convierte un documento de la colección "users".
func NormalizeUser(doc entity.Document) entity.User {
	registered, ok := ParseTimestamp(doc["created_at"])
	role, _ := entity.ParseRole(doc.String("type"))
	return entity.User{
		ID:           doc.ID(),
		Username:     doc.String("username"),
		DisplayName:  doc.FirstString("complete_name", "lastname", "name"),
		UserNumber:   stringify(doc["user_number"]),
		Role:         role,
		PasswordHash: doc.String("password"),
		RegisteredAt: registered,
		RegisteredOK: ok,
	}
}

func firstPresent(doc entity.Document, keys ...string) any {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func parseStatus(s string) entity.SaleStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		// "histories" no guarda estado: toda activación registrada está completada.
		return entity.SaleCompleted
	case string(entity.SaleCompleted):
		return entity.SaleCompleted
	case string(entity.SalePending):
		return entity.SalePending
	default:
		return entity.SaleOther
	}
}

// FormatLocal devuelve YYYY-MM-DDTHH:MM:SS en loc, o NotAvailable si la fecha es inválida.
func FormatLocal(t time.Time, ok bool, loc *time.Location) string {
	if !ok {
		return NotAvailable
	}
	return t.In(loc).Format("2006-01-02T15:04:05")
}

// SplitLocal separa la fecha y la hora locales (ambas NotAvailable si la fecha es inválida).
func SplitLocal(t time.Time, ok bool, loc *time.Location) (date, clock string) {
	if !ok {
		return NotAvailable, NotAvailable
	}
	local := t.In(loc)
	return local.Format("2006-01-02"), local.Format("15:04:05")
}

// NormalizeConnectedClient convierte un elemento de array_data del snapshot de presencia.
// El formato lo publica el equipo de red: "connexion_number", "schedule_data" y "bandwitch".
func NormalizeConnectedClient(doc entity.Document) entity.ConnectedClient {
	c := entity.ConnectedClient{
		CompleteName:    stringify(doc["complete_name"]),
		ConnexionNumber: stringify(doc["connexion_number"]),
		Uptime:          stringify(doc["uptime"]),
		IP:              stringify(doc["ip"]),
		MACAddress:      stringify(doc["mac_address"]),
	}
	if sched, ok := asDocument(doc["schedule_data"]); ok {
		c.ActivationDate, c.ActivationOK = ParseTimestamp(sched["activation_date"])
		c.ExpirationDate, c.ExpirationOK = ParseTimestamp(sched["expiration_date"])
		if used, ok := toFloat(sched["used_data"]); ok {
			c.UsedData = &used
		}
	}
	if bw, ok := asDocument(doc["bandwitch"]); ok {
		c.HasBandwidth = true
		c.TX, _ = toFloat(bw["tx"])
		c.RX, _ = toFloat(bw["rx"])
	}
	return c
}

func asDocument(v any) (entity.Document, bool) {
	switch m := v.(type) {
	case map[string]any:
		return entity.Document(m), true
	case entity.Document:
		return m, true
	default:
		return nil, false
	}
}
