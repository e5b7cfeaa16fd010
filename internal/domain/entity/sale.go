package entity

import "time"

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "COMPLETED"
	SalePending   SaleStatus = "PENDING"
	SaleOther     SaleStatus = "OTHER"
)

// SaleRecord venta (o activación) de un plan de conectividad en forma canónica.
// Inmutable una vez leída del store.
type SaleRecord struct {
	ID               string
	PlanName         string
	Price            float64
	VendorID         string // vacío = sin vendedor atribuido
	ClientID         string
	ConnectionNumber string
	Timestamp        time.Time
	// ValidTimestamp es false cuando la fecha original no se pudo interpretar;
	// esos registros quedan fuera de cualquier filtro por fecha.
	ValidTimestamp bool
	Status         SaleStatus
}
