package dto

import "time"

// ConnectedClientDTO cliente conectado listo para mostrar.
type ConnectedClientDTO struct {
	Name             string `json:"name"`
	ConnectionNumber string `json:"connection_number"`
	Uptime           string `json:"uptime"`
	ActivationDate   string `json:"activation_date"`
	ExpirationDate   string `json:"expiration_date"`
	DataUsed         string `json:"data_used"`
	DataLimit        string `json:"data_limit"`
	IP               string `json:"ip"`
	MACAddress       string `json:"mac_address"`
	Download         string `json:"download"`
	Upload           string `json:"upload"`
}

// LiveSnapshotResponse salida de GET /api/live/connected y de cada evento SSE.
type LiveSnapshotResponse struct {
	Enabled   bool                 `json:"enabled"`
	Version   uint64               `json:"version"`
	Count     int                  `json:"count"`
	UpdatedAt *time.Time           `json:"updated_at"`
	Clients   []ConnectedClientDTO `json:"clients"`
}
