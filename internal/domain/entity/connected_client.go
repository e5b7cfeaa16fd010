package entity

import "time"

// ConnectedClient cliente conectado a la red según el último snapshot del feed de presencia.
type ConnectedClient struct {
	CompleteName    string
	ConnexionNumber string
	Uptime          string
	IP              string
	MACAddress      string

	ActivationDate time.Time
	ActivationOK   bool
	ExpirationDate time.Time
	ExpirationOK   bool
	UsedData       *float64 // nil = sin dato de consumo

	HasBandwidth bool
	TX           float64 // bps de subida
	RX           float64 // bps de bajada
}
