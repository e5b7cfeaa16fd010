package live

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/pkg/format"
)

// DataLimitLabel los planes no tienen tope de datos.
const DataLimitLabel = "Unlimited"

// Service lectura de la foto para la API. Con store nil el feed está deshabilitado.
type Service struct {
	store *SnapshotStore
	loc   *time.Location
}

// NewService construye el servicio.
func NewService(store *SnapshotStore, loc *time.Location) *Service {
	return &Service{store: store, loc: loc}
}

// Enabled indica si hay feed configurado.
func (s *Service) Enabled() bool { return s.store != nil }

// Current foto actual lista para mostrar. Un feed detenido se informa como deshabilitado.
func (s *Service) Current() dto.LiveSnapshotResponse {
	if s.store == nil {
		return ToResponse(Snapshot{}, false, s.loc)
	}
	return s.response(s.store.Current())
}

func (s *Service) response(snap Snapshot) dto.LiveSnapshotResponse {
	return ToResponse(snap, !snap.Stopped, s.loc)
}

// Sink destino de un stream de fotos.
type Sink interface {
	Send(dto.LiveSnapshotResponse) error
	// Ping mantiene viva la conexión; un error indica que el cliente se fue.
	Ping() error
}

// Watch envía a sink la foto actual y cada cambio hasta que ctx se cancele o sink falle.
// La foto actual se entrega siempre, aunque ctx ya esté cancelado.
// Sin cambios durante keepAlive llama a sink.Ping (keepAlive <= 0 lo desactiva).
func (s *Service) Watch(ctx context.Context, keepAlive time.Duration, sink Sink) error {
	var updates <-chan Snapshot
	if s.store != nil {
		ch, cancel := s.store.Subscribe()
		defer cancel()
		updates = ch
		if err := sink.Send(s.response(<-ch)); err != nil {
			return err
		}
	} else if err := sink.Send(s.Current()); err != nil {
		return err
	}

	var pings <-chan time.Time
	if keepAlive > 0 {
		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()
		pings = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pings:
			if err := sink.Ping(); err != nil {
				return err
			}
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			if err := sink.Send(s.response(snap)); err != nil {
				return err
			}
		}
	}
}

// ToResponse convierte la foto a su forma de presentación.
func ToResponse(snap Snapshot, enabled bool, loc *time.Location) dto.LiveSnapshotResponse {
	out := dto.LiveSnapshotResponse{
		Enabled: enabled,
		Version: snap.Version,
		Count:   len(snap.Clients),
		Clients: make([]dto.ConnectedClientDTO, 0, len(snap.Clients)),
	}
	if !snap.UpdatedAt.IsZero() {
		t := snap.UpdatedAt.In(loc)
		out.UpdatedAt = &t
	}
	for _, c := range snap.Clients {
		out.Clients = append(out.Clients, ToClientDTO(c, loc))
	}
	return out
}

// ToClientDTO aplica las reglas de presentación de un cliente conectado.
func ToClientDTO(c entity.ConnectedClient, loc *time.Location) dto.ConnectedClientDTO {
	used := "0.00"
	if c.UsedData != nil {
		used = fmt.Sprintf("%.2f", *c.UsedData)
	}
	download, upload := format.BitRate(0), format.BitRate(0)
	if c.HasBandwidth {
		download, upload = format.BitRate(c.RX), format.BitRate(c.TX)
	}
	return dto.ConnectedClientDTO{
		Name:             c.CompleteName,
		ConnectionNumber: c.ConnexionNumber,
		Uptime:           c.Uptime,
		ActivationDate:   sales.FormatLocal(c.ActivationDate, c.ActivationOK, loc),
		ExpirationDate:   sales.FormatLocal(c.ExpirationDate, c.ExpirationOK, loc),
		DataUsed:         used,
		DataLimit:        DataLimitLabel,
		IP:               c.IP,
		MACAddress:       c.MACAddress,
		Download:         download,
		Upload:           upload,
	}
}
