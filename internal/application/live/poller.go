package live

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/pkg/logger"
)

// RequestVerb petición que hace al router publicar la foto.
const RequestVerb = "get"

// ErrReceiveEnded la suscripción terminó sin que se cancelara el contexto.
var ErrReceiveEnded = errors.New("recepción de notificaciones terminada")

// Poller pide la foto periódicamente y la recarga con cada notificación.
type Poller struct {
	publisher RequestPublisher
	receiver  MessageReceiver
	source    repository.SnapshotRepository
	store     *SnapshotStore
	interval  time.Duration
	log       *logger.Logger

	minRetry time.Duration
	maxRetry time.Duration
}

// NewPoller construye el poller. interval <= 0 usa 8s.
func NewPoller(
	publisher RequestPublisher,
	receiver MessageReceiver,
	source repository.SnapshotRepository,
	store *SnapshotStore,
	interval time.Duration,
	log *logger.Logger,
) *Poller {
	if interval <= 0 {
		interval = 8 * time.Second
	}
	return &Poller{
		publisher: publisher,
		receiver:  receiver,
		source:    source,
		store:     store,
		interval:  interval,
		log:       log.Component("live"),
		minRetry:  time.Second,
		maxRetry:  time.Minute,
	}
}

// WithRetry ajusta la espera entre reinicios de Supervise.
func (p *Poller) WithRetry(first, limit time.Duration) *Poller {
	p.minRetry, p.maxRetry = first, limit
	return p
}

// Run bloquea hasta que ctx se cancele o la recepción falle. Al salir la foto queda vacía
// y marcada como detenida.
func (p *Poller) Run(ctx context.Context) error {
	defer p.store.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p.request(gctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				p.request(gctx)
			}
		}
	})
	g.Go(func() error {
		err := p.receiver.Receive(gctx, func(ctx context.Context, _ []byte) {
			p.Reload(ctx)
		})
		if err == nil && gctx.Err() == nil {
			err = ErrReceiveEnded
		}
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("feed en vivo: %w", err)
	}
	return nil
}

// Supervise ejecuta Run y lo reinicia tras cada fallo, con una espera que se duplica
// desde minRetry hasta maxRetry. Vuelve cuando ctx se cancela.
func (p *Poller) Supervise(ctx context.Context) {
	wait := p.minRetry
	for {
		started := time.Now()
		err := p.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if time.Since(started) > p.maxRetry {
			wait = p.minRetry
		}
		p.log.Error().Err(err).Dur("retry_in", wait).Msg("feed en vivo detenido, reintentando")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		wait = min(wait*2, p.maxRetry)
	}
}

// Reload lee la foto del store y la publica; si falla se conserva la anterior.
func (p *Poller) Reload(ctx context.Context) {
	clients, err := p.source.ConnectedClients(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("no se pudo leer la foto de clientes conectados")
		return
	}
	snap := p.store.Set(clients)
	p.log.Debug().Uint64("version", snap.Version).Int("count", len(clients)).Msg("foto actualizada")
}

func (p *Poller) request(ctx context.Context) {
	if err := p.publisher.PublishRequest(ctx, RequestVerb); err != nil && ctx.Err() == nil {
		p.log.Warn().Err(err).Msg("no se pudo publicar la petición al router")
	}
}
