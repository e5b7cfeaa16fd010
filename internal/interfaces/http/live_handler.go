package http

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/application/live"
	"github.com/jhoicas/netline-api/pkg/logger"
)

// liveService lo implementa *live.Service.
type liveService interface {
	Current() dto.LiveSnapshotResponse
	Watch(ctx context.Context, keepAlive time.Duration, sink live.Sink) error
}

// liveSignal nombre de la señal datastar que recibe cada foto.
const liveSignal = "live"

// DefaultKeepAlive intervalo de los comentarios ": ping" del stream.
const DefaultKeepAlive = 15 * time.Second

// LiveHandler foto de clientes conectados y su stream SSE.
type LiveHandler struct {
	svc       liveService
	baseCtx   context.Context // se cancela al apagar el servidor y corta los streams
	keepAlive time.Duration
	log       *logger.Logger
}

// NewLiveHandler construye el handler.
func NewLiveHandler(baseCtx context.Context, svc liveService, log *logger.Logger) *LiveHandler {
	return &LiveHandler{
		svc:       svc,
		baseCtx:   baseCtx,
		keepAlive: DefaultKeepAlive,
		log:       log.Component("live-http"),
	}
}

// WithKeepAlive cambia el intervalo de ping del stream.
func (h *LiveHandler) WithKeepAlive(d time.Duration) *LiveHandler {
	h.keepAlive = d
	return h
}

// Connected godoc
// @Summary      Clientes conectados
// @Tags         live
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LiveSnapshotResponse
// @Router       /api/live/connected [get]
func (h *LiveHandler) Connected(c *fiber.Ctx) error {
	return c.JSON(h.svc.Current())
}

// Stream godoc
// @Summary      Stream SSE de clientes conectados (datastar patch-signals)
// @Description  Envía la foto actual y cada cambio como señal "live", con un comentario ": ping" cada 15s. Acepta ?token= para EventSource.
// @Tags         live
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Router       /api/live/stream [get]
func (h *LiveHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	uri := c.OriginalURL()
	c.Context().SetBodyStreamWriter(func(bw *bufio.Writer) {
		ctx, cancel := context.WithCancel(h.baseCtx)
		defer cancel()

		r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			h.log.Error().Err(err).Msg("crear request del stream")
			return
		}
		w := &streamWriter{header: make(http.Header), bw: bw, cancel: cancel}
		sse, err := newSSE(w, r)
		if err != nil {
			h.log.Debug().Err(err).Msg("cliente desconectado antes del stream")
			return
		}

		err = h.svc.Watch(ctx, h.keepAlive, &signalSink{sse: sse, w: w})
		if err != nil && ctx.Err() == nil {
			h.log.Debug().Err(err).Msg("stream finalizado")
		}
	})
	return nil
}

// newSSE convierte en error el panic de datastar cuando el primer flush falla.
func newSSE(w http.ResponseWriter, r *http.Request) (sse *datastar.ServerSentEventGenerator, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("iniciar stream: %v", p)
		}
	}()
	return datastar.NewSSE(w, r), nil
}

// signalSink envía cada foto como señal datastar y los pings como comentario SSE.
type signalSink struct {
	sse *datastar.ServerSentEventGenerator
	w   *streamWriter
}

var pingComment = []byte(": ping\n\n")

func (s *signalSink) Send(snap dto.LiveSnapshotResponse) error {
	payload, err := json.Marshal(map[string]any{liveSignal: snap})
	if err != nil {
		return err
	}
	return s.sse.PatchSignals(payload)
}

func (s *signalSink) Ping() error {
	if _, err := s.w.Write(pingComment); err != nil {
		return err
	}
	return s.w.FlushError()
}

// streamWriter adapta el writer de fasthttp a http.ResponseWriter para datastar.
// Un error al vaciar el buffer indica que el cliente se desconectó y cancela el stream.
type streamWriter struct {
	header http.Header
	bw     *bufio.Writer
	cancel context.CancelFunc
}

func (w *streamWriter) Header() http.Header { return w.header }

func (w *streamWriter) Write(p []byte) (int, error) { return w.bw.Write(p) }

func (w *streamWriter) WriteHeader(int) {}

// FlushError lo usa http.ResponseController.
func (w *streamWriter) FlushError() error {
	if err := w.bw.Flush(); err != nil {
		w.cancel()
		return err
	}
	return nil
}

func (w *streamWriter) Flush() { _ = w.FlushError() }
