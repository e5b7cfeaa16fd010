// Package gcppubsub adapta Google Cloud Pub/Sub a los puertos del feed de presencia:
// publica la petición "get" al router y recibe sus notificaciones.
package gcppubsub

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/goccy/go-json"

	"github.com/jhoicas/netline-api/pkg/config"
)

// ErrInitialization error al crear el cliente de Pub/Sub.
var ErrInitialization = errors.New("pubsub initialization error")

// Request mensaje de petición que entiende el router ({"request":"get","description":"get"}).
type Request struct {
	Request     string `json:"request"`
	Description string `json:"description"`
}

// EncodeRequest serializa la petición con la descripción igual al verbo.
func EncodeRequest(verb string) ([]byte, error) {
	return json.Marshal(Request{Request: verb, Description: verb})
}

// Client publicador y suscriptor del feed.
type Client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
	sub    *pubsub.Subscription
}

// New conecta con el proyecto y prepara el topic de peticiones y la suscripción de notificaciones.
func New(ctx context.Context, cfg config.LiveConfig) (*Client, error) {
	ps, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	sub := ps.Subscription(cfg.Subscription)
	sub.ReceiveSettings.MaxOutstandingMessages = 16

	return &Client{
		client: ps,
		topic:  ps.Topic(cfg.RequestTopic),
		sub:    sub,
	}, nil
}

// PublishRequest publica la petición y espera la confirmación del servidor.
func (c *Client) PublishRequest(ctx context.Context, verb string) error {
	data, err := EncodeRequest(verb)
	if err != nil {
		return err
	}
	res := c.topic.Publish(ctx, &pubsub.Message{Data: data})
	if _, err := res.Get(ctx); err != nil {
		return fmt.Errorf("publicar %q: %w", verb, err)
	}
	return nil
}

// Receive bloquea hasta que ctx se cancele, entregando cada notificación a fn.
// Los mensajes se confirman antes de procesarse: el contenido solo indica que hay datos nuevos.
func (c *Client) Receive(ctx context.Context, fn func(ctx context.Context, data []byte)) error {
	err := c.sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		m.Ack()
		fn(ctx, m.Data)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("recibir notificaciones: %w", err)
	}
	return nil
}

// Close detiene el topic y cierra el cliente.
func (c *Client) Close() error {
	c.topic.Stop()
	return c.client.Close()
}
