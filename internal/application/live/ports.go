// Package live mantiene la foto de clientes conectados que publica el router de red.
package live

import "context"

// RequestPublisher publica peticiones al router ("get").
type RequestPublisher interface {
	PublishRequest(ctx context.Context, verb string) error
}

// MessageReceiver entrega las notificaciones del router hasta que ctx se cancele.
type MessageReceiver interface {
	Receive(ctx context.Context, fn func(ctx context.Context, data []byte)) error
}
