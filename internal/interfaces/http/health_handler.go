package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
)

// Health responde {status:"ok", service} sin tocar el store.
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service})
	}
}
