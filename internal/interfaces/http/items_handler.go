package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// itemsService lo implementa *items.UseCase.
type itemsService interface {
	Find(ctx context.Context, q dto.ItemsQuery) ([]entity.Document, error)
}

// ItemsHandler lectura cruda de colecciones del store.
type ItemsHandler struct {
	uc itemsService
}

// NewItemsHandler construye el handler.
func NewItemsHandler(uc itemsService) *ItemsHandler {
	return &ItemsHandler{uc: uc}
}

// List godoc
// @Summary      Documentos de una colección
// @Description  Devuelve los documentos de `table` que cumplen el filtro JSON `params`.
// @Description  Los campos password se eliminan de la respuesta.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        table   query  string  true   "Colección (lista permitida)"
// @Param        params  query  string  false  "Filtro JSON, ej. {\"type\":\"VENDOR\"}"
// @Success      200  {array}   object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	var q dto.ItemsQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	docs, err := h.uc.Find(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(docs)
}
