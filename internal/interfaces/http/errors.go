package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain"
)

var validate = validator.New()

// requestError parámetros o cuerpo inválidos; siempre 400.
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string { return e.msg }

// parseQuery lee y valida los query params en out.
func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &requestError{code: "INVALID_PARAMS", msg: "parámetros de consulta inválidos"}
	}
	if err := validate.Struct(out); err != nil {
		return &requestError{code: "VALIDATION", msg: validationMessage(err)}
	}
	return nil
}

// parseBody lee y valida el cuerpo JSON en out.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &requestError{code: "INVALID_BODY", msg: "cuerpo inválido"}
	}
	if err := validate.Struct(out); err != nil {
		return &requestError{code: "VALIDATION", msg: validationMessage(err)}
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "campo " + fe.Field() + " no cumple " + fe.Tag()
	}
	return err.Error()
}

// writeError traduce errores de dominio a status HTTP. Los fallos del store no exponen detalles.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno"
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		status, code, msg = fiber.StatusBadRequest, reqErr.code, reqErr.msg
	case errors.Is(err, domain.ErrMissingTable):
		status, code, msg = fiber.StatusBadRequest, "MISSING_TABLE", "el parámetro table es requerido"
	case errors.Is(err, domain.ErrInvalidParams):
		status, code, msg = fiber.StatusBadRequest, "INVALID_PARAMS", "params debe ser un objeto JSON"
	case errors.Is(err, domain.ErrTableNotAllowed):
		status, code, msg = fiber.StatusForbidden, "TABLE_NOT_ALLOWED", "colección no permitida"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "BAD_REQUEST", err.Error()
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrUpstream):
		status, code, msg = fiber.StatusBadGateway, "UPSTREAM", "no se pudo consultar el store"
	}
	if status >= fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// localError error original de las respuestas 5xx, para el log de peticiones.
const localError = "error"
