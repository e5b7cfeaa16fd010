package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrUnknownRole     = errors.New("rol sin política de comisión")
	ErrTableNotAllowed = errors.New("colección no permitida")
	ErrMissingTable    = errors.New("falta el parámetro table")
	ErrInvalidParams   = errors.New("params no es un filtro JSON válido")
	ErrUpstream        = errors.New("fallo al consultar el store")
)
