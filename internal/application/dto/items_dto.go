package dto

// ItemsQuery parámetros de GET /api/items. Params es un filtro JSON estilo Mongo.
type ItemsQuery struct {
	Table  string `query:"table"`
	Params string `query:"params"`
}
