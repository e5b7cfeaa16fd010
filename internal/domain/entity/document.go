package entity

// Document registro crudo tal como lo devuelve el store (JSON extendido relajado:
// ObjectID como {"$oid": ...} y fechas como {"$date": ...}).
type Document map[string]any

// String devuelve el campo como texto o "" si no existe o no es texto.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case map[string]any:
		if oid, ok := v["$oid"].(string); ok {
			return oid
		}
	}
	return ""
}

// FirstString devuelve el primer campo de texto no vacío entre keys.
func (d Document) FirstString(keys ...string) string {
	for _, k := range keys {
		if s := d.String(k); s != "" {
			return s
		}
	}
	return ""
}

// ID devuelve el _id del documento (hex del ObjectID o texto plano).
func (d Document) ID() string {
	return d.String("_id")
}
