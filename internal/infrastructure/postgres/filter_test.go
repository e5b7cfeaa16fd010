package postgres_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/infrastructure/postgres"
)

func TestBuildFindQuery_SinFiltro(t *testing.T) {
	q, args, err := postgres.BuildFindQuery("users", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, doc FROM records WHERE collection = $1 ORDER BY seq", q)
	assert.Equal(t, []any{"users"}, args)
}

func TestBuildFindQuery_IgualdadYIn(t *testing.T) {
	q, args, err := postgres.BuildFindQuery("users", map[string]any{
		"type":     map[string]any{"$in": []any{"VENDOR", "SYSTEM_ADMINISTRATOR"}},
		"username": "admin",
		"_id":      map[string]any{"$oid": "abc"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, doc FROM records WHERE collection = $1 AND doc->>$2 = ANY($3) AND doc @> $4::jsonb ORDER BY seq", q)
	require.Len(t, args, 4)
	assert.Equal(t, "type", args[1])
	assert.Equal(t, []string{"VENDOR", "SYSTEM_ADMINISTRATOR"}, args[2])
	assert.JSONEq(t, `{"_id":{"$oid":"abc"},"username":"admin"}`, args[3].(string))
}

func TestBuildFindQuery_OperadorNoSoportado(t *testing.T) {
	for _, f := range []map[string]any{
		{"price": map[string]any{"$gt": 10.0}},
		{"$or": []any{}},
		{"type": map[string]any{"$in": "VENDOR"}},
	} {
		_, _, err := postgres.BuildFindQuery("solds", f)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "filtro %v", f)
	}
}
