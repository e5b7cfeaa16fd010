package items_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/application/items"
	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
)

type fakeSource struct {
	docs       []entity.Document
	err        error
	collection string
	filter     map[string]any
}

func (f *fakeSource) Find(_ context.Context, collection string, filter map[string]any) ([]entity.Document, error) {
	f.collection, f.filter = collection, filter
	return f.docs, f.err
}

func (f *fakeSource) UpsertOne(context.Context, string, map[string]any, entity.Document) error {
	return nil
}

func TestItems_Find_EliminaPassword(t *testing.T) {
	src := &fakeSource{docs: []entity.Document{
		{"_id": "1", "username": "admin", "password": "$2a$hash", "nested": map[string]any{"password": "x", "ok": true}},
		{"_id": "2", "list": []any{map[string]any{"password": "y"}}},
	}}
	uc := items.NewUseCase(src, []string{"users"})

	docs, err := uc.Find(context.Background(), dto.ItemsQuery{Table: "users", Params: `{"type":"VENDOR"}`})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "users", src.collection)
	assert.Equal(t, map[string]any{"type": "VENDOR"}, src.filter)
	assert.NotContains(t, docs[0], "password")
	assert.Equal(t, map[string]any{"ok": true}, docs[0]["nested"])
	assert.Equal(t, []any{map[string]any{}}, docs[1]["list"])
}

func TestItems_Find_SinParamsFiltroVacio(t *testing.T) {
	src := &fakeSource{}
	uc := items.NewUseCase(src, []string{"histories"})

	docs, err := uc.Find(context.Background(), dto.ItemsQuery{Table: "histories"})
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.NotNil(t, docs, "lista vacía, no null")
	assert.Equal(t, map[string]any{}, src.filter)
}

func TestItems_Find_Errores(t *testing.T) {
	uc := items.NewUseCase(&fakeSource{}, []string{"users"})
	ctx := context.Background()

	_, err := uc.Find(ctx, dto.ItemsQuery{})
	assert.ErrorIs(t, err, domain.ErrMissingTable)

	_, err = uc.Find(ctx, dto.ItemsQuery{Table: "secrets"})
	assert.ErrorIs(t, err, domain.ErrTableNotAllowed)

	_, err = uc.Find(ctx, dto.ItemsQuery{Table: "users", Params: "{no-json"})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}

func TestItems_Find_ErrorStore(t *testing.T) {
	boom := errors.New("boom")
	uc := items.NewUseCase(&fakeSource{err: boom}, []string{"users"})

	_, err := uc.Find(context.Background(), dto.ItemsQuery{Table: "users"})
	assert.ErrorIs(t, err, boom)
}
