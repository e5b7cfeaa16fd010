package mongodb_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/internal/infrastructure/mongodb"
)

func TestFromBSON_ExtJSONRelajado(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("66bd0f6a1c2b3a4d5e6f7081")
	require.NoError(t, err)
	when := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)

	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: oid},
		{Key: "profile", Value: "PLAN 7 DIAS"},
		{Key: "price", Value: int32(250)},
		{Key: "date", Value: primitive.NewDateTimeFromTime(when)},
	})
	require.NoError(t, err)

	doc, err := mongodb.FromBSON(raw)
	require.NoError(t, err)

	assert.Equal(t, "66bd0f6a1c2b3a4d5e6f7081", doc.ID(), "el ObjectID llega como {$oid}")
	assert.Equal(t, float64(250), doc["price"])

	s := sales.NormalizeSale(doc)
	require.True(t, s.ValidTimestamp, "la fecha llega como {$date} y se normaliza")
	assert.True(t, s.Timestamp.Equal(when))
}

func TestToBSON_TraduceOid(t *testing.T) {
	q, err := mongodb.ToBSON(map[string]any{
		"_id": map[string]any{"$oid": "66bd0f6a1c2b3a4d5e6f7081"},
	})
	require.NoError(t, err)
	require.Len(t, q, 1)

	_, ok := q[0].Value.(primitive.ObjectID)
	assert.True(t, ok, "el $oid se convierte en ObjectID")

	empty, err := mongodb.ToBSON(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestToBSON_ExtJSONInvalido(t *testing.T) {
	_, err := mongodb.ToBSON(map[string]any{"_id": map[string]any{"$oid": "no-hex"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
