package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

func TestNormalizeSale_DateWrapperYTextoIguales(t *testing.T) {
	wrapped := sales.NormalizeSale(entity.Document{
		"date": map[string]any{"$date": "2024-08-15T10:00:00Z"},
	})
	plain := sales.NormalizeSale(entity.Document{
		"date": "2024-08-15T10:00:00Z",
	})

	require.True(t, wrapped.ValidTimestamp, "el envoltorio $date debe interpretarse")
	require.True(t, plain.ValidTimestamp, "el texto ISO debe interpretarse")
	assert.True(t, wrapped.Timestamp.Equal(plain.Timestamp), "ambas formas deben dar el mismo instante")
}

func TestParseTimestamp_Formatos(t *testing.T) {
	want := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)

	cases := map[string]any{
		"texto ISO":         "2024-08-15T10:00:00Z",
		"texto con offset":  "2024-08-15T05:00:00-05:00",
		"fracción segundos": "2024-08-15T10:00:00.000Z",
		"numberLong":        map[string]any{"$date": map[string]any{"$numberLong": "1723716000000"}},
		"epoch ms float":    float64(1723716000000),
		"epoch ms int64":    int64(1723716000000),
		"time.Time":         want,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := sales.ParseTimestamp(in)
			require.True(t, ok)
			assert.True(t, got.Equal(want), "obtenido %s", got)
		})
	}
}

func TestParseTimestamp_Invalidos(t *testing.T) {
	for _, in := range []any{nil, "", "undefined", "null", "no-es-fecha", map[string]any{}, true, time.Time{}} {
		_, ok := sales.ParseTimestamp(in)
		assert.False(t, ok, "debe rechazar %#v", in)
	}
}

func TestNormalizeSale_Solds(t *testing.T) {
	doc := entity.Document{
		"_id":     map[string]any{"$oid": "66bd0f6a1c2b3a4d5e6f7081"},
		"status":  "pending",
		"profile": "PLAN 7 DIAS",
		"price":   float64(250),
		"by":      "vendor-1",
		"number":  float64(50937001122),
		"date":    map[string]any{"$date": "2024-08-15T10:00:00Z"},
	}

	s := sales.NormalizeSale(doc)

	assert.Equal(t, "66bd0f6a1c2b3a4d5e6f7081", s.ID)
	assert.Equal(t, "PLAN 7 DIAS", s.PlanName)
	assert.Equal(t, 250.0, s.Price)
	assert.Equal(t, "vendor-1", s.VendorID)
	assert.Equal(t, "50937001122", s.ConnectionNumber)
	assert.Equal(t, entity.SalePending, s.Status)
	assert.True(t, s.ValidTimestamp)
}

func TestNormalizeSale_FechaSegunColeccion(t *testing.T) {
	doc := entity.Document{
		"price":      float64(100),
		"date":       "2024-08-31T23:00:00Z",
		"created_at": "2024-09-02T08:00:00Z",
	}

	vendor := sales.NormalizeVendorSale(doc)
	require.True(t, vendor.ValidTimestamp)
	assert.Equal(t, time.Date(2024, 8, 31, 23, 0, 0, 0, time.UTC), vendor.Timestamp.UTC(), "solds: manda date")

	history := sales.NormalizeSale(doc)
	require.True(t, history.ValidTimestamp)
	assert.Equal(t, time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC), history.Timestamp.UTC(), "histories: manda created_at")

	onlyCreated := sales.NormalizeVendorSale(entity.Document{"created_at": "2024-09-02T08:00:00Z"})
	assert.True(t, onlyCreated.ValidTimestamp, "sin date se usa created_at")

	august := 7
	got := sales.FilterByMonth(sales.NormalizeVendorSales([]entity.Document{doc}), sales.MonthFilter{Month: &august}, time.UTC)
	assert.Len(t, got, 1, "la comisión cae en el mes de date")
}

func TestNormalizeSale_HistoriesSinEstadoEsCompletada(t *testing.T) {
	s := sales.NormalizeSale(entity.Document{
		"plan":       "PLAN MENSUAL",
		"price":      int32(1500),
		"user_id":    "client-9",
		"created_at": "2024-08-15T10:00:00Z",
	})

	assert.Equal(t, entity.SaleCompleted, s.Status)
	assert.Equal(t, "client-9", s.ClientID)
	assert.Empty(t, s.VendorID, "histories no tiene vendedor")
	assert.Equal(t, 1500.0, s.Price)
}

func TestNormalizeSale_PrecioNegativoSeAcotaACero(t *testing.T) {
	s := sales.NormalizeSale(entity.Document{"price": float64(-10), "status": "weird"})
	assert.Zero(t, s.Price)
	assert.Equal(t, entity.SaleOther, s.Status)
	assert.False(t, s.ValidTimestamp)
}

func TestNormalizeUser(t *testing.T) {
	u := sales.NormalizeUser(entity.Document{
		"_id":         map[string]any{"$oid": "abc"},
		"lastname":    "Pierre",
		"type":        "VENDOR",
		"user_number": float64(1234),
		"created_at":  map[string]any{"$date": "2023-01-02T00:00:00Z"},
	})

	assert.Equal(t, "abc", u.ID)
	assert.Equal(t, "Pierre", u.DisplayName)
	assert.Equal(t, entity.RoleVendor, u.Role)
	assert.Equal(t, "1234", u.UserNumber)
	assert.True(t, u.RegisteredOK)
}

func TestFormatLocal(t *testing.T) {
	ts := time.Date(2024, 8, 15, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-08-14T22:00:00", sales.FormatLocal(ts, true, sales.TargetLocation))
	assert.Equal(t, sales.NotAvailable, sales.FormatLocal(ts, false, sales.TargetLocation))

	date, clock := sales.SplitLocal(ts, true, sales.TargetLocation)
	assert.Equal(t, "2024-08-14", date)
	assert.Equal(t, "22:00:00", clock)
}

func TestNormalizeConnectedClient(t *testing.T) {
	c := sales.NormalizeConnectedClient(entity.Document{
		"complete_name":    "Rose Jean",
		"connexion_number": float64(37001122),
		"uptime":           "2h13m",
		"ip":               "10.0.0.7",
		"mac_address":      "AA:BB:CC:DD:EE:FF",
		"schedule_data": map[string]any{
			"activation_date": map[string]any{"$date": "2024-08-15T10:00:00Z"},
			"expiration_date": "undefined",
			"used_data":       float64(1.237),
		},
		"bandwitch": map[string]any{"tx": float64(1500), "rx": float64(2_500_000)},
	})

	assert.Equal(t, "37001122", c.ConnexionNumber)
	assert.True(t, c.ActivationOK)
	assert.False(t, c.ExpirationOK)
	require.NotNil(t, c.UsedData)
	assert.InDelta(t, 1.237, *c.UsedData, 1e-9)
	assert.True(t, c.HasBandwidth)
	assert.Equal(t, 2_500_000.0, c.RX)

	bare := sales.NormalizeConnectedClient(entity.Document{"complete_name": "X"})
	assert.Nil(t, bare.UsedData)
	assert.False(t, bare.HasBandwidth)
}
