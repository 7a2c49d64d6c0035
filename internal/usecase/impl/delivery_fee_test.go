package impl

import (
	"testing"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zone(name, start, end string, fee float64, excluded string) *entity.DeliveryZone {
	return &entity.DeliveryZone{Name: name, CEPStart: start, CEPEnd: end, Fee: fee, ExcludedCEPs: excluded, Active: true}
}

func TestResolveDeliveryFee(t *testing.T) {
	t.Parallel()

	centro := zone("Centro", "01000-000", "01999-999", 10, "")

	tests := []struct {
		name     string
		cep      string
		zones    []*entity.DeliveryZone
		wantFee  float64
		wantZone string
		wantErr  error
	}{
		{name: "inside range", cep: "01500-000", zones: []*entity.DeliveryZone{centro}, wantFee: 10, wantZone: "Centro"},
		{name: "range bounds inclusive", cep: "01999999", zones: []*entity.DeliveryZone{centro}, wantFee: 10, wantZone: "Centro"},
		{name: "outside every zone", cep: "02000-000", zones: []*entity.DeliveryZone{centro}, wantErr: domainerrors.ErrOutsideDeliveryArea},
		{name: "unparseable input", cep: "sem cep", zones: []*entity.DeliveryZone{centro}, wantErr: domainerrors.ErrOutsideDeliveryArea},
		{
			name:    "excluded cep is not covered",
			cep:     "01500-000",
			zones:   []*entity.DeliveryZone{zone("Centro", "01000-000", "01999-999", 10, "01400-000, 01500-000")},
			wantErr: domainerrors.ErrOutsideDeliveryArea,
		},
		{
			name: "excluded cep falls through to next zone",
			cep:  "01500-000",
			zones: []*entity.DeliveryZone{
				zone("Centro", "01000-000", "01999-999", 10, "01500000"),
				zone("Expandida", "01000-000", "05999-999", 15, ""),
			},
			wantFee: 15, wantZone: "Expandida",
		},
		{
			name: "overlapping zones resolve to fetch order",
			cep:  "01500-000",
			zones: []*entity.DeliveryZone{
				zone("Primeira", "01000-000", "01999-999", 8, ""),
				zone("Segunda", "01400-000", "01600-000", 5, ""),
			},
			wantFee: 8, wantZone: "Primeira",
		},
		{
			name:    "zone with broken bounds never matches",
			cep:     "01500-000",
			zones:   []*entity.DeliveryZone{zone("Quebrada", "abc", "01999-999", 3, "")},
			wantErr: domainerrors.ErrOutsideDeliveryArea,
		},
		{name: "fee rounded to cents", cep: "01500000", zones: []*entity.DeliveryZone{zone("Z", "01000000", "01999999", 7.999, "")}, wantFee: 8, wantZone: "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quote, err := ResolveDeliveryFee(tt.cep, tt.zones)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, quote)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, quote.Fee)
			assert.Equal(t, tt.wantZone, quote.ZoneName)
			assert.False(t, quote.NoZonesConfigured)
		})
	}
}

func TestResolveDeliveryFee_NoZonesIsFree(t *testing.T) {
	t.Parallel()

	for _, cep := range []string{"01500-000", "", "qualquer"} {
		quote, err := ResolveDeliveryFee(cep, nil)
		require.NoError(t, err)
		assert.Zero(t, quote.Fee)
		assert.True(t, quote.NoZonesConfigured)
	}
}
