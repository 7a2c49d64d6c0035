package impl

import (
	"strconv"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/usecase"
	"pedido/internal/util"
)

// ResolveDeliveryFee prices a CEP against zones in the order they were fetched.
// The first zone whose range contains the CEP and whose exclusion list does not wins;
// an excluded CEP moves on to the next zone. No zones at all means free delivery.
func ResolveDeliveryFee(cep string, zones []*entity.DeliveryZone) (*usecase.DeliveryFeeQuote, error) {
	if len(zones) == 0 {
		return &usecase.DeliveryFeeQuote{Fee: 0, NoZonesConfigured: true}, nil
	}

	digits := util.DigitsOnly(cep)
	target, ok := parseCEP(digits)
	if !ok {
		return nil, domainerrors.ErrOutsideDeliveryArea.WithDetails("cep inválido: " + cep)
	}

	for _, zone := range zones {
		start, okStart := parseCEP(util.DigitsOnly(zone.CEPStart))
		end, okEnd := parseCEP(util.DigitsOnly(zone.CEPEnd))
		if !okStart || !okEnd || target < start || target > end {
			continue
		}
		if isExcluded(digits, zone) {
			continue
		}

		return &usecase.DeliveryFeeQuote{
			Fee:      entity.RoundCents(zone.Fee),
			ZoneName: zone.Name,
		}, nil
	}

	return nil, domainerrors.ErrOutsideDeliveryArea.WithDetails("cep " + digits + " fora das zonas de entrega")
}

func parseCEP(digits string) (int64, bool) {
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

func isExcluded(digits string, zone *entity.DeliveryZone) bool {
	for _, excluded := range zone.Exclusions() {
		if util.DigitsOnly(excluded) == digits {
			return true
		}
	}

	return false
}
