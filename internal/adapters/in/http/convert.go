package http

import (
	"math"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromWireID maps a non-positive id to 0, which every constructor rejects.
func fromWireID(id servers.ID) uint64 {
	if id <= 0 {
		return 0
	}
	return uint64(id)
}

func toWireID(id uint64) int64 {
	if id > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(id)
}

func toShipmentType(v int) (kernel.ShipmentType, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, errs.NewValueIsOutOfRangeError("shipment type", v, 0, math.MaxUint8)
	}
	return kernel.ShipmentType(v), nil
}
