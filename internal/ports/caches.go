package ports

import (
	"context"
	"location-sunrise-service/internal/domain"
)

// Port: a boundary for caching geocode lookups. Address keys are
// expected to be consistent (e.g., normalized) by the caller.
type GeocodeCache interface {
	// Fetch cached coordinates. The bool reports whether the address was present.
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	// Store an address -> coordinates mapping.
	Put(ctx context.Context, address string, c domain.Coordinates) error
}

// Port: a boundary for caching sunrise/sunset lookups by opaque key.
type SunriseCache interface {
	Get(ctx context.Context, key string) (domain.SunriseSunset, bool, error)
	Put(ctx context.Context, key string, v domain.SunriseSunset) error
}
