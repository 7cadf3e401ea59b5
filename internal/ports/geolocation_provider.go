package ports

import (
	"context"
	"location-sunrise-service/internal/domain"
)

// Contract for resolving a postal address to geographic coordinates.
type GeoLocationProvider interface {
	// Resolve a single address. A lookup that matches nothing fails
	// with *domain.NotFoundError.
	FromAddress(ctx context.Context, address string) (domain.Coordinates, error)
}
