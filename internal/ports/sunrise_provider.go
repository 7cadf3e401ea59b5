package ports

import (
	"context"
	"location-sunrise-service/internal/domain"
)

// Contract for retrieving sunrise/sunset times for a coordinate pair.
type SunriseSunsetProvider interface {
	FromCoordinates(ctx context.Context, c domain.Coordinates) (domain.SunriseSunset, error)
}
