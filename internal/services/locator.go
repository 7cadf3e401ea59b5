package services

import (
	"context"
	"errors"
	"strings"

	"location-sunrise-service/internal/domain"
	"location-sunrise-service/internal/ports"
)

// LocateAddress resolves an address to coordinates, then fetches
// sunrise/sunset times for them.
//
// Provider failures are returned as-is: the error mapper in the API
// layer is the single place status codes (and messages) are decided,
// so nothing here wraps or translates them. There is no retry and no
// partial result; a failure at either stage aborts the lookup.
func LocateAddress(
	ctx context.Context,
	address string,
	geo ports.GeoLocationProvider,
	sun ports.SunriseSunsetProvider,
) (domain.Location, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Location{}, errors.New("address must be non-empty")
	}

	coords, err := geo.FromAddress(ctx, address)
	if err != nil {
		return domain.Location{}, err
	}

	times, err := sun.FromCoordinates(ctx, coords)
	if err != nil {
		return domain.Location{}, err
	}

	return domain.Location{
		Coordinates:   coords,
		SunriseSunset: times,
	}, nil
}
