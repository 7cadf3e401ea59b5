package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"location-sunrise-service/internal/domain"
	"location-sunrise-service/internal/platform/obs"
	"location-sunrise-service/internal/ports"
)

// ORSGeoLocationProvider implements GeoLocationProvider using
// OpenRouteService forward geocoding (/geocode/search).
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSGeoLocationProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.GeocodeCache
}

func NewORSGeoLocationProvider(apiKey string, cache ports.GeocodeCache) (*ORSGeoLocationProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSGeoLocationProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		cache:   cache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSGeoLocationProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// FromAddress resolves a single address to coordinates.
// The cache is consulted before issuing an external call; a lookup that
// matches no features fails with *domain.NotFoundError.
func (o *ORSGeoLocationProvider) FromAddress(
	ctx context.Context,
	address string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.FromAddress")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	if o.cache != nil {
		coords, ok, err := o.cache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return coords, nil
		}
	}

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, domain.NotFound("no geocode results for %q", address)
	}

	raw := decoded.Features[0].Geometry.Coordinates
	if len(raw) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", address)
	}

	// ORS returns [lon, lat].
	coords := domain.Coordinates{
		Lon: raw[0],
		Lat: raw[1],
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, norm, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, nil
}
