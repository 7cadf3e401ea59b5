package sunrise

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"location-sunrise-service/internal/domain"
	"location-sunrise-service/internal/platform/obs"
	"location-sunrise-service/internal/ports"
)

const defaultBaseURL = "https://api.sunrise-sunset.org"

// Provider implements SunriseSunsetProvider against sunrise-sunset.org.
// Times are returned in the provider-native string format, unmodified.
type Provider struct {
	session *http.Client
	baseURL string
	cache   ports.SunriseCache
	now     func() time.Time
}

func NewProvider(baseURL string, cache ports.SunriseCache) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   cache,
		now:     time.Now,
	}
}

type sunriseResponse struct {
	Results struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"results"`
	Status string `json:"status"`
}

// cacheKey buckets coordinates to ~11m so nearby lookups share an entry,
// and includes the UTC date because the times change daily.
func (p *Provider) cacheKey(c domain.Coordinates) string {
	day := p.now().UTC().Format("2006-01-02")
	return fmt.Sprintf("sunrise:%.4f,%.4f:%s", c.Lat, c.Lon, day)
}

// FromCoordinates fetches sunrise/sunset times for a coordinate pair.
func (p *Provider) FromCoordinates(
	ctx context.Context,
	c domain.Coordinates,
) (_ domain.SunriseSunset, err error) {
	defer obs.Time(ctx, "sunrise.FromCoordinates")(&err)

	key := p.cacheKey(c)
	if p.cache != nil {
		v, ok, err := p.cache.Get(ctx, key)
		if err != nil {
			return domain.SunriseSunset{}, fmt.Errorf("sunrise cache read: %w", err)
		}
		if ok {
			return v, nil
		}
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	endpoint := p.baseURL + "/json?" + q.Encode()

	resp, err := p.getWithRetry(ctx, endpoint)
	if err != nil {
		return domain.SunriseSunset{}, fmt.Errorf("execute sunrise request: %w", err)
	}
	defer resp.Body.Close()

	var decoded sunriseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.SunriseSunset{}, fmt.Errorf("decode sunrise response: %w", err)
	}

	if decoded.Status != "OK" {
		return domain.SunriseSunset{}, fmt.Errorf("sunrise lookup failed: status %q", decoded.Status)
	}

	out := domain.SunriseSunset{
		Sunrise: decoded.Results.Sunrise,
		Sunset:  decoded.Results.Sunset,
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, key, out); err != nil {
			log.Printf("sunrise cache write failed: %v", err)
		}
	}

	return out, nil
}

// getWithRetry retries transient failures (network errors, 429/5xx)
// with a fixed short backoff; the upstream API is unauthenticated and
// occasionally rate-limits.
func (p *Provider) getWithRetry(ctx context.Context, endpoint string) (*http.Response, error) {
	const maxAttempts = 3
	const backoff = 250 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := p.session.Do(req)
		if err == nil && resp.StatusCode < 400 {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status: %d", resp.StatusCode)
			if resp.StatusCode != 429 && resp.StatusCode < 500 {
				return nil, lastErr
			}
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}
