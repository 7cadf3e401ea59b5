package geocoding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"location-sunrise-service/internal/domain"
)

type mapCache struct {
	m    map[string]domain.Coordinates
	puts int
}

func newMapCache() *mapCache {
	return &mapCache{m: map[string]domain.Coordinates{}}
}

func (c *mapCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	v, ok := c.m[address]
	return v, ok, nil
}

func (c *mapCache) Put(ctx context.Context, address string, v domain.Coordinates) error {
	c.m[address] = v
	c.puts++
	return nil
}

func newTestProvider(t *testing.T, baseURL string, cache *mapCache) *ORSGeoLocationProvider {
	t.Helper()

	p, err := NewORSGeoLocationProvider("test-key", cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.baseURL = baseURL
	return p
}

func featurePayload(lon, lat float64) string {
	return fmt.Sprintf(
		`{"features":[{"geometry":{"coordinates":[%v,%v]}}]}`,
		lon, lat,
	)
}

func TestFromAddress(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		if r.URL.Path != "/geocode/search" {
			t.Errorf("path = %q, want /geocode/search", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("text"); got != "1600 Amphitheatre Parkway" {
			t.Errorf("text = %q", got)
		}

		fmt.Fprint(w, featurePayload(-122.0856086, 37.4224082))
	}))
	defer srv.Close()

	cache := newMapCache()
	p := newTestProvider(t, srv.URL, cache)

	// Extra whitespace must collapse into the normalized cache key.
	coords, err := p.FromAddress(context.Background(), "  1600  Amphitheatre   Parkway ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Coordinates{Lat: 37.4224082, Lon: -122.0856086}
	if coords != want {
		t.Fatalf("coords = %+v, want %+v", coords, want)
	}

	if calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls)
	}
	if got, ok := cache.m["1600 Amphitheatre Parkway"]; !ok || got != want {
		t.Fatalf("cache entry = %+v (present=%v), want %+v", got, ok, want)
	}
}

func TestFromAddressCacheHit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, featurePayload(0, 0))
	}))
	defer srv.Close()

	cache := newMapCache()
	want := domain.Coordinates{Lat: 37.4224082, Lon: -122.0856086}
	cache.m["1600 Amphitheatre Parkway"] = want

	p := newTestProvider(t, srv.URL, cache)

	coords, err := p.FromAddress(context.Background(), "1600 Amphitheatre Parkway")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords != want {
		t.Fatalf("coords = %+v, want %+v", coords, want)
	}
	if calls != 0 {
		t.Fatalf("upstream calls = %d, want 0", calls)
	}
}

func TestFromAddressNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features":[]}`)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, newMapCache())

	_, err := p.FromAddress(context.Background(), "nowhere at all")

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *domain.NotFoundError", err)
	}
}

func TestFromAddressRetriesTransientFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, featurePayload(-122.0856086, 37.4224082))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, newMapCache())

	coords, err := p.FromAddress(context.Background(), "1600 Amphitheatre Parkway")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 37.4224082 {
		t.Fatalf("lat = %v, want 37.4224082", coords.Lat)
	}
	if calls != 2 {
		t.Fatalf("upstream calls = %d, want 2", calls)
	}
}

func TestNewProviderRequiresKey(t *testing.T) {
	if _, err := NewORSGeoLocationProvider("", nil); err == nil {
		t.Fatal("expected error for empty api key")
	}
}
