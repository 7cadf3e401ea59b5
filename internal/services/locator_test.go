package services

import (
	"context"
	"errors"
	"testing"

	"location-sunrise-service/internal/domain"
)

type mockGeo struct {
	coords domain.Coordinates
	err    error
	calls  int
}

func (m *mockGeo) FromAddress(ctx context.Context, address string) (domain.Coordinates, error) {
	m.calls++
	if m.err != nil {
		return domain.Coordinates{}, m.err
	}
	return m.coords, nil
}

type mockSun struct {
	times domain.SunriseSunset
	err   error
	calls int
}

func (m *mockSun) FromCoordinates(ctx context.Context, c domain.Coordinates) (domain.SunriseSunset, error) {
	m.calls++
	if m.err != nil {
		return domain.SunriseSunset{}, m.err
	}
	return m.times, nil
}

func TestLocateAddress(t *testing.T) {
	geo := &mockGeo{coords: domain.Coordinates{Lat: 37.4224082, Lon: -122.0856086}}
	sun := &mockSun{times: domain.SunriseSunset{Sunrise: "12:55:17 PM", Sunset: "3:14:28 AM"}}

	loc, err := LocateAddress(context.Background(), "1600 Amphitheatre Parkway", geo, sun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Coordinates != geo.coords {
		t.Errorf("coordinates = %+v, want %+v", loc.Coordinates, geo.coords)
	}
	if loc.SunriseSunset != sun.times {
		t.Errorf("sunrise/sunset = %+v, want %+v", loc.SunriseSunset, sun.times)
	}
}

func TestLocateAddressGeoFailureShortCircuits(t *testing.T) {
	wantErr := domain.NotFound("not found")
	geo := &mockGeo{err: wantErr}
	sun := &mockSun{}

	_, err := LocateAddress(context.Background(), "nowhere", geo, sun)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}

	if sun.calls != 0 {
		t.Fatalf("sunrise provider called %d times, want 0", sun.calls)
	}
}

func TestLocateAddressSunriseFailure(t *testing.T) {
	geo := &mockGeo{coords: domain.Coordinates{Lat: 1, Lon: 2}}
	wantErr := errors.New("big error")
	sun := &mockSun{err: wantErr}

	_, err := LocateAddress(context.Background(), "somewhere", geo, sun)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
}

func TestLocateAddressEmptyAddress(t *testing.T) {
	geo := &mockGeo{}
	sun := &mockSun{}

	if _, err := LocateAddress(context.Background(), "   ", geo, sun); err == nil {
		t.Fatal("expected error for empty address")
	}

	if geo.calls != 0 {
		t.Fatalf("geo provider called %d times, want 0", geo.calls)
	}
}
