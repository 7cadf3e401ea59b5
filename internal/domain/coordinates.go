package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Sunrise and sunset times in provider-native string format.
// Values are passed through unmodified from the upstream API.
type SunriseSunset struct {
	Sunrise string
	Sunset  string
}

// Location is the combined result of a full address lookup.
type Location struct {
	Coordinates   Coordinates
	SunriseSunset SunriseSunset
}

// NotFoundError marks lookups that completed but matched nothing,
// as opposed to infrastructure failures.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
