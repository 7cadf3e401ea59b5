package api

import (
	"net/http"

	"location-sunrise-service/internal/api/handlers"
	"location-sunrise-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root: handlers stay unaware of concrete adapters,
// and the error mapper is the only component that turns failures into responses.
func NewRouter(geo ports.GeoLocationProvider, sun ports.SunriseSunsetProvider) http.Handler {
	mux := http.NewServeMux()

	errs := handlers.NewErrorHandler()
	location := &handlers.LocationHandler{
		Geo:    geo,
		Sun:    sun,
		Errors: errs,
	}

	mux.HandleFunc("/health", handlers.Health(errs))
	mux.HandleFunc("/api/location", location.Post)
	mux.HandleFunc("/api/location/", location.GetByAddress)

	// Everything the mux does not match falls through to "/";
	// unmatched paths get the uniform JSON 404 body.
	mux.HandleFunc("/", errs.NotFound)

	return loggingMiddleware(mux)
}
