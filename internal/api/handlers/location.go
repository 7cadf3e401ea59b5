package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"location-sunrise-service/internal/api/dto"
	"location-sunrise-service/internal/ports"
	"location-sunrise-service/internal/services"
)

// LocationHandler serves the address -> coordinates + sunrise/sunset lookup.
// It extracts the address, delegates to the service, and renders the
// success payload; every failure goes to the error mapper unmodified.
type LocationHandler struct {
	Geo    ports.GeoLocationProvider
	Sun    ports.SunriseSunsetProvider
	Errors *ErrorHandler
}

// GetByAddress handles GET /api/location/{address}.
func (h *LocationHandler) GetByAddress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.Errors.MethodNotAllowed(w, r, http.MethodGet)
		return
	}

	address := strings.TrimPrefix(r.URL.Path, "/api/location/")
	if strings.TrimSpace(address) == "" {
		h.Errors.BadRequest(w, r, "address is required")
		return
	}

	h.locate(w, r, address)
}

// Post handles POST /api/location with a LocationRequest body.
func (h *LocationHandler) Post(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.Errors.MethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.LocationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.Errors.BadRequest(w, r, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.Errors.BadRequest(w, r, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Address) == "" {
		h.Errors.BadRequest(w, r, "address is required")
		return
	}

	h.locate(w, r, req.Address)
}

func (h *LocationHandler) locate(w http.ResponseWriter, r *http.Request, address string) {
	loc, err := services.LocateAddress(r.Context(), address, h.Geo, h.Sun)
	if err != nil {
		h.Errors.Render(w, r, err)
		return
	}

	res := dto.LocationResponse{
		GeographicCoordinates: dto.GeographicCoordinates{
			Latitude:  loc.Coordinates.Lat,
			Longitude: loc.Coordinates.Lon,
		},
		SunriseSunset: dto.SunriseSunset{
			Sunrise: loc.SunriseSunset.Sunrise,
			Sunset:  loc.SunriseSunset.Sunset,
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}
