package dto

type LocationRequest struct {
	Address string `json:"address"`
}

type GeographicCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SunriseSunset struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type LocationResponse struct {
	GeographicCoordinates GeographicCoordinates `json:"geographicCoordinates"`
	SunriseSunset         SunriseSunset         `json:"sunriseSunset"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
