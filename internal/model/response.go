package model

// APIErrorResponse is the body OpenWeatherMap sends with non-2xx statuses.
// Cod is a string for some errors ("404") and a number for others (401).
type APIErrorResponse struct {
	Cod     interface{} `json:"cod"`
	Message *string     `json:"message"`
}
