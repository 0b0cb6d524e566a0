package repository

import "fmt"

// ConfigurationError is a local precondition failure; no request was sent.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

var (
	ErrCityMissing   = &ConfigurationError{Message: `Please provide a city name. Usage: weather "city name"`}
	ErrAPIKeyMissing = &ConfigurationError{Message: "API key not found. Please set OPENWEATHERMAP_API_KEY in .env file"}
)

// CityNotFoundError is returned when the upstream answers 404.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return `City "` + e.City + `" not found`
}

// APIError is any other non-2xx answer that carried a message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError means no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UnknownError covers everything else, including bodies that do not match the schema.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	if e.Err == nil {
		return "unexpected error"
	}
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
