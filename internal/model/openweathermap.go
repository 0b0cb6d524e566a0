package model

import "errors"

// OpenWeatherMapResponse is the subset of the "current weather" payload the CLI reads.
// Temp and Description are pointers so that an absent field can be told apart from a zero value.
type OpenWeatherMapResponse struct {
	Name    string        `json:"name"`
	Main    *MainReadings `json:"main"`
	Weather []Condition   `json:"weather"`
}

type MainReadings struct {
	Temp      *float64 `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	TempMin   float64  `json:"temp_min"`
	TempMax   float64  `json:"temp_max"`
	Pressure  int      `json:"pressure"`
	Humidity  int      `json:"humidity"`
}

type Condition struct {
	ID          int     `json:"id"`
	Main        string  `json:"main"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
}

var (
	ErrMissingTemperature = errors.New("response has no main.temp")
	ErrMissingConditions  = errors.New("response has no weather entries")
	ErrMissingDescription = errors.New("response has no weather[0].description")
)

// Validate checks the fields the report is built from.
func (r *OpenWeatherMapResponse) Validate() error {
	if r.Main == nil || r.Main.Temp == nil {
		return ErrMissingTemperature
	}
	if len(r.Weather) == 0 {
		return ErrMissingConditions
	}
	if r.Weather[0].Description == nil {
		return ErrMissingDescription
	}
	return nil
}

// Temperature returns main.temp. Call Validate first.
func (r *OpenWeatherMapResponse) Temperature() float64 {
	return *r.Main.Temp
}

// Description returns weather[0].description. Call Validate first.
func (r *OpenWeatherMapResponse) Description() string {
	return *r.Weather[0].Description
}
