package model

import (
	"fmt"
	"math"
)

// WeatherReport is the rendered summary for one city.
type WeatherReport struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
}

// NewWeatherReport builds a report from a validated upstream response.
// City is the query as typed by the user, not the name the upstream resolved it to.
func NewWeatherReport(city string, data *OpenWeatherMapResponse) *WeatherReport {
	return &WeatherReport{
		City:        city,
		Temperature: RoundTemperature(data.Temperature()),
		Description: data.Description(),
	}
}

// RoundTemperature rounds half up: 15.5 -> 16, -2.5 -> -2.
func RoundTemperature(t float64) int {
	return int(math.Floor(t + 0.5))
}

func (r WeatherReport) String() string {
	return fmt.Sprintf("Weather in %s: %d°C, %s", r.City, r.Temperature, r.Description)
}
