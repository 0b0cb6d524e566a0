package service

import (
	"context"

	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/model"
	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/repository"
	"go.uber.org/zap"
)

// WeatherService turns an upstream response into a report for one city.
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
	APIKey      string
	Logger      *zap.SugaredLogger
}

func NewWeatherService(repo repository.WeatherRepository, apiKey string, logger *zap.SugaredLogger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherService{
		WeatherRepo: repo,
		APIKey:      apiKey,
		Logger:      logger,
	}
}

// GetReport fetches the current weather for city. Errors from the repository are
// returned unwrapped so callers can match on their type.
func (s *WeatherService) GetReport(ctx context.Context, city string) (*model.WeatherReport, error) {
	data, err := s.WeatherRepo.FetchWeather(ctx, city, s.APIKey)
	if err != nil {
		s.Logger.Debugw("weather lookup failed", "city", city, "error", err)
		return nil, err
	}

	report := model.NewWeatherReport(city, data)
	s.Logger.Debugw("weather lookup succeeded", "city", city, "resolved", data.Name, "temperature", report.Temperature)
	return report, nil
}
