package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/config"
	"github.com/chiggawigga-max/Command-Line-Interface-CLI-application/internal/model"
	"go.uber.org/zap"
)

// maxErrorBody bounds how much of a non-2xx body is read looking for a message.
const maxErrorBody = 1 << 20

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	FetchWeather(ctx context.Context, city, apiKey string) (*model.OpenWeatherMapResponse, error)
}

// weatherRepository implements WeatherRepository against OpenWeatherMap
type weatherRepository struct {
	apiURL     string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewWeatherRepository creates a new weather repository instance.
// A nil httpClient means http.DefaultClient; a nil logger discards output.
func NewWeatherRepository(apiURL string, httpClient *http.Client, logger *zap.SugaredLogger) WeatherRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &weatherRepository{
		apiURL:     apiURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchWeather sends a single current-weather request for city. Both arguments are
// checked before anything goes on the wire. Errors are one of the types in errors.go.
func (r *weatherRepository) FetchWeather(ctx context.Context, city, apiKey string) (*model.OpenWeatherMapResponse, error) {
	if city == "" {
		return nil, ErrCityMissing
	}
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	req, err := r.newRequest(ctx, city, apiKey)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	r.logger.Debugw("requesting current weather", "city", city, "units", config.Units)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Debugw("request failed", "city", city, "error", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	r.logger.Debugw("upstream responded", "city", city, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return nil, &CityNotFoundError{City: city}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, r.apiError(resp)
	}

	var data model.OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	if err := data.Validate(); err != nil {
		return nil, &UnknownError{Err: err}
	}

	return &data, nil
}

func (r *weatherRepository) newRequest(ctx context.Context, city, apiKey string) (*http.Request, error) {
	u, err := url.Parse(r.apiURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", apiKey)
	q.Set("units", config.Units)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// apiError turns a non-2xx, non-404 response into an APIError. Without a usable
// message field the failure is reported as unknown.
func (r *weatherRepository) apiError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &UnknownError{Err: fmt.Errorf("reading error body: %w", err)}
	}

	var apiErr model.APIErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		r.logger.Debugw("error body is not JSON", "status", resp.StatusCode, "error", err)
		return &UnknownError{Err: fmt.Errorf("status %d: %w", resp.StatusCode, err)}
	}
	if apiErr.Message == nil || *apiErr.Message == "" {
		return &UnknownError{Err: fmt.Errorf("status %d (cod %v) without message", resp.StatusCode, apiErr.Cod)}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: *apiErr.Message}
}

// transportError strips the *url.Error wrapper: its text includes the request URL,
// and with it the appid.
func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return &TransportError{Err: err}
}
