package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/openweather"
)

var ErrWeatherDisabled = errors.New("weather sync is not configured")

type WeatherRepository interface {
	ResourceRepository[domain.Weather]
	Upsert(ctx context.Context, rows []domain.Weather) (int64, error)
}

type ForecastClient interface {
	Forecast(ctx context.Context) (openweather.Forecast, error)
}

type WeatherService struct {
	*ResourceService[domain.Weather]
	repo   WeatherRepository
	client ForecastClient
}

// NewWeatherService accepts a nil client, in which case Sync is disabled.
func NewWeatherService(repo WeatherRepository, client ForecastClient) *WeatherService {
	return &WeatherService{
		ResourceService: NewResourceService[domain.Weather](repo),
		repo:            repo,
		client:          client,
	}
}

// Ingest upserts every forecast slot keyed by its timestamp.
func (s *WeatherService) Ingest(ctx context.Context, f openweather.Forecast) (int64, error) {
	rows, err := f.ToWeather()
	if err != nil {
		return 0, fmt.Errorf("f.ToWeather -> %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	n, err := s.repo.Upsert(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return n, nil
}

// Sync pulls the current forecast and stores it.
func (s *WeatherService) Sync(ctx context.Context) (int64, error) {
	if s.client == nil {
		return 0, ErrWeatherDisabled
	}

	f, err := s.client.Forecast(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.client.Forecast -> %w", err)
	}

	return s.Ingest(ctx, f)
}
