package openweather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/domain"
)

// Forecast is the subset of the 5 day / 3 hour forecast payload we store.
type Forecast struct {
	List []ForecastItem `json:"list"`
}

type ForecastItem struct {
	Dt     int64  `json:"dt"`
	DtText string `json:"dt_txt"`
	Main   struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain,omitempty"`
}

const dtTextLayout = "2006-01-02 15:04:05"

// ToWeather flattens the forecast into one row per timestamp.
func (f Forecast) ToWeather() ([]domain.Weather, error) {
	rows := make([]domain.Weather, 0, len(f.List))
	for _, item := range f.List {
		at, err := item.time()
		if err != nil {
			return nil, err
		}

		w := domain.Weather{
			Datetime:    at,
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			Rain:        item.Rain["3h"],
		}
		if len(item.Weather) > 0 {
			w.Description = item.Weather[0].Description
			w.Icon = item.Weather[0].Icon
		}
		rows = append(rows, w)
	}

	return rows, nil
}

func (i ForecastItem) time() (time.Time, error) {
	if i.DtText != "" {
		t, err := time.ParseInLocation(dtTextLayout, i.DtText, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid dt_txt %q -> %w", i.DtText, err)
		}
		return t, nil
	}
	if i.Dt > 0 {
		return time.Unix(i.Dt, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("forecast item without timestamp")
}

// Client calls the OpenWeather API. Calls go through a circuit breaker so a
// failing upstream does not stall the scheduled refresh.
type Client struct {
	http    *http.Client
	conf    *config.WeatherConfig
	breaker *gobreaker.CircuitBreaker[Forecast]
}

func NewClient(conf *config.WeatherConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: conf.Timeout}
	}

	return &Client{
		http: httpClient,
		conf: conf,
		breaker: gobreaker.NewCircuitBreaker[Forecast](gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 1,
			Timeout:     5 * time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				zap.L().Warn("circuit breaker state changed",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

func (c *Client) Forecast(ctx context.Context) (Forecast, error) {
	return c.breaker.Execute(func() (Forecast, error) {
		return c.fetch(ctx)
	})
}

func (c *Client) fetch(ctx context.Context) (Forecast, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.conf.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.conf.Lon, 'f', -1, 64))
	q.Set("appid", c.conf.APIKey)
	q.Set("units", c.conf.Units)
	q.Set("lang", c.conf.Lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.conf.BaseURL+"/forecast?"+q.Encode(), nil)
	if err != nil {
		return Forecast{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Forecast{}, fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Forecast{}, fmt.Errorf("openweather responded %d", resp.StatusCode)
	}

	var f Forecast
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return Forecast{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return f, nil
}
