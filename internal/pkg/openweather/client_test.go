package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/config"
)

const forecastBody = `{
  "list": [
    {
      "dt": 1700000000,
      "dt_txt": "2023-11-14 21:00:00",
      "main": {"temp": 27.5, "feels_like": 30.1, "humidity": 78},
      "weather": [{"description": "lluvia ligera", "icon": "10n"}],
      "wind": {"speed": 3.2},
      "rain": {"3h": 0.42}
    },
    {
      "dt": 1700010800,
      "main": {"temp": 25.0, "feels_like": 26.0, "humidity": 80},
      "weather": [],
      "wind": {"speed": 1.1}
    }
  ]
}`

func testConfig(baseURL string) *config.WeatherConfig {
	return &config.WeatherConfig{
		APIKey:  "key",
		BaseURL: baseURL,
		Lat:     11.0708272,
		Lon:     -85.6306396,
		Units:   "metric",
		Lang:    "sp",
		Timeout: time.Second,
	}
}

func TestClient_Forecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "11.0708272", r.URL.Query().Get("lat"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	f, err := c.Forecast(context.Background())
	require.NoError(t, err)

	rows, err := f.ToWeather()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Date(2023, 11, 14, 21, 0, 0, 0, time.UTC), rows[0].Datetime)
	assert.Equal(t, 27.5, rows[0].Temperature)
	assert.Equal(t, 78, rows[0].Humidity)
	assert.Equal(t, "lluvia ligera", rows[0].Description)
	assert.Equal(t, "10n", rows[0].Icon)
	assert.Equal(t, 0.42, rows[0].Rain)

	assert.Equal(t, time.Unix(1700010800, 0).UTC(), rows[1].Datetime)
	assert.Zero(t, rows[1].Rain)
	assert.Empty(t, rows[1].Description)
}

func TestClient_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), srv.Client())
	for i := 0; i < 5; i++ {
		_, err := c.Forecast(context.Background())
		assert.Error(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestForecast_ToWeather_InvalidTimestamp(t *testing.T) {
	f := Forecast{List: []ForecastItem{{DtText: "yesterday"}}}

	_, err := f.ToWeather()
	assert.Error(t, err)
}
