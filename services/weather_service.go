package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"
)

// Weather is the subset of the OpenWeatherMap response the hydration
// calculator needs.
type Weather struct {
	Temperature float64 `json:"temperature"` // Celsius
	Humidity    int     `json:"humidity"`    // percent
	Condition   string  `json:"condition"`
	City        string  `json:"city"`
}

type weatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Name string `json:"name"`
}

type cachedWeather struct {
	data      Weather
	fetchedAt time.Time
}

// WeatherService calls the OpenWeatherMap current-weather API with a
// short in-memory cache, since hydration recommendations are requested
// far more often than the weather changes.
type WeatherService struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	cacheTTL time.Duration

	mu    sync.Mutex
	cache map[string]cachedWeather
}

func NewWeatherService() *WeatherService {
	return &WeatherService{
		apiKey:   os.Getenv("OPENWEATHERMAP_API_KEY"),
		baseURL:  "https://api.openweathermap.org/data/2.5/weather",
		client:   &http.Client{Timeout: 10 * time.Second},
		cacheTTL: 30 * time.Minute,
		cache:    make(map[string]cachedWeather),
	}
}

// CurrentByCity fetches current weather for a city name.
func (s *WeatherService) CurrentByCity(city string) (*Weather, error) {
	if city == "" {
		city = "New York"
	}
	return s.current("city:"+city, url.Values{"q": {city}})
}

// CurrentByCoords fetches current weather for a lat/lon pair.
func (s *WeatherService) CurrentByCoords(lat, lon float64) (*Weather, error) {
	key := fmt.Sprintf("latlon:%.3f,%.3f", lat, lon)
	return s.current(key, url.Values{
		"lat": {fmt.Sprintf("%f", lat)},
		"lon": {fmt.Sprintf("%f", lon)},
	})
}

func (s *WeatherService) current(cacheKey string, params url.Values) (*Weather, error) {
	s.mu.Lock()
	if entry, ok := s.cache[cacheKey]; ok && time.Since(entry.fetchedAt) < s.cacheTTL {
		s.mu.Unlock()
		w := entry.data
		return &w, nil
	}
	s.mu.Unlock()

	if s.apiKey == "" {
		return nil, fmt.Errorf("OPENWEATHERMAP_API_KEY not set")
	}

	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	resp, err := s.client.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(body))
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("failed to parse weather JSON: %w", err)
	}

	w := Weather{
		Temperature: wr.Main.Temp,
		Humidity:    wr.Main.Humidity,
		City:        wr.Name,
	}
	if len(wr.Weather) > 0 {
		w.Condition = wr.Weather[0].Main
	}

	s.mu.Lock()
	s.cache[cacheKey] = cachedWeather{data: w, fetchedAt: time.Now()}
	s.mu.Unlock()

	return &w, nil
}

// MockWeather is the fallback when the API is unreachable, so the
// recommendation endpoint keeps working offline.
func MockWeather(city string) *Weather {
	if city == "" {
		city = "New York"
	}
	return &Weather{Temperature: 22, Humidity: 50, Condition: "Clear", City: city}
}
