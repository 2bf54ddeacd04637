package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ActivitySummary is one day of metrics normalized across platforms.
type ActivitySummary struct {
	Date           time.Time
	Steps          int
	DistanceMeters float64
	CaloriesBurned int
	ActiveMinutes  int
	HeartRateAvg   int
}

// FitnessClient fetches a day's activity from one platform.
type FitnessClient interface {
	DailyActivity(accessToken string, date time.Time) (*ActivitySummary, error)
}

// NewFitnessClient returns the client for a platform name.
func NewFitnessClient(platform string) (FitnessClient, error) {
	switch platform {
	case "google_fit":
		return &GoogleFitClient{client: &http.Client{Timeout: 30 * time.Second}}, nil
	case "fitbit":
		return &FitbitClient{client: &http.Client{Timeout: 30 * time.Second}}, nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}

// GoogleFitClient reads daily buckets from the fitness aggregate API.
type GoogleFitClient struct {
	client *http.Client
}

type googleAggregateResponse struct {
	Bucket []struct {
		Dataset []struct {
			DataSourceID string `json:"dataSourceId"`
			Point        []struct {
				Value []struct {
					IntVal float64 `json:"intVal"`
					FpVal  float64 `json:"fpVal"`
				} `json:"value"`
			} `json:"point"`
		} `json:"dataset"`
	} `json:"bucket"`
}

func (g *GoogleFitClient) DailyActivity(accessToken string, date time.Time) (*ActivitySummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	payload := map[string]interface{}{
		"aggregateBy": []map[string]string{
			{"dataTypeName": "com.google.step_count.delta"},
			{"dataTypeName": "com.google.distance.delta"},
			{"dataTypeName": "com.google.calories.expended"},
			{"dataTypeName": "com.google.active_minutes"},
			{"dataTypeName": "com.google.heart_rate.bpm"},
		},
		"bucketByTime":   map[string]int64{"durationMillis": 86400000},
		"startTimeMillis": start.UnixMilli(),
		"endTimeMillis":   end.UnixMilli(),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aggregate payload: %w", err)
	}

	req, err := http.NewRequest("POST",
		"https://www.googleapis.com/fitness/v1/users/me/dataset:aggregate",
		bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create aggregate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Google Fit: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Google Fit response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google fit API error %d: %s", resp.StatusCode, string(body))
	}

	var ar googleAggregateResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("failed to parse Google Fit JSON: %w", err)
	}

	summary := &ActivitySummary{Date: start}
	var hrSum, hrCount float64
	for _, bucket := range ar.Bucket {
		for _, ds := range bucket.Dataset {
			for _, p := range ds.Point {
				for _, v := range p.Value {
					switch {
					case strings.Contains(ds.DataSourceID, "step_count"):
						summary.Steps += int(v.IntVal)
					case strings.Contains(ds.DataSourceID, "distance"):
						summary.DistanceMeters += v.FpVal
					case strings.Contains(ds.DataSourceID, "calories"):
						summary.CaloriesBurned += int(v.FpVal)
					case strings.Contains(ds.DataSourceID, "active_minutes"):
						summary.ActiveMinutes += int(v.IntVal)
					case strings.Contains(ds.DataSourceID, "heart_rate"):
						hrSum += v.FpVal
						hrCount++
					}
				}
			}
		}
	}
	if hrCount > 0 {
		summary.HeartRateAvg = int(hrSum / hrCount)
	}
	return summary, nil
}

// FitbitClient reads the daily activity summary endpoint.
type FitbitClient struct {
	client *http.Client
}

type fitbitActivityResponse struct {
	Summary struct {
		Steps               int     `json:"steps"`
		CaloriesOut         int     `json:"caloriesOut"`
		FairlyActiveMinutes int     `json:"fairlyActiveMinutes"`
		VeryActiveMinutes   int     `json:"veryActiveMinutes"`
		RestingHeartRate    int     `json:"restingHeartRate"`
		Distances           []struct {
			Activity string  `json:"activity"`
			Distance float64 `json:"distance"` // km
		} `json:"distances"`
	} `json:"summary"`
}

func (f *FitbitClient) DailyActivity(accessToken string, date time.Time) (*ActivitySummary, error) {
	u := fmt.Sprintf("https://api.fitbit.com/1/user/-/activities/date/%s.json",
		date.Format("2006-01-02"))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Fitbit: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Fitbit response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fitbit API error %d: %s", resp.StatusCode, string(body))
	}

	var fr fitbitActivityResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, fmt.Errorf("failed to parse Fitbit JSON: %w", err)
	}

	summary := &ActivitySummary{
		Date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Steps:          fr.Summary.Steps,
		CaloriesBurned: fr.Summary.CaloriesOut,
		ActiveMinutes:  fr.Summary.FairlyActiveMinutes + fr.Summary.VeryActiveMinutes,
		HeartRateAvg:   fr.Summary.RestingHeartRate,
	}
	for _, d := range fr.Summary.Distances {
		if d.Activity == "total" {
			summary.DistanceMeters = d.Distance * 1000
		}
	}
	return summary, nil
}
