package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// TipsService asks a hosted language model for personalized hydration
// tips based on what the user drank today.
type TipsService struct {
	client *http.Client
	token  string
	model  string
}

func NewTipsService() *TipsService {
	return &TipsService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// GetTips summarizes today's intake and asks HF for suggestions.
func (t *TipsService) GetTips(userID uint, dailyGoal int) ([]string, error) {
	if t.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	total, effective, err := TodayIntake(userID)
	if err != nil {
		return nil, fmt.Errorf("db error fetching intake: %w", err)
	}
	breakdown, err := drinkBreakdown(userID, 1)
	if err != nil {
		return nil, fmt.Errorf("db error fetching breakdown: %w", err)
	}

	var sb bytes.Buffer
	sb.WriteString("Today's drinks:\n")
	if len(breakdown) == 0 {
		sb.WriteString("- (nothing logged yet)\n")
	} else {
		for _, b := range breakdown {
			sb.WriteString(fmt.Sprintf("- %s: %d ml over %d servings\n", b.DrinkType, b.TotalML, b.Count))
		}
	}
	sb.WriteString(fmt.Sprintf(
		"\nTotal: %d ml (%.0f ml hydration-effective) of a %d ml daily goal.\n",
		total, effective, dailyGoal,
	))
	sb.WriteString("Suggest 3-5 short, practical hydration tips for the rest of the day. Return plain bullet points.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 128,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", t.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")
	// Ask HF to load cold models instead of returning a loading error.
	req.Header.Set("x-wait-for-model", "true")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("decode hf response error: %v | body: %s", err, preview)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return nil, fmt.Errorf("empty tips from hf")
	}

	var tips []string
	for _, line := range strings.Split(hfOut[0].GeneratedText, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-•* \t")
		if line != "" {
			tips = append(tips, line)
		}
	}
	return tips, nil
}
