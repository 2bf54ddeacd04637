package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"backend/utils"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Label text talks in printed units (fl oz), so this table is separate
// from the utterance parser's vocabulary.
var labelVolumePatterns = []struct {
	re       *regexp.Regexp
	factorML float64
}{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*ml`), 1},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*l(?:iter)?s?\b`), 1000},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*fl\s*\.?\s*oz`), 29.5735},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*oz`), 29.5735},
}

// ExtractVolumeFromText pulls a printed volume ("500ml", "1.5L",
// "16 fl oz") out of label or product text.
func ExtractVolumeFromText(text string) (int, bool) {
	for _, p := range labelVolumePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil || value <= 0 {
				continue
			}
			return int(math.Round(value * p.factorML)), true
		}
	}
	return 0, false
}

// ClassifyDrinkTitle maps product/label text to a seeded DrinkType
// name. Brands are checked before generic terms; Pepsi keeps its own
// catalog entry, every other soda brand folds into Soda.
func ClassifyDrinkTitle(title string) string {
	t := strings.ToLower(title)

	anyOf := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(t, w) {
				return true
			}
		}
		return false
	}

	switch {
	case anyOf("pepsi"):
		return "Pepsi"
	case anyOf("coca-cola", "coca cola", "coke", "sprite", "fanta", "mountain dew", "dr pepper"):
		return "Soda"
	case anyOf("soda", "cola", "carbonated", "soft drink"):
		return "Soda"
	case anyOf("water", "aqua", "h2o"):
		return "Water"
	case anyOf("tea"):
		return "Tea"
	case anyOf("coffee", "espresso", "latte", "cappuccino"):
		return "Coffee"
	case anyOf("juice", "orange", "apple", "grape", "cranberry"):
		return "Juice"
	case anyOf("milk", "dairy", "lactose"):
		return "Milk"
	default:
		return "Water"
	}
}

// LabelResult is the OCR candidate shown to the user before they
// confirm the log entry.
type LabelResult struct {
	Text      string `json:"text"`
	VolumeML  int    `json:"volume_ml"`
	DrinkType string `json:"drink_type"`
	// VolumeFound is false when the 500 ml default was applied.
	VolumeFound bool `json:"volume_found"`
}

// ReadLabel runs Rekognition text detection over a bottle/can photo
// and extracts the printed volume and drink type.
func ReadLabel(imageBytes []byte) (*LabelResult, error) {
	out, err := utils.RekClient().DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &rektypes.Image{Bytes: imageBytes},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect label text: %w", err)
	}

	var lines []string
	for _, d := range out.TextDetections {
		if d.Type == rektypes.TextTypesLine && d.DetectedText != nil {
			lines = append(lines, *d.DetectedText)
		}
	}
	text := strings.Join(lines, " ")

	volume, found := ExtractVolumeFromText(text)
	if !found {
		volume = 500 // typical bottle when the label gives nothing away
	}

	return &LabelResult{
		Text:        text,
		VolumeML:    volume,
		DrinkType:   ClassifyDrinkTitle(text),
		VolumeFound: found,
	}, nil
}
