package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
)

// ExportRow is one water log flattened for export.
type ExportRow struct {
	Timestamp   time.Time `json:"timestamp"`
	AmountML    int       `json:"amount_ml"`
	DrinkType   string    `json:"drink_type"`
	InputMethod string    `json:"input_method"`
	Notes       string    `json:"notes,omitempty"`
}

func exportRows(userID uint, from, to time.Time) ([]ExportRow, error) {
	logs, err := LogsBetween(userID, from, to)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	var types []models.DrinkType
	if err := config.DB.Find(&types).Error; err == nil {
		for _, t := range types {
			names[t.ID] = t.Name
		}
	}

	rows := make([]ExportRow, 0, len(logs))
	for _, l := range logs {
		name := "Water"
		if l.DrinkTypeID != nil {
			if n, ok := names[*l.DrinkTypeID]; ok {
				name = n
			}
		}
		rows = append(rows, ExportRow{
			Timestamp:   l.Timestamp,
			AmountML:    l.Amount,
			DrinkType:   name,
			InputMethod: l.InputMethod,
			Notes:       l.Notes,
		})
	}
	return rows, nil
}

// ExportCSV renders a user's logs in a date range as a CSV document.
func ExportCSV(userID uint, from, to time.Time) ([]byte, error) {
	rows, err := exportRows(userID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"timestamp", "amount_ml", "drink_type", "input_method", "notes"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.Timestamp.Format(time.RFC3339),
			fmt.Sprintf("%d", r.AmountML),
			r.DrinkType,
			r.InputMethod,
			r.Notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON renders the same rows as a JSON array.
func ExportJSON(userID uint, from, to time.Time) ([]byte, error) {
	rows, err := exportRows(userID, from, to)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(rows, "", "  ")
}
