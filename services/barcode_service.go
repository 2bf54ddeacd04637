package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotADrink marks barcodes that resolve to food products; the water
// tracker only logs beverages.
var ErrNotADrink = errors.New("product is not a beverage")

// BarcodeProduct is the beverage candidate resolved from a barcode.
type BarcodeProduct struct {
	Barcode     string `json:"barcode"`
	Name        string `json:"name"`
	VolumeML    int    `json:"volume_ml"`
	DrinkType   string `json:"drink_type"`
	VolumeFound bool   `json:"volume_found"`
}

type openFoodFactsResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Quantity    string `json:"quantity"`
		Categories  string `json:"categories"`
	} `json:"product"`
}

// BarcodeService looks products up in the Open Food Facts database.
type BarcodeService struct {
	baseURL string
	client  *http.Client
}

func NewBarcodeService() *BarcodeService {
	return &BarcodeService{
		baseURL: "https://world.openfoodfacts.org/api/v0/product",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves a barcode to a beverage with volume and drink type.
func (s *BarcodeService) Lookup(barcode string) (*BarcodeProduct, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s/%s.json", s.baseURL, barcode))
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts error %d: %s", resp.StatusCode, string(body))
	}

	var pr openFoodFactsResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse product JSON: %w", err)
	}
	if pr.Status != 1 {
		return nil, errors.New("product not found")
	}

	combined := pr.Product.Categories + " " + pr.Product.ProductName
	if !isDrinkProduct(combined) {
		return nil, ErrNotADrink
	}

	// Prefer the structured quantity field, fall back to the name.
	volume, found := ExtractVolumeFromText(pr.Product.Quantity)
	if !found {
		volume, found = ExtractVolumeFromText(pr.Product.ProductName)
	}
	if !found {
		volume = 500
	}

	return &BarcodeProduct{
		Barcode:     barcode,
		Name:        pr.Product.ProductName,
		VolumeML:    volume,
		DrinkType:   ClassifyDrinkTitle(combined),
		VolumeFound: found,
	}, nil
}

func isDrinkProduct(text string) bool {
	t := strings.ToLower(text)
	drinkWords := []string{"beverage", "drink", "juice", "water", "soda", "tea", "coffee", "milk"}
	for _, w := range drinkWords {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
