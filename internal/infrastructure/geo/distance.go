package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleDistanceClient resolves road distances through the Distance
// Matrix API. Satisfies usecase.DistanceCalculator.
type GoogleDistanceClient struct {
	APIKey  string
	BaseURL string
}

func NewGoogleDistanceClient(apiKey, baseURL string) *GoogleDistanceClient {
	if baseURL == "" {
		baseURL = defaultMatrixURL
	}
	return &GoogleDistanceClient{APIKey: apiKey, BaseURL: baseURL}
}

func (c *GoogleDistanceClient) DistanceKm(origin, destination string) (float64, error) {
	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("key", c.APIKey)

	response, err := http.Get(c.BaseURL + "?" + query.Encode())
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return 0, fmt.Errorf("distance matrix returned status %d", response.StatusCode)
	}

	var matrix matrixResponse
	if err := json.Unmarshal(responseBodyBytes, &matrix); err != nil {
		return 0, err
	}
	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix returned no route: %s", matrix.Status)
	}

	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status: %s", element.Status)
	}
	return float64(element.Distance.Meters) / 1000.0, nil
}
