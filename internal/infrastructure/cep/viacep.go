package cep

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const defaultViaCEPURL = "https://viacep.com.br/ws"

var (
	ErrInvalidCEP  = errors.New("cep must have 8 digits")
	ErrCEPNotFound = errors.New("cep not found")
)

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type viaCEPResponse struct {
	CEP          string     `json:"cep"`
	Street       string     `json:"logradouro"`
	Neighborhood string     `json:"bairro"`
	City         string     `json:"localidade"`
	State        string     `json:"uf"`
	Erro         viaCEPFlag `json:"erro"`
}

// viaCEPFlag tolerates both encodings the upstream emits for "erro":
// the documented boolean true and the string "true" seen in production.
type viaCEPFlag bool

func (f *viaCEPFlag) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return fmt.Errorf("viacep erro field: %w", err)
	}
	*f = viaCEPFlag(v)
	return nil
}

type ViaCEPClient struct {
	BaseURL string
}

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	if baseURL == "" {
		baseURL = defaultViaCEPURL
	}
	return &ViaCEPClient{BaseURL: baseURL}
}

// Lookup resolves a Brazilian postal code. Non-digits are stripped
// before validation, so "01001-000" and "01001000" are the same code.
func (c *ViaCEPClient) Lookup(rawCEP string) (*Address, error) {
	digits := normalize(rawCEP)
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	response, err := http.Get(fmt.Sprintf("%s/%s/json/", c.BaseURL, digits))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("viacep returned status %d", response.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.Unmarshal(responseBodyBytes, &payload); err != nil {
		return nil, err
	}
	if payload.Erro {
		return nil, fmt.Errorf("%w: %s", ErrCEPNotFound, digits)
	}

	return &Address{
		CEP:          payload.CEP,
		Street:       payload.Street,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
	}, nil
}

func normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
