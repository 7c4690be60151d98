package cep

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViaCEPServer(t *testing.T, body string, status int) (*ViaCEPClient, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewViaCEPClient(server.URL), &paths
}

const viaCEPBody = `{
	"cep": "01001-000",
	"logradouro": "Praça da Sé",
	"bairro": "Sé",
	"localidade": "São Paulo",
	"uf": "SP"
}`

func TestLookupMapsFields(t *testing.T) {
	client, _ := newViaCEPServer(t, viaCEPBody, http.StatusOK)

	address, err := client.Lookup("01001000")
	require.NoError(t, err)

	assert.Equal(t, "01001-000", address.CEP)
	assert.Equal(t, "Praça da Sé", address.Street)
	assert.Equal(t, "Sé", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestLookupNormalizesInput(t *testing.T) {
	client, paths := newViaCEPServer(t, viaCEPBody, http.StatusOK)

	// Formatted and bare inputs resolve to the same upstream path.
	for _, raw := range []string{"01001-000", "01001000", " 01001-000 "} {
		_, err := client.Lookup(raw)
		require.NoError(t, err, "input %q", raw)
	}

	require.Len(t, *paths, 3)
	for _, p := range *paths {
		assert.Equal(t, "/01001000/json/", p)
	}
}

func TestLookupRejectsInvalidInput(t *testing.T) {
	client, paths := newViaCEPServer(t, viaCEPBody, http.StatusOK)

	for _, raw := range []string{"", "0100100", "010010001", "abcdefgh"} {
		_, err := client.Lookup(raw)
		assert.ErrorIs(t, err, ErrInvalidCEP, "input %q", raw)
	}

	// Invalid codes never reach the upstream.
	assert.Empty(t, *paths)
}

func TestLookupNotFound(t *testing.T) {
	cases := map[string]string{
		"boolean erro": `{"erro": true}`,
		"string erro":  `{"erro": "true"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client, _ := newViaCEPServer(t, body, http.StatusOK)

			_, err := client.Lookup("99999999")
			assert.ErrorIs(t, err, ErrCEPNotFound)
		})
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	client, _ := newViaCEPServer(t, "too many requests", http.StatusTooManyRequests)

	_, err := client.Lookup("01001000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCEPNotFound)
	assert.ErrorContains(t, err, "429")
}
