package order

import (
	"context"
	"testing"
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPixFixture(pixKey string) (*DefaultOrderUsecase, *fakeStore) {
	store := newFakeStore()
	store.orders["order-1"] = &domain.Order{
		ID:      "order-1",
		UserID:  "user-1",
		StoreID: "store-1",
		Status:  domain.StatusPending,
		Code:    "ABC123",
		Total:   25.50,
	}

	companies := &fakeCompanyRepo{companies: map[string]*domain.Company{
		"store-1": {
			ID:           "store-1",
			FinalName:    "Loja Teste",
			Street:       "Rua A",
			Number:       "10",
			Neighborhood: "Centro",
			City:         "Sao Paulo",
			State:        "SP",
			CEP:          "01000-000",
			PixKey:       pixKey,
		},
	}}

	repo := &fakeOrderRepo{store: store}
	uc := NewDefaultOrderUsecase(repo, &fakeCartRepo{}, &fakeAddressRepo{}, companies, nil, nil)
	return uc, store
}

func TestGeneratePixCode(t *testing.T) {
	uc, _ := newPixFixture("teste@pix.com")

	before := time.Now().UTC()
	code, err := uc.GeneratePixCode(context.Background(), "order-1", "user-1")
	require.NoError(t, err)

	// Address components upper-joined, amount from the order total,
	// reference from the order code.
	want := "00020126350014BR.GOV.BCB.PIX0113teste@pix.com52040000530398654" +
		"0525.505802BR5910LOJA TESTE6002SP6143RUA A, 10, CENTRO, SAO PAULO," +
		" SP, 01000-00062100506ABC12363047DF1"
	assert.Equal(t, want, code.Payload)

	assert.GreaterOrEqual(t, code.ExpiresAt, before.Add(10*time.Minute).Unix())
	assert.LessOrEqual(t, code.ExpiresAt, time.Now().UTC().Add(10*time.Minute).Unix())
}

func TestGeneratePixCodeNotOwner(t *testing.T) {
	uc, _ := newPixFixture("teste@pix.com")

	_, err := uc.GeneratePixCode(context.Background(), "order-1", "someone-else")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGeneratePixCodeMissingKey(t *testing.T) {
	uc, _ := newPixFixture("")

	_, err := uc.GeneratePixCode(context.Background(), "order-1", "user-1")
	assert.ErrorIs(t, err, domain.ErrMissingPixKey)
}

func TestGeneratePixCodeNotIdempotent(t *testing.T) {
	uc, _ := newPixFixture("teste@pix.com")

	first, err := uc.GeneratePixCode(context.Background(), "order-1", "user-1")
	require.NoError(t, err)
	second, err := uc.GeneratePixCode(context.Background(), "order-1", "user-1")
	require.NoError(t, err)

	// Payload is deterministic for the same order; expiry always tracks
	// the newest call.
	assert.Equal(t, first.Payload, second.Payload)
	assert.GreaterOrEqual(t, second.ExpiresAt, first.ExpiresAt)
}
