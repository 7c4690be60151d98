package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
	publisher "github.com/mercadim/marketplace-service/internal/infrastructure/kafka"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransitionFixture(status domain.OrderStatus, stockA, stockB int) (*DefaultOrderUsecase, *fakeOrderRepo, *fakeStore) {
	store := newFakeStore()
	store.products["prod-a"] = &domain.Product{ID: "prod-a", Name: "Café Torrado", StockQuantity: stockA}
	store.products["prod-b"] = &domain.Product{ID: "prod-b", Name: "Açúcar Cristal", StockQuantity: stockB}
	store.orders["order-1"] = &domain.Order{
		ID:      "order-1",
		UserID:  "user-1",
		StoreID: "store-1",
		Status:  status,
		Code:    "AB12CD",
		Total:   61.50,
		Items: []domain.OrderItem{
			{ProductID: "prod-a", Quantity: 3, Price: 12.50},
			{ProductID: "prod-b", Quantity: 2, Price: 12.00},
		},
	}

	repo := &fakeOrderRepo{store: store}
	uc := NewDefaultOrderUsecase(repo, &fakeCartRepo{}, &fakeAddressRepo{}, &fakeCompanyRepo{}, nil, nil)
	return uc, repo, store
}

func transitionInput(status string) *orderdto.TransitionInput {
	return &orderdto.TransitionInput{OrderID: "order-1", NewStatus: status, ActingStoreID: "store-1"}
}

func TestTransitionStockCommitSuccess(t *testing.T) {
	for _, origin := range []domain.OrderStatus{domain.StatusAwaitingConfirmation, domain.StatusPendingPayment} {
		uc, repo, store := newTransitionFixture(origin, 5, 2)

		updated, err := uc.Transition(context.Background(), transitionInput("processing"))
		require.NoError(t, err, "origin %s", origin)

		assert.Equal(t, domain.StatusProcessing, updated.Status)
		assert.Equal(t, domain.StatusProcessing, store.orders["order-1"].Status)
		assert.Equal(t, 2, store.products["prod-a"].StockQuantity)
		assert.Equal(t, 0, store.products["prod-b"].StockQuantity)
		assert.True(t, repo.lastTx.committed)
	}
}

func TestTransitionInsufficientStock(t *testing.T) {
	uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 1)

	_, err := uc.Transition(context.Background(), transitionInput("processing"))

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Açúcar Cristal", stockErr.ProductName)

	// Nothing moved: not the first item's stock, not the status.
	assert.Equal(t, 5, store.products["prod-a"].StockQuantity)
	assert.Equal(t, 1, store.products["prod-b"].StockQuantity)
	assert.Equal(t, domain.StatusAwaitingConfirmation, store.orders["order-1"].Status)
	assert.True(t, repo.lastTx.rolledBack)
	assert.False(t, repo.lastTx.committed)
}

func TestTransitionForbidden(t *testing.T) {
	uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)

	input := transitionInput("processing")
	input.ActingStoreID = "another-store"
	_, err := uc.Transition(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, repo.lastTx)
	assert.Equal(t, 5, store.products["prod-a"].StockQuantity)
	assert.Equal(t, domain.StatusAwaitingConfirmation, store.orders["order-1"].Status)
}

func TestTransitionInvalidStatus(t *testing.T) {
	uc, repo, _ := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)

	_, err := uc.Transition(context.Background(), transitionInput("shipped"))

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Nil(t, repo.lastTx)
}

func TestTransitionPlainStatusWrite(t *testing.T) {
	cases := []struct {
		origin domain.OrderStatus
		target string
	}{
		{domain.StatusProcessing, "ready_for_pickup"},
		{domain.StatusProcessing, "completed"},
		{domain.StatusAwaitingConfirmation, "canceled"},
		// processing requested outside the stock-commit origins: plain write.
		{domain.StatusPending, "processing"},
		{domain.StatusProcessing, "processing"},
	}
	for _, tc := range cases {
		uc, _, store := newTransitionFixture(tc.origin, 5, 2)

		updated, err := uc.Transition(context.Background(), transitionInput(tc.target))
		require.NoError(t, err, "%s -> %s", tc.origin, tc.target)

		assert.Equal(t, domain.OrderStatus(tc.target), updated.Status)
		assert.Equal(t, 5, store.products["prod-a"].StockQuantity, "%s -> %s must not touch stock", tc.origin, tc.target)
		assert.Equal(t, 2, store.products["prod-b"].StockQuantity)
	}
}

func TestTransitionStockDecrementedAtMostOnce(t *testing.T) {
	uc, _, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)

	_, err := uc.Transition(context.Background(), transitionInput("processing"))
	require.NoError(t, err)
	require.Equal(t, 2, store.products["prod-a"].StockQuantity)

	// A second processing request is a plain write now.
	_, err = uc.Transition(context.Background(), transitionInput("processing"))
	require.NoError(t, err)
	assert.Equal(t, 2, store.products["prod-a"].StockQuantity)
	assert.Equal(t, 0, store.products["prod-b"].StockQuantity)
}

func TestTransitionConcurrentCommitWinsOnce(t *testing.T) {
	uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 6, 4)

	// A concurrent request commits the same order to processing between
	// our pre-tx read and the unit opening. The row-locked status read
	// must see processing and treat this request as a plain write.
	repo.txSetup = func(tx *fakeTx) {
		store.orders["order-1"].Status = domain.StatusProcessing
		store.products["prod-a"].StockQuantity = 3
		store.products["prod-b"].StockQuantity = 2
	}

	updated, err := uc.Transition(context.Background(), transitionInput("processing"))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusProcessing, updated.Status)
	assert.Equal(t, 3, store.products["prod-a"].StockQuantity, "stock must not be decremented twice")
	assert.Equal(t, 2, store.products["prod-b"].StockQuantity)
}

func TestTransitionStorageFailure(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("commit fails", func(t *testing.T) {
		uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)
		repo.txSetup = func(tx *fakeTx) { tx.commitErr = boom }

		_, err := uc.Transition(context.Background(), transitionInput("processing"))

		assert.ErrorIs(t, err, domain.ErrTransitionFailed)
		assert.ErrorContains(t, err, "connection reset")
		assert.Equal(t, 5, store.products["prod-a"].StockQuantity)
		assert.Equal(t, domain.StatusAwaitingConfirmation, store.orders["order-1"].Status)
		assert.True(t, repo.lastTx.rolledBack)
	})

	t.Run("status write fails", func(t *testing.T) {
		uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)
		repo.txSetup = func(tx *fakeTx) { tx.updateErr = boom }

		_, err := uc.Transition(context.Background(), transitionInput("processing"))

		assert.ErrorIs(t, err, domain.ErrTransitionFailed)
		assert.Equal(t, 5, store.products["prod-a"].StockQuantity)
		assert.True(t, repo.lastTx.rolledBack)
	})

	t.Run("lock fails", func(t *testing.T) {
		uc, repo, _ := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)
		repo.txSetup = func(tx *fakeTx) { tx.lockErr = boom }

		_, err := uc.Transition(context.Background(), transitionInput("processing"))

		assert.ErrorIs(t, err, domain.ErrTransitionFailed)
		assert.True(t, repo.lastTx.rolledBack)
	})

	t.Run("status lock fails", func(t *testing.T) {
		uc, repo, store := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)
		repo.txSetup = func(tx *fakeTx) { tx.lockStatusErr = boom }

		_, err := uc.Transition(context.Background(), transitionInput("processing"))

		assert.ErrorIs(t, err, domain.ErrTransitionFailed)
		assert.Equal(t, 5, store.products["prod-a"].StockQuantity)
		assert.True(t, repo.lastTx.rolledBack)
	})
}

func TestTransitionPublishesEvent(t *testing.T) {
	uc, _, _ := newTransitionFixture(domain.StatusAwaitingConfirmation, 5, 2)
	port := &fakePublisherPort{published: make(chan domain.Message, 1)}
	uc.Publisher = publisher.NewOrderEventPublisher(port, "order-events")

	_, err := uc.Transition(context.Background(), transitionInput("processing"))
	require.NoError(t, err)

	select {
	case msg := <-port.published:
		var event publisher.OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		assert.Equal(t, "order-1", event.OrderID)
		assert.Equal(t, "processing", event.Status)
		assert.Equal(t, "AB12CD", event.Code)
	case <-time.After(time.Second):
		t.Fatal("no order event published")
	}
}

func TestUpdateClientOrderStatus(t *testing.T) {
	uc, _, store := newTransitionFixture(domain.StatusPending, 5, 2)

	require.NoError(t, uc.UpdateClientOrderStatus(context.Background(), "order-1", domain.StatusAwaitingConfirmation))
	assert.Equal(t, domain.StatusAwaitingConfirmation, store.orders["order-1"].Status)
	// Client path never touches stock.
	assert.Equal(t, 5, store.products["prod-a"].StockQuantity)

	err := uc.UpdateClientOrderStatus(context.Background(), "order-1", domain.OrderStatus("paid"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
