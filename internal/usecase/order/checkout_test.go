package order

import (
	"context"
	"testing"

	"github.com/mercadim/marketplace-service/internal/domain"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture() (*DefaultOrderUsecase, *fakeOrderRepo, *fakeCartRepo) {
	store := newFakeStore()
	repo := &fakeOrderRepo{store: store}

	carts := &fakeCartRepo{cart: &domain.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: []domain.CartItem{
			{
				ID:        "item-1",
				ProductID: "prod-a",
				Quantity:  2,
				Price:     12.50,
				Product:   &domain.Product{ID: "prod-a", CompanyID: "store-1", Name: "Café Torrado", Price: 12.50, StockQuantity: 5},
			},
			{
				ID:        "item-2",
				ProductID: "prod-b",
				Quantity:  1,
				Price:     8.00,
				Product:   &domain.Product{ID: "prod-b", CompanyID: "store-1", Name: "Açúcar Cristal", Price: 8.00, StockQuantity: 3},
			},
		},
	}}

	addresses := &fakeAddressRepo{addresses: map[string]*domain.Address{
		"addr-1": {ID: "addr-1", UserID: "user-1", Line: "Rua B, 20"},
	}}

	uc := NewDefaultOrderUsecase(repo, carts, addresses, &fakeCompanyRepo{}, nil, nil)
	return uc, repo, carts
}

func TestCheckout(t *testing.T) {
	uc, repo, carts := newCheckoutFixture()

	order, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "addr-1",
		Total:     33.00,
		Items: []orderdto.CheckoutItem{
			{ProductID: "prod-a", Quantity: 2},
			{ProductID: "prod-b", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "store-1", order.StoreID)
	assert.Equal(t, 33.00, order.Total)
	assert.Len(t, order.Code, 6)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 12.50, order.Items[0].Price)
	assert.Equal(t, "cart-1", carts.deletedCart)

	// Checkout never decrements stock; that happens on the store's
	// acceptance transition.
	stored := repo.store.orders[order.ID]
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCheckoutAppliesRequestedQuantities(t *testing.T) {
	uc, _, _ := newCheckoutFixture()

	order, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "addr-1",
		Total:     45.50,
		Items:     []orderdto.CheckoutItem{{ProductID: "prod-a", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	uc, _, carts := newCheckoutFixture()

	_, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "addr-1",
		Total:     100,
		Items:     []orderdto.CheckoutItem{{ProductID: "prod-b", Quantity: 4}},
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Açúcar Cristal", stockErr.ProductName)
	assert.Empty(t, carts.deletedCart)
}

func TestCheckoutRejectsCartSpanningStores(t *testing.T) {
	uc, repo, carts := newCheckoutFixture()
	carts.cart.Items[1].Product.CompanyID = "store-2"

	_, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "addr-1",
		Total:     33.00,
	})

	assert.ErrorIs(t, err, domain.ErrCartMixedStores)
	assert.Empty(t, repo.store.orders)
	assert.Empty(t, carts.deletedCart)
}

func TestCheckoutInvalidAddress(t *testing.T) {
	uc, _, _ := newCheckoutFixture()

	_, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "someone-elses-address",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, _, carts := newCheckoutFixture()
	carts.cart = nil

	_, err := uc.Checkout(context.Background(), &orderdto.CheckoutInput{
		UserID:    "user-1",
		AddressID: "addr-1",
	})
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}
