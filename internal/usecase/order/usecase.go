package order

import (
	"context"

	"github.com/mercadim/marketplace-service/internal/domain"
	publisher "github.com/mercadim/marketplace-service/internal/infrastructure/kafka"
	"github.com/mercadim/marketplace-service/internal/infrastructure/metrics"
	"github.com/mercadim/marketplace-service/internal/pix"
	orderdto "github.com/mercadim/marketplace-service/internal/usecase/dto/order"
)

type Usecase interface {
	Checkout(ctx context.Context, input *orderdto.CheckoutInput) (*domain.Order, error)
	Transition(ctx context.Context, input *orderdto.TransitionInput) (*domain.Order, error)
	UpdateClientOrderStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) error
	GeneratePixCode(ctx context.Context, orderID, actingUserID string) (pix.GeneratedCode, error)

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrdersByUserID(userID string) ([]*domain.Order, error)
	GetOrdersByStoreID(storeID string) ([]*domain.Order, error)
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	CartRepo    domain.CartRepository
	AddressRepo domain.AddressRepository
	CompanyRepo domain.CompanyRepository
	Publisher   *publisher.OrderEventPublisher
	Metrics     *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	cartRepo domain.CartRepository,
	addressRepo domain.AddressRepository,
	companyRepo domain.CompanyRepository,
	orderPublisher *publisher.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		CartRepo:    cartRepo,
		AddressRepo: addressRepo,
		CompanyRepo: companyRepo,
		Publisher:   orderPublisher,
		Metrics:     orderMetrics,
	}
}
