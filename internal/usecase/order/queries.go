package order

import "github.com/mercadim/marketplace-service/internal/domain"

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersByUserID(userID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByUserID(userID)
}

func (uc *DefaultOrderUsecase) GetOrdersByStoreID(storeID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByStoreID(storeID)
}
