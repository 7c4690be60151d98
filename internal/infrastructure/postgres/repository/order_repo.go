package repository

import (
	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) (string, error) {
	orderModel := models.OrderModel{
		ID:        uuid.New().String(),
		UserID:    order.UserID,
		StoreID:   order.StoreID,
		Status:    order.Status,
		Code:      order.Code,
		Total:     order.Total,
		AddressID: order.AddressID,
	}
	for _, item := range order.Items {
		orderModel.Items = append(orderModel.Items, models.OrderItemModel{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := r.DB.Create(&orderModel).Error; err != nil {
		return "", err
	}

	order.ID = orderModel.ID
	return order.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	err := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Store").
		First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}

	return orderToDomain(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrdersByUserID(userID string) ([]*domain.Order, error) {
	return r.findOrders("user_id = ?", userID)
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(storeID string) ([]*domain.Order, error) {
	return r.findOrders("store_id = ?", storeID)
}

func (r *DefaultOrderRepository) findOrders(query string, arg string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Store").
		Where(query, arg).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, orderToDomain(&orderModels[i]))
	}
	return orders, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus).Error
}

// BeginTx opens the atomic unit of work used by the fulfillment engine.
// Product rows read through it are locked FOR UPDATE until Commit or
// Rollback, so concurrent stock commits on the same product serialize.
func (r *DefaultOrderRepository) BeginTx() (domain.OrderTx, error) {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormOrderTx{tx: tx}, nil
}

type gormOrderTx struct {
	tx *gorm.DB
}

func (t *gormOrderTx) LockOrderStatus(orderID string) (domain.OrderStatus, error) {
	var orderModel models.OrderModel
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "status").
		First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		return "", err
	}
	return orderModel.Status, nil
}

func (t *gormOrderTx) LockProduct(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&productModel, "id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return productToDomain(&productModel), nil
}

func (t *gormOrderTx) DecrementStock(productID string, quantity int) error {
	return t.tx.Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity)).Error
}

func (t *gormOrderTx) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	return t.tx.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus).Error
}

func (t *gormOrderTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *gormOrderTx) Rollback() error {
	return t.tx.Rollback().Error
}

func orderToDomain(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreID:   m.StoreID,
		Status:    m.Status,
		Code:      m.Code,
		Total:     m.Total,
		AddressID: m.AddressID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DriverID != nil {
		order.DriverID = *m.DriverID
	}
	if m.Store.ID != "" {
		order.Store = companyToDomain(&m.Store)
	}
	for i := range m.Items {
		item := domain.OrderItem{
			ID:        m.Items[i].ID,
			OrderID:   m.Items[i].OrderID,
			ProductID: m.Items[i].ProductID,
			Quantity:  m.Items[i].Quantity,
			Price:     m.Items[i].Price,
		}
		if m.Items[i].Product.ID != "" {
			item.Product = productToDomain(&m.Items[i].Product)
		}
		order.Items = append(order.Items, item)
	}
	return order
}
