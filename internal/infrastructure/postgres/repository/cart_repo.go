package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCartRepository struct {
	DB *gorm.DB
}

func NewDefaultCartRepository(db *gorm.DB) *DefaultCartRepository {
	return &DefaultCartRepository{DB: db}
}

func (r *DefaultCartRepository) GetCartByOwner(userID, companyID string) (*domain.Cart, error) {
	query := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Preload("Items.Variations")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	} else {
		query = query.Where("company_id = ?", companyID)
	}

	var cartModel models.CartModel
	err := query.First(&cartModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return cartToDomain(&cartModel), nil
}

func (r *DefaultCartRepository) CreateCart(cart *domain.Cart) (string, error) {
	cartModel := models.CartModel{ID: uuid.New().String()}
	if cart.UserID != "" {
		cartModel.UserID = &cart.UserID
	}
	if cart.CompanyID != "" {
		cartModel.CompanyID = &cart.CompanyID
	}

	if err := r.DB.Create(&cartModel).Error; err != nil {
		return "", err
	}

	cart.ID = cartModel.ID
	return cart.ID, nil
}

func (r *DefaultCartRepository) DeleteCart(cartID string) error {
	return r.DB.Delete(&models.CartModel{}, "id = ?", cartID).Error
}

// FindItem matches an item by product and exact variation set: same
// variation count and every id present.
func (r *DefaultCartRepository) FindItem(cartID, productID string, variationIDs []string) (*domain.CartItem, error) {
	var itemModels []models.CartItemModel
	err := r.DB.
		Preload("Variations").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	for i := range itemModels {
		if sameVariationSet(itemModels[i].Variations, variationIDs) {
			item := cartItemToDomain(&itemModels[i])
			return &item, nil
		}
	}
	return nil, nil
}

func sameVariationSet(variations []models.ProductVariationModel, ids []string) bool {
	if len(variations) != len(ids) {
		return false
	}
	have := make(map[string]bool, len(variations))
	for _, v := range variations {
		have[v.ID] = true
	}
	for _, id := range ids {
		if !have[id] {
			return false
		}
	}
	return true
}

func (r *DefaultCartRepository) AddItem(item *domain.CartItem) (string, error) {
	itemModel := models.CartItemModel{
		ID:        uuid.New().String(),
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
	for _, v := range item.Variations {
		itemModel.Variations = append(itemModel.Variations, models.ProductVariationModel{ID: v.ID})
	}

	if err := r.DB.Create(&itemModel).Error; err != nil {
		return "", err
	}

	item.ID = itemModel.ID
	return item.ID, nil
}

func (r *DefaultCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	return r.DB.Model(&models.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *DefaultCartRepository) RemoveItem(itemID string) error {
	return r.DB.Delete(&models.CartItemModel{}, "id = ?", itemID).Error
}

func (r *DefaultCartRepository) GetItemByID(itemID string) (*domain.CartItem, error) {
	var itemModel models.CartItemModel
	err := r.DB.
		Preload("Product").
		Preload("Variations").
		First(&itemModel, "id = ?", itemID).Error
	if err != nil {
		return nil, err
	}

	item := cartItemToDomain(&itemModel)
	return &item, nil
}

func (r *DefaultCartRepository) CountItems(cartID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.CartItemModel{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error
	return count, err
}

func cartToDomain(m *models.CartModel) *domain.Cart {
	cart := &domain.Cart{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.UserID != nil {
		cart.UserID = *m.UserID
	}
	if m.CompanyID != nil {
		cart.CompanyID = *m.CompanyID
	}
	for i := range m.Items {
		cart.Items = append(cart.Items, cartItemToDomain(&m.Items[i]))
	}
	return cart
}

func cartItemToDomain(m *models.CartItemModel) domain.CartItem {
	item := domain.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
	if m.Product.ID != "" {
		item.Product = productToDomain(&m.Product)
	}
	for _, v := range m.Variations {
		item.Variations = append(item.Variations, domain.ProductVariation{
			ID:        v.ID,
			ProductID: v.ProductID,
			Type:      v.Type,
			Value:     v.Value,
		})
	}
	return item
}
