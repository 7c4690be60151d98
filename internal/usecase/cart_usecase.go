package usecase

import (
	"fmt"

	"github.com/mercadim/marketplace-service/internal/domain"
)

type CartUsecase interface {
	GetCart(userID, companyID string) (*domain.Cart, error)
	AddProducts(userID, companyID string, products []AddCartProduct) (*domain.Cart, error)
	RemoveItem(userID, companyID, itemID string) error
	IncrementItem(itemID string) error
	DecrementItem(itemID string) error
}

type AddCartProduct struct {
	ProductID    string
	Quantity     int
	VariationIDs []string
}

type DefaultCartUsecase struct {
	CartRepo    domain.CartRepository
	ProductRepo domain.ProductRepository
}

func NewDefaultCartUsecase(cartRepo domain.CartRepository, productRepo domain.ProductRepository) *DefaultCartUsecase {
	return &DefaultCartUsecase{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	}
}

func (uc *DefaultCartUsecase) GetCart(userID, companyID string) (*domain.Cart, error) {
	return uc.CartRepo.GetCartByOwner(userID, companyID)
}

// AddProducts adds items to the owner's open cart, creating it when
// absent. An item matching an existing product and variation set merges
// quantities; the merged quantity must stay within product stock.
func (uc *DefaultCartUsecase) AddProducts(userID, companyID string, products []AddCartProduct) (*domain.Cart, error) {
	cart, err := uc.CartRepo.GetCartByOwner(userID, companyID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{UserID: userID, CompanyID: companyID}
		cartID, err := uc.CartRepo.CreateCart(cart)
		if err != nil {
			return nil, err
		}
		cart.ID = cartID
	}

	for _, p := range products {
		product, err := uc.ProductRepo.GetProductByID(p.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", p.ProductID, err)
		}

		existing, err := uc.CartRepo.FindItem(cart.ID, p.ProductID, p.VariationIDs)
		if err != nil {
			return nil, err
		}

		newQuantity := p.Quantity
		if existing != nil {
			newQuantity += existing.Quantity
		}

		if product.StockQuantity < newQuantity {
			return nil, &domain.InsufficientStockError{ProductName: product.Name}
		}

		if existing != nil {
			if err := uc.CartRepo.UpdateItemQuantity(existing.ID, newQuantity); err != nil {
				return nil, err
			}
			continue
		}

		item := &domain.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  p.Quantity,
			Price:     product.Price,
		}
		for _, vid := range p.VariationIDs {
			item.Variations = append(item.Variations, domain.ProductVariation{ID: vid})
		}
		if _, err := uc.CartRepo.AddItem(item); err != nil {
			return nil, err
		}
	}

	return uc.CartRepo.GetCartByOwner(userID, companyID)
}

func (uc *DefaultCartUsecase) RemoveItem(userID, companyID, itemID string) error {
	cart, err := uc.CartRepo.GetCartByOwner(userID, companyID)
	if err != nil {
		return err
	}
	if cart == nil {
		return domain.ErrCartNotFound
	}

	item, err := uc.CartRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}
	if item.CartID != cart.ID {
		return domain.ErrForbidden
	}

	if err := uc.CartRepo.RemoveItem(itemID); err != nil {
		return err
	}

	remaining, err := uc.CartRepo.CountItems(cart.ID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return uc.CartRepo.DeleteCart(cart.ID)
	}
	return nil
}

func (uc *DefaultCartUsecase) IncrementItem(itemID string) error {
	item, err := uc.CartRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}
	return uc.CartRepo.UpdateItemQuantity(itemID, item.Quantity+1)
}

// DecrementItem lowers the quantity; at one it removes the item instead.
func (uc *DefaultCartUsecase) DecrementItem(itemID string) error {
	item, err := uc.CartRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}
	if item.Quantity > 1 {
		return uc.CartRepo.UpdateItemQuantity(itemID, item.Quantity-1)
	}
	return uc.CartRepo.RemoveItem(itemID)
}
