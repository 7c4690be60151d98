package usecase

import (
	"math"

	"github.com/mercadim/marketplace-service/internal/domain"
)

// DistanceCalculator resolves the road distance in kilometers between two
// free-form addresses. Implemented by the geo infrastructure client.
type DistanceCalculator interface {
	DistanceKm(origin, destination string) (float64, error)
}

type DeliveryUsecase interface {
	CalculateFee(userID, clientAddress string) (*DeliveryQuote, error)
}

type DeliveryQuote struct {
	Fee        float64
	DistanceKm float64
}

type DefaultDeliveryUsecase struct {
	CartRepo    domain.CartRepository
	CompanyRepo domain.CompanyRepository
	Distance    DistanceCalculator
}

func NewDefaultDeliveryUsecase(
	cartRepo domain.CartRepository,
	companyRepo domain.CompanyRepository,
	distance DistanceCalculator,
) *DefaultDeliveryUsecase {
	return &DefaultDeliveryUsecase{
		CartRepo:    cartRepo,
		CompanyRepo: companyRepo,
		Distance:    distance,
	}
}

// CalculateFee quotes delivery for the client's open cart: each item's
// company is charged delivery_fee per started delivery_radius span, and
// the quote carries the most expensive fee with the farthest distance.
func (uc *DefaultDeliveryUsecase) CalculateFee(userID, clientAddress string) (*DeliveryQuote, error) {
	cart, err := uc.CartRepo.GetCartByOwner(userID, "")
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	quote := &DeliveryQuote{}
	seen := make(map[string]bool)

	for _, item := range cart.Items {
		if item.Product == nil || seen[item.Product.CompanyID] {
			continue
		}
		seen[item.Product.CompanyID] = true

		company, err := uc.CompanyRepo.GetCompanyByID(item.Product.CompanyID)
		if err != nil {
			return nil, err
		}

		distance, err := uc.Distance.DistanceKm(clientAddress, company.Address)
		if err != nil {
			return nil, err
		}
		if distance > quote.DistanceKm {
			quote.DistanceKm = distance
		}

		if company.DeliveryRadius <= 0 {
			continue
		}
		fee := company.DeliveryFee * math.Ceil(distance/company.DeliveryRadius)
		if fee > quote.Fee {
			quote.Fee = fee
		}
	}

	return quote, nil
}
