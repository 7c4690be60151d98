package order

import (
	"context"
	"time"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/pix"
)

// GeneratePixCode builds a scannable payment code for the order against
// its store's pix key. Codes are not stored: every call produces a fresh
// payload with a fresh expiry.
func (uc *DefaultOrderUsecase) GeneratePixCode(ctx context.Context, orderID, actingUserID string) (pix.GeneratedCode, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return pix.GeneratedCode{}, err
	}

	if order.UserID != actingUserID {
		return pix.GeneratedCode{}, domain.ErrForbidden
	}

	store := order.Store
	if store == nil {
		store, err = uc.CompanyRepo.GetCompanyByID(order.StoreID)
		if err != nil {
			return pix.GeneratedCode{}, err
		}
	}

	if store.PixKey == "" {
		return pix.GeneratedCode{}, domain.ErrMissingPixKey
	}

	profile := store.PaymentProfile()
	code, err := pix.BuildCode(
		pix.MerchantProfile{
			PixKey:      profile.PixKey,
			DisplayName: profile.DisplayName,
			AddressLine: profile.AddressLine,
			StateCode:   profile.StateCode,
		},
		pix.TransactionRequest{
			Amount:        order.Total,
			ReferenceCode: order.Code,
		},
		time.Now().UTC(),
	)
	if err != nil {
		return pix.GeneratedCode{}, err
	}

	uc.Metrics.RecordPixCodeGenerated(order.StoreID)
	return code, nil
}
