package repository

import (
	"errors"

	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAddressRepository struct {
	DB *gorm.DB
}

func NewDefaultAddressRepository(db *gorm.DB) *DefaultAddressRepository {
	return &DefaultAddressRepository{DB: db}
}

func (r *DefaultAddressRepository) GetUserAddress(userID, addressID string) (*domain.Address, error) {
	var addressModel models.AddressModel
	err := r.DB.First(&addressModel, "id = ? AND user_id = ?", addressID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.Address{
		ID:     addressModel.ID,
		UserID: addressModel.UserID,
		Line:   addressModel.Line,
	}, nil
}
