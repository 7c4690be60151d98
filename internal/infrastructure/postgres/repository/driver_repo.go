package repository

import (
	"github.com/google/uuid"
	"github.com/mercadim/marketplace-service/internal/domain"
	"github.com/mercadim/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDriverRepository struct {
	DB *gorm.DB
}

func NewDefaultDriverRepository(db *gorm.DB) *DefaultDriverRepository {
	return &DefaultDriverRepository{DB: db}
}

func (r *DefaultDriverRepository) CreateDriver(driver *domain.Driver) (string, error) {
	driverModel := models.DriverModel{
		ID:        uuid.New().String(),
		CompanyID: driver.CompanyID,
		Name:      driver.Name,
		Phone:     driver.Phone,
		Vehicle:   driver.Vehicle,
		Plate:     driver.Plate,
		Status:    string(driver.Status),
	}
	if driver.UserID != "" {
		driverModel.UserID = &driver.UserID
	}

	if err := r.DB.Create(&driverModel).Error; err != nil {
		return "", err
	}

	driver.ID = driverModel.ID
	return driver.ID, nil
}

func (r *DefaultDriverRepository) UpdateDriver(driver *domain.Driver) error {
	return r.DB.Model(&models.DriverModel{}).
		Where("id = ?", driver.ID).
		Updates(map[string]interface{}{
			"name":    driver.Name,
			"phone":   driver.Phone,
			"vehicle": driver.Vehicle,
			"plate":   driver.Plate,
			"status":  string(driver.Status),
		}).Error
}

func (r *DefaultDriverRepository) GetDriverByID(driverID string) (*domain.Driver, error) {
	var driverModel models.DriverModel
	if err := r.DB.First(&driverModel, "id = ?", driverID).Error; err != nil {
		return nil, err
	}
	return driverToDomain(&driverModel), nil
}

func (r *DefaultDriverRepository) GetDriversByCompanyID(companyID string) ([]*domain.Driver, error) {
	var driverModels []models.DriverModel
	err := r.DB.Where("company_id = ?", companyID).Order("name").Find(&driverModels).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*domain.Driver, 0, len(driverModels))
	for i := range driverModels {
		drivers = append(drivers, driverToDomain(&driverModels[i]))
	}
	return drivers, nil
}

func driverToDomain(m *models.DriverModel) *domain.Driver {
	driver := &domain.Driver{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		Phone:     m.Phone,
		Vehicle:   m.Vehicle,
		Plate:     m.Plate,
		Status:    domain.DriverStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.UserID != nil {
		driver.UserID = *m.UserID
	}
	return driver
}
