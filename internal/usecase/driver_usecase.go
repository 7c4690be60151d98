package usecase

import "github.com/mercadim/marketplace-service/internal/domain"

type DriverUsecase interface {
	CreateDriver(companyID string, input *DriverInput) (*domain.Driver, error)
	UpdateDriver(companyID, driverID string, input *DriverInput) (*domain.Driver, error)
	GetDriversByCompanyID(companyID string) ([]*domain.Driver, error)
}

type DriverInput struct {
	Name    string
	Phone   string
	Vehicle string
	Plate   string
	Status  string
}

type DefaultDriverUsecase struct {
	DriverRepo domain.DriverRepository
}

func NewDefaultDriverUsecase(driverRepo domain.DriverRepository) *DefaultDriverUsecase {
	return &DefaultDriverUsecase{DriverRepo: driverRepo}
}

func (uc *DefaultDriverUsecase) CreateDriver(companyID string, input *DriverInput) (*domain.Driver, error) {
	status := domain.DriverStatus(input.Status)
	if input.Status == "" {
		status = domain.DriverActive
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	driver := &domain.Driver{
		CompanyID: companyID,
		Name:      input.Name,
		Phone:     input.Phone,
		Vehicle:   input.Vehicle,
		Plate:     input.Plate,
		Status:    status,
	}
	driverID, err := uc.DriverRepo.CreateDriver(driver)
	if err != nil {
		return nil, err
	}
	driver.ID = driverID
	return driver, nil
}

func (uc *DefaultDriverUsecase) UpdateDriver(companyID, driverID string, input *DriverInput) (*domain.Driver, error) {
	driver, err := uc.DriverRepo.GetDriverByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	if input.Status != "" {
		status := domain.DriverStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		driver.Status = status
	}
	driver.Name = input.Name
	driver.Phone = input.Phone
	driver.Vehicle = input.Vehicle
	driver.Plate = input.Plate

	if err := uc.DriverRepo.UpdateDriver(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (uc *DefaultDriverUsecase) GetDriversByCompanyID(companyID string) ([]*domain.Driver, error) {
	return uc.DriverRepo.GetDriversByCompanyID(companyID)
}
