package domain

import "time"

type DriverStatus string

const (
	DriverActive   DriverStatus = "ativo"
	DriverInactive DriverStatus = "inativo"
)

func (s DriverStatus) IsValid() bool {
	return s == DriverActive || s == DriverInactive
}

type Driver struct {
	ID        string
	UserID    string
	CompanyID string
	Name      string
	Phone     string
	Vehicle   string
	Plate     string
	Status    DriverStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverRepository interface {
	CreateDriver(driver *Driver) (string, error)
	UpdateDriver(driver *Driver) error
	GetDriverByID(driverID string) (*Driver, error)
	GetDriversByCompanyID(companyID string) ([]*Driver, error)
}
