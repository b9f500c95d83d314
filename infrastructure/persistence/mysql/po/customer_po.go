package po

import (
	"time"

	"videorental/domain/customer"
)

// CustomerPO Customer persistence object
// Note: Only used for database mapping, does not contain any business logic
// Defining GORM associations is prohibited here
type CustomerPO struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Name       string    `gorm:"size:255;not null"`
	Email      string    `gorm:"size:255;uniqueIndex;not null"`
	Phone      string    `gorm:"size:32"`
	NationalID string    `gorm:"column:national_id;size:11;uniqueIndex;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (CustomerPO) TableName() string {
	return "customers"
}

// FromCustomerDomain Convert domain model to persistence object
func FromCustomerDomain(c *customer.Customer) *CustomerPO {
	return &CustomerPO{
		ID:         c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		NationalID: c.NationalID(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

// ToDomain Convert persistence object to domain model
func (po *CustomerPO) ToDomain() (*customer.Customer, error) {
	id, err := customer.ParseID(po.ID)
	if err != nil {
		return nil, err
	}
	return customer.RebuildFromDTO(customer.ReconstructionDTO{
		ID:         id,
		Name:       po.Name,
		Email:      po.Email,
		Phone:      po.Phone,
		NationalID: po.NationalID,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}), nil
}
