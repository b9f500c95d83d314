package po

import (
	"time"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/rental"
	"videorental/domain/shared"
)

// RentalPO Rental persistence object
// Customer and film are stored as plain ids, never as GORM associations.
// Money columns hold cents.
type RentalPO struct {
	ID                 string     `gorm:"primaryKey;size:36"`
	CustomerID         string     `gorm:"size:36;index;not null"`
	FilmID             string     `gorm:"size:36;index;not null"`
	RentalDate         time.Time  `gorm:"type:date;not null"`
	ExpectedReturnDate time.Time  `gorm:"type:date;not null"`
	ReturnDate         *time.Time `gorm:"type:date"`
	Status             string     `gorm:"size:16;index;not null"`
	PriceCents         int64      `gorm:"not null"`
	PenaltyCents       int64      `gorm:"not null;default:0"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (RentalPO) TableName() string {
	return "rentals"
}

// FromRentalDomain Convert domain model to persistence object
func FromRentalDomain(r *rental.Rental) *RentalPO {
	var returnDate *time.Time
	if !r.ReturnDate().IsZero() {
		t := r.ReturnDate().Time()
		returnDate = &t
	}
	return &RentalPO{
		ID:                 r.ID(),
		CustomerID:         r.CustomerID().String(),
		FilmID:             r.FilmID().String(),
		RentalDate:         r.RentalDate().Time(),
		ExpectedReturnDate: r.ExpectedReturnDate().Time(),
		ReturnDate:         returnDate,
		Status:             string(r.Status()),
		PriceCents:         r.Price().Cents(),
		PenaltyCents:       r.Penalty().Cents(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

// ToDomain Convert persistence object to domain model
func (po *RentalPO) ToDomain() (*rental.Rental, error) {
	id, err := rental.ParseID(po.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.ParseID(po.CustomerID)
	if err != nil {
		return nil, err
	}
	filmID, err := film.ParseID(po.FilmID)
	if err != nil {
		return nil, err
	}
	status, err := rental.ParseStatus(po.Status)
	if err != nil {
		return nil, err
	}
	var returnDate shared.Date
	if po.ReturnDate != nil {
		returnDate = shared.DateOf(*po.ReturnDate)
	}
	return rental.RebuildFromDTO(rental.ReconstructionDTO{
		ID:                 id,
		CustomerID:         customerID,
		FilmID:             filmID,
		RentalDate:         shared.DateOf(po.RentalDate),
		ExpectedReturnDate: shared.DateOf(po.ExpectedReturnDate),
		ReturnDate:         returnDate,
		Status:             status,
		Price:              shared.NewMoney(po.PriceCents),
		Penalty:            shared.NewMoney(po.PenaltyCents),
		CreatedAt:          po.CreatedAt,
		UpdatedAt:          po.UpdatedAt,
	}), nil
}
