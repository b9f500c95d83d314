package rental

import (
	"time"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/shared"
)

// Status is the rental lifecycle state. ACTIVE is the only initial
// state; the other three are terminal.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusReturned Status = "RETURNED"
	StatusLate     Status = "LATE"
	StatusCanceled Status = "CANCELED"
)

// ParseStatus validates a status supplied on the wire.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusReturned, StatusLate, StatusCanceled:
		return Status(s), nil
	default:
		return "", NewInvalidStatusError(s)
	}
}

// penaltyPercentPerDay is the surcharge per full day of late return:
// 10% of the agreed price, linear, uncapped.
const penaltyPercentPerDay = 10

// Rental is the rental aggregate root. It references a customer and a
// film by identifier; whether those references resolve is checked by the
// command handler, not here.
type Rental struct {
	id                 ID
	customerID         customer.ID
	filmID             film.ID
	rentalDate         shared.Date
	expectedReturnDate shared.Date
	returnDate         shared.Date
	status             Status
	price              shared.Money
	penalty            shared.Money
	createdAt          time.Time
	updatedAt          time.Time
}

// NewRental creates an ACTIVE rental. Invariants enforced here: the
// expected return date must not precede the rental date, and the agreed
// price must be positive.
func NewRental(customerID customer.ID, filmID film.ID, rentalDate, expectedReturnDate shared.Date, price shared.Money) (*Rental, error) {
	if expectedReturnDate.Before(rentalDate) {
		return nil, NewInvalidDatesError()
	}
	if !price.IsPositive() {
		return nil, NewInvalidPriceError()
	}

	now := time.Now()
	return &Rental{
		id:                 NewID(),
		customerID:         customerID,
		filmID:             filmID,
		rentalDate:         rentalDate,
		expectedReturnDate: expectedReturnDate,
		status:             StatusActive,
		price:              price,
		penalty:            shared.NewMoney(0),
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// Return completes an ACTIVE rental on the given date. Returning after
// the expected date accrues a penalty of 10% of the price per full day
// late, computed as a calendar-day difference. The penalty is set once
// and never recomputed. Fails with an illegal-state error on any other
// status.
func (r *Rental) Return(date shared.Date) ([]shared.DomainEvent, error) {
	if r.status != StatusActive {
		return nil, NewNotActiveError("returned")
	}

	r.returnDate = date
	r.status = StatusReturned
	r.updatedAt = time.Now()

	if date.After(r.expectedReturnDate) {
		daysLate := date.DaysSince(r.expectedReturnDate)
		r.penalty = r.price.MultiplyPercent(daysLate * penaltyPercentPerDay)
	}

	return []shared.DomainEvent{
		NewReturnedEvent(r.id, r.customerID, r.filmID, date),
	}, nil
}

// MarkLate flips an ACTIVE rental to LATE once today is past the
// expected return date. Any other combination is a silent no-op, so the
// operation is idempotent.
func (r *Rental) MarkLate() {
	if r.status == StatusActive && shared.Today().After(r.expectedReturnDate) {
		r.status = StatusLate
		r.updatedAt = time.Now()
	}
}

// Cancel voids an ACTIVE rental. Fails with an illegal-state error on
// any other status.
func (r *Rental) Cancel() error {
	if r.status != StatusActive {
		return NewNotActiveError("canceled")
	}
	r.status = StatusCanceled
	r.updatedAt = time.Now()
	return nil
}

func (r *Rental) ID() string                      { return r.id.String() }
func (r *Rental) RentalID() ID                    { return r.id }
func (r *Rental) CustomerID() customer.ID         { return r.customerID }
func (r *Rental) FilmID() film.ID                 { return r.filmID }
func (r *Rental) RentalDate() shared.Date         { return r.rentalDate }
func (r *Rental) ExpectedReturnDate() shared.Date { return r.expectedReturnDate }
func (r *Rental) ReturnDate() shared.Date         { return r.returnDate }
func (r *Rental) Status() Status                  { return r.status }
func (r *Rental) Price() shared.Money             { return r.price }
func (r *Rental) Penalty() shared.Money           { return r.penalty }
func (r *Rental) CreatedAt() time.Time            { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time            { return r.updatedAt }

// ReconstructionDTO rebuilds a rental from persisted state. Repository
// implementations only.
type ReconstructionDTO struct {
	ID                 ID
	CustomerID         customer.ID
	FilmID             film.ID
	RentalDate         shared.Date
	ExpectedReturnDate shared.Date
	ReturnDate         shared.Date
	Status             Status
	Price              shared.Money
	Penalty            shared.Money
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func RebuildFromDTO(dto ReconstructionDTO) *Rental {
	return &Rental{
		id:                 dto.ID,
		customerID:         dto.CustomerID,
		filmID:             dto.FilmID,
		rentalDate:         dto.RentalDate,
		expectedReturnDate: dto.ExpectedReturnDate,
		returnDate:         dto.ReturnDate,
		status:             dto.Status,
		price:              dto.Price,
		penalty:            dto.Penalty,
		createdAt:          dto.CreatedAt,
		updatedAt:          dto.UpdatedAt,
	}
}

var _ shared.AggregateRoot = (*Rental)(nil)
