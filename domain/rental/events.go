package rental

import (
	"time"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/shared"
)

// ReturnedEvent records a completed return, including the return date
// the penalty (if any) was computed from.
type ReturnedEvent struct {
	rentalID   ID
	customerID customer.ID
	filmID     film.ID
	returnDate shared.Date
	occurredOn time.Time
}

func NewReturnedEvent(rentalID ID, customerID customer.ID, filmID film.ID, returnDate shared.Date) *ReturnedEvent {
	return &ReturnedEvent{
		rentalID:   rentalID,
		customerID: customerID,
		filmID:     filmID,
		returnDate: returnDate,
		occurredOn: time.Now(),
	}
}

func (e *ReturnedEvent) EventName() string       { return "rental.returned" }
func (e *ReturnedEvent) OccurredOn() time.Time   { return e.occurredOn }
func (e *ReturnedEvent) AggregateID() string     { return e.rentalID.String() }
func (e *ReturnedEvent) RentalID() ID            { return e.rentalID }
func (e *ReturnedEvent) CustomerID() customer.ID { return e.customerID }
func (e *ReturnedEvent) FilmID() film.ID         { return e.filmID }
func (e *ReturnedEvent) ReturnDate() shared.Date { return e.returnDate }
