package film

import "time"

// UpdatedEvent records that a film's information was replaced. It is
// returned by UpdateInfo; the unit of work logs it after commit.
type UpdatedEvent struct {
	filmID     ID
	occurredOn time.Time
}

func NewUpdatedEvent(filmID ID) *UpdatedEvent {
	return &UpdatedEvent{
		filmID:     filmID,
		occurredOn: time.Now(),
	}
}

func (e *UpdatedEvent) EventName() string     { return "film.updated" }
func (e *UpdatedEvent) OccurredOn() time.Time { return e.occurredOn }
func (e *UpdatedEvent) AggregateID() string   { return e.filmID.String() }
func (e *UpdatedEvent) FilmID() ID            { return e.filmID }
