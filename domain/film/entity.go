package film

import (
	"strings"
	"time"

	"videorental/domain/shared"
)

// Earliest year a film can carry; the first film dates to 1888. The
// upper bound is currentYear+5, evaluated at validation time. The
// application layer applies its own hard-coded [1900, 2030] pre-check
// on top of this; the two bounds intentionally differ.
const minYear = 1888

// Film is the film aggregate root. Name, director, year and the details
// bundle change together through UpdateInfo; partial updates do not exist.
type Film struct {
	id        ID
	name      string
	director  string
	year      int
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

// NewFilm creates a film, generating its identifier and setting both
// timestamps to now. Name must be non-empty and at most 255 characters;
// the year must be within [1888, currentYear+5].
func NewFilm(name, director string, year int, details Details) (*Film, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if strings.TrimSpace(director) == "" {
		return nil, shared.NewValidationError("film", "director", "director cannot be empty")
	}

	now := time.Now()
	return &Film{
		id:        NewID(),
		name:      name,
		director:  director,
		year:      year,
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UpdateInfo replaces name, director, year and the whole details bundle,
// re-validating name and year and refreshing updated-at. It returns the
// emitted events; the caller decides what to do with them.
func (f *Film) UpdateInfo(name, director string, year int, details Details) ([]shared.DomainEvent, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if strings.TrimSpace(director) == "" {
		return nil, shared.NewValidationError("film", "director", "director cannot be empty")
	}

	f.name = name
	f.director = director
	f.year = year
	f.details = details
	f.updatedAt = time.Now()

	return []shared.DomainEvent{NewUpdatedEvent(f.id)}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidNameError("name cannot be empty")
	}
	if len(name) > 255 {
		return NewInvalidNameError("name cannot exceed 255 characters")
	}
	return nil
}

func validateYear(year int) error {
	max := time.Now().Year() + 5
	if year < minYear || year > max {
		return NewInvalidYearError(year, max)
	}
	return nil
}

func (f *Film) ID() string           { return f.id.String() }
func (f *Film) FilmID() ID           { return f.id }
func (f *Film) Name() string         { return f.name }
func (f *Film) Director() string     { return f.director }
func (f *Film) Year() int            { return f.year }
func (f *Film) Details() Details     { return f.details }
func (f *Film) CreatedAt() time.Time { return f.createdAt }
func (f *Film) UpdatedAt() time.Time { return f.updatedAt }

// ReconstructionDTO rebuilds a film from persisted state. Repository
// implementations only.
type ReconstructionDTO struct {
	ID        ID
	Name      string
	Director  string
	Year      int
	Details   Details
	CreatedAt time.Time
	UpdatedAt time.Time
}

func RebuildFromDTO(dto ReconstructionDTO) *Film {
	return &Film{
		id:        dto.ID,
		name:      dto.Name,
		director:  dto.Director,
		year:      dto.Year,
		details:   dto.Details,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

var _ shared.AggregateRoot = (*Film)(nil)
