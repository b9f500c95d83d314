/*
Package film orchestrates film commands and queries.
*/
package film

import (
	"context"
	"time"

	"videorental/domain/film"
	"videorental/domain/shared"
)

// Command-level year bounds. Stricter than the domain's own check and
// kept that way: requests outside this window never reach the aggregate.
const (
	commandMinYear = 1900
	commandMaxYear = 2030
)

// ApplicationService Film application service - coordinates film-related processes
type ApplicationService struct {
	filmRepo   film.Repository
	uowFactory shared.UnitOfWorkFactory
}

// NewApplicationService Create film application service
func NewApplicationService(filmRepo film.Repository, uowFactory shared.UnitOfWorkFactory) *ApplicationService {
	return &ApplicationService{
		filmRepo:   filmRepo,
		uowFactory: uowFactory,
	}
}

// DetailsDTO Film details request/response DTO
type DetailsDTO struct {
	Actors   []string `json:"actors"`
	Synopsis string   `json:"synopsis"`
	Genre    string   `json:"genre"`
	Duration int      `json:"duration"`
	Rating   string   `json:"rating"`
	Language string   `json:"language"`
	Country  string   `json:"country"`
}

// CreateFilmRequest Create film request DTO
type CreateFilmRequest struct {
	Name     string     `json:"name" binding:"required,max=255"`
	Director string     `json:"director" binding:"required"`
	Year     int        `json:"year" binding:"required"`
	Details  DetailsDTO `json:"details"`
}

// UpdateFilmRequest Update film request DTO
type UpdateFilmRequest struct {
	Name     string     `json:"name" binding:"required,max=255"`
	Director string     `json:"director" binding:"required"`
	Year     int        `json:"year" binding:"required,min=1900,max=2030"`
	Details  DetailsDTO `json:"details"`
}

// FilmResponse Film response DTO
type FilmResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Director  string     `json:"director"`
	Year      int        `json:"year"`
	Details   DetailsDTO `json:"details"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FilmQuery List filter. At most one dimension is applied, in the
// declared precedence order.
type FilmQuery struct {
	Name     string
	Director string
	Year     int
	Genre    string
	Actor    string
}

func checkCommandYear(year int) error {
	if year < commandMinYear || year > commandMaxYear {
		return shared.NewValidationError("film", "year", "year must be between 1900 and 2030")
	}
	return nil
}

// CreateFilm Create film
func (s *ApplicationService) CreateFilm(ctx context.Context, req CreateFilmRequest) (*FilmResponse, error) {
	if err := checkCommandYear(req.Year); err != nil {
		return nil, err
	}

	var f *film.Film
	uow := s.uowFactory.New()
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		f, err = film.NewFilm(req.Name, req.Director, req.Year, toDetails(req.Details))
		if err != nil {
			return err
		}
		return s.filmRepo.Save(ctx, f)
	})
	if err != nil {
		return nil, err
	}

	return s.convertToResponse(f), nil
}

// UpdateFilm replaces name, director, year and the whole details document.
func (s *ApplicationService) UpdateFilm(ctx context.Context, id string, req UpdateFilmRequest) (*FilmResponse, error) {
	filmID, err := film.ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := checkCommandYear(req.Year); err != nil {
		return nil, err
	}

	var f *film.Film
	uow := s.uowFactory.New()
	err = uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		f, err = s.filmRepo.FindByID(ctx, filmID)
		if err != nil {
			return err
		}

		events, err := f.UpdateInfo(req.Name, req.Director, req.Year, toDetails(req.Details))
		if err != nil {
			return err
		}

		if err := s.filmRepo.Save(ctx, f); err != nil {
			return err
		}
		uow.Collect(events...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.convertToResponse(f), nil
}

// GetFilm Get film by id
func (s *ApplicationService) GetFilm(ctx context.Context, id string) (*FilmResponse, error) {
	filmID, err := film.ParseID(id)
	if err != nil {
		return nil, err
	}
	f, err := s.filmRepo.FindByID(ctx, filmID)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(f), nil
}

// ListFilms applies at most one filter dimension:
// name > director > year > genre > actor. An empty query lists all.
func (s *ApplicationService) ListFilms(ctx context.Context, query FilmQuery) ([]*FilmResponse, error) {
	var (
		films []*film.Film
		err   error
	)
	switch {
	case query.Name != "":
		films, err = s.filmRepo.FindByNameContaining(ctx, query.Name)
	case query.Director != "":
		films, err = s.filmRepo.FindByDirector(ctx, query.Director)
	case query.Year != 0:
		films, err = s.filmRepo.FindByYear(ctx, query.Year)
	case query.Genre != "":
		films, err = s.filmRepo.FindByGenre(ctx, query.Genre)
	case query.Actor != "":
		films, err = s.filmRepo.FindByActor(ctx, query.Actor)
	default:
		films, err = s.filmRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*FilmResponse, len(films))
	for i, f := range films {
		responses[i] = s.convertToResponse(f)
	}
	return responses, nil
}

// DeleteFilm hard-deletes the film.
func (s *ApplicationService) DeleteFilm(ctx context.Context, id string) error {
	filmID, err := film.ParseID(id)
	if err != nil {
		return err
	}

	uow := s.uowFactory.New()
	return uow.Execute(ctx, func(ctx context.Context) error {
		return s.filmRepo.Remove(ctx, filmID)
	})
}

func toDetails(dto DetailsDTO) film.Details {
	return film.NewDetails(dto.Actors, dto.Synopsis, dto.Genre,
		dto.Duration, dto.Rating, dto.Language, dto.Country)
}

// convertToResponse Convert film entity to response DTO
func (s *ApplicationService) convertToResponse(f *film.Film) *FilmResponse {
	details := f.Details()
	return &FilmResponse{
		ID:       f.ID(),
		Name:     f.Name(),
		Director: f.Director(),
		Year:     f.Year(),
		Details: DetailsDTO{
			Actors:   details.Actors(),
			Synopsis: details.Synopsis(),
			Genre:    details.Genre(),
			Duration: details.Duration(),
			Rating:   details.Rating(),
			Language: details.Language(),
			Country:  details.Country(),
		},
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}
