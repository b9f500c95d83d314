package film

import (
	"context"
	"errors"
	"testing"

	"videorental/domain/shared"
	"videorental/infrastructure/persistence/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *ApplicationService {
	return NewApplicationService(mocks.NewFilmRepository(), mocks.NewUnitOfWorkFactory())
}

func createFilm(t *testing.T, svc *ApplicationService, name, director string, year int, genre string, actors ...string) *FilmResponse {
	t.Helper()
	resp, err := svc.CreateFilm(context.Background(), CreateFilmRequest{
		Name:     name,
		Director: director,
		Year:     year,
		Details: DetailsDTO{
			Actors:   actors,
			Genre:    genre,
			Duration: 120,
		},
	})
	require.NoError(t, err)
	return resp
}

func TestCreateFilm(t *testing.T) {
	svc := newService()

	resp := createFilm(t, svc, "Heat", "Michael Mann", 1995, "Crime", "Al Pacino", "Robert De Niro")
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1995, resp.Year)
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, resp.Details.Actors)
}

func TestCreateFilmYearOutsideCommandBounds(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	// 1899 passes the aggregate's own check but not the command's.
	_, err := svc.CreateFilm(ctx, CreateFilmRequest{
		Name: "Old Short", Director: "Unknown", Year: 1899,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = svc.CreateFilm(ctx, CreateFilmRequest{
		Name: "Far Future", Director: "Unknown", Year: 2031,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestUpdateFilm(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created := createFilm(t, svc, "Heat", "Michael Mann", 1995, "Crime")

	updated, err := svc.UpdateFilm(ctx, created.ID, UpdateFilmRequest{
		Name:     "Heat (Director's Cut)",
		Director: "Michael Mann",
		Year:     1996,
		Details:  DetailsDTO{Genre: "Thriller"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Heat (Director's Cut)", updated.Name)
	assert.Equal(t, 1996, updated.Year)
	assert.Equal(t, "Thriller", updated.Details.Genre)
	assert.Empty(t, updated.Details.Actors, "details document is replaced wholesale")
}

func TestUpdateFilmNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.UpdateFilm(context.Background(), "0b836807-8b4f-4bb1-b2fc-6d0a28f0b24b", UpdateFilmRequest{
		Name: "Ghost", Director: "Nobody", Year: 2000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestListFilmsFilterPrecedence(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	createFilm(t, svc, "Heat", "Michael Mann", 1995, "Crime", "Al Pacino")
	createFilm(t, svc, "Collateral", "Michael Mann", 2004, "Thriller", "Tom Cruise")
	createFilm(t, svc, "The Irishman", "Martin Scorsese", 2019, "Crime", "Al Pacino")

	// Name outranks director: the director filter must be ignored.
	byName, err := svc.ListFilms(ctx, FilmQuery{Name: "heat", Director: "Martin Scorsese"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Heat", byName[0].Name)

	byDirector, err := svc.ListFilms(ctx, FilmQuery{Director: "michael mann"})
	require.NoError(t, err)
	assert.Len(t, byDirector, 2)

	byYear, err := svc.ListFilms(ctx, FilmQuery{Year: 2019})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, "The Irishman", byYear[0].Name)

	byGenre, err := svc.ListFilms(ctx, FilmQuery{Genre: "crime"})
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	byActor, err := svc.ListFilms(ctx, FilmQuery{Actor: "Tom Cruise"})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, "Collateral", byActor[0].Name)

	all, err := svc.ListFilms(ctx, FilmQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteFilm(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created := createFilm(t, svc, "Heat", "Michael Mann", 1995, "Crime")
	require.NoError(t, svc.DeleteFilm(ctx, created.ID))

	err := svc.DeleteFilm(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	_, err = svc.GetFilm(ctx, created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}
