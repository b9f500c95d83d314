package film

import (
	"strings"
	"testing"
	"time"

	"videorental/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilm(t *testing.T) {
	details := NewDetails([]string{"A", "B"}, "synopsis", "Drama", 120, "PG-13", "en", "US")

	f, err := NewFilm("X", "Y", 2000, details)
	require.NoError(t, err)

	assert.False(t, f.FilmID().IsZero())
	assert.Equal(t, "X", f.Name())
	assert.Equal(t, "Y", f.Director())
	assert.Equal(t, 2000, f.Year())
	assert.True(t, f.Details().Equals(details))
}

func TestNewFilmYearBounds(t *testing.T) {
	maxYear := time.Now().Year() + 5

	_, err := NewFilm("X", "Y", 1888, Details{})
	assert.NoError(t, err, "lower boundary is inclusive")

	_, err = NewFilm("X", "Y", maxYear, Details{})
	assert.NoError(t, err, "upper boundary is inclusive")

	_, err = NewFilm("X", "Y", 1887, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewFilm("X", "Y", maxYear+1, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestNewFilmNameValidation(t *testing.T) {
	_, err := NewFilm("", "Y", 2000, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewFilm(strings.Repeat("a", 256), "Y", 2000, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewFilm(strings.Repeat("a", 255), "Y", 2000, Details{})
	assert.NoError(t, err)
}

func TestUpdateInfo(t *testing.T) {
	f, err := NewFilm("X", "Y", 2000, NewDetails(nil, "", "Drama", 0, "", "", ""))
	require.NoError(t, err)

	newDetails := NewDetails([]string{"C"}, "new", "Comedy", 90, "PG", "fr", "FR")
	events, err := f.UpdateInfo("X2", "Z", 2001, newDetails)
	require.NoError(t, err)

	assert.Equal(t, "X2", f.Name())
	assert.Equal(t, "Z", f.Director())
	assert.Equal(t, 2001, f.Year())
	assert.True(t, f.Details().Equals(newDetails), "details are replaced wholesale")

	require.Len(t, events, 1)
	updated, ok := events[0].(*UpdatedEvent)
	require.True(t, ok)
	assert.Equal(t, f.FilmID(), updated.FilmID())
	assert.Equal(t, "film.updated", updated.EventName())
	assert.False(t, updated.OccurredOn().IsZero())
}

func TestUpdateInfoRevalidates(t *testing.T) {
	f, err := NewFilm("X", "Y", 2000, Details{})
	require.NoError(t, err)

	_, err = f.UpdateInfo("", "Y", 2000, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = f.UpdateInfo("X", "Y", 1500, Details{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	// Failed updates leave the aggregate untouched.
	assert.Equal(t, "X", f.Name())
	assert.Equal(t, 2000, f.Year())
}

func TestDetailsEquality(t *testing.T) {
	a := NewDetails([]string{"A", "B"}, "s", "g", 100, "r", "l", "c")
	same := NewDetails([]string{"A", "B"}, "s", "g", 100, "r", "l", "c")
	reordered := NewDetails([]string{"B", "A"}, "s", "g", 100, "r", "l", "c")
	different := NewDetails([]string{"A", "B"}, "s", "g", 101, "r", "l", "c")

	assert.True(t, a.Equals(same))
	assert.False(t, a.Equals(reordered), "actor order is significant")
	assert.False(t, a.Equals(different))
	assert.False(t, a.Equals("not details"))
}

func TestDetailsActorsAreCopied(t *testing.T) {
	actors := []string{"A"}
	d := NewDetails(actors, "", "", 0, "", "", "")
	actors[0] = "mutated"

	assert.Equal(t, []string{"A"}, d.Actors())

	got := d.Actors()
	got[0] = "mutated again"
	assert.Equal(t, []string{"A"}, d.Actors())
}
