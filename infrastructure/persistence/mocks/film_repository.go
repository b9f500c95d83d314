package mocks

import (
	"context"
	"strings"
	"sync"

	"videorental/domain/film"
)

// FilmRepository is an in-memory film.Repository.
type FilmRepository struct {
	mu    sync.RWMutex
	films map[string]*film.Film
}

func NewFilmRepository() *FilmRepository {
	return &FilmRepository{
		films: make(map[string]*film.Film),
	}
}

func (r *FilmRepository) Save(ctx context.Context, f *film.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.films[f.ID()] = f
	return nil
}

func (r *FilmRepository) FindByID(ctx context.Context, id film.ID) (*film.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.films[id.String()]
	if !ok {
		return nil, film.NewFilmNotFoundError(id.String())
	}
	return f, nil
}

func (r *FilmRepository) FindAll(ctx context.Context) ([]*film.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*film.Film, 0, len(r.films))
	for _, f := range r.films {
		result = append(result, f)
	}
	return result, nil
}

func (r *FilmRepository) FindByNameContaining(ctx context.Context, name string) ([]*film.Film, error) {
	needle := strings.ToLower(name)
	return r.filter(func(f *film.Film) bool {
		return strings.Contains(strings.ToLower(f.Name()), needle)
	}), nil
}

func (r *FilmRepository) FindByDirector(ctx context.Context, director string) ([]*film.Film, error) {
	return r.filter(func(f *film.Film) bool {
		return strings.EqualFold(f.Director(), director)
	}), nil
}

func (r *FilmRepository) FindByYear(ctx context.Context, year int) ([]*film.Film, error) {
	return r.filter(func(f *film.Film) bool {
		return f.Year() == year
	}), nil
}

func (r *FilmRepository) FindByGenre(ctx context.Context, genre string) ([]*film.Film, error) {
	return r.filter(func(f *film.Film) bool {
		return strings.EqualFold(f.Details().Genre(), genre)
	}), nil
}

func (r *FilmRepository) FindByActor(ctx context.Context, actor string) ([]*film.Film, error) {
	return r.filter(func(f *film.Film) bool {
		for _, a := range f.Details().Actors() {
			if a == actor {
				return true
			}
		}
		return false
	}), nil
}

func (r *FilmRepository) filter(keep func(*film.Film) bool) []*film.Film {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*film.Film, 0)
	for _, f := range r.films {
		if keep(f) {
			result = append(result, f)
		}
	}
	return result
}

func (r *FilmRepository) ExistsByID(ctx context.Context, id film.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.films[id.String()]
	return ok, nil
}

func (r *FilmRepository) Remove(ctx context.Context, id film.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.films[id.String()]; !ok {
		return film.NewFilmNotFoundError(id.String())
	}
	delete(r.films, id.String())
	return nil
}

var _ film.Repository = (*FilmRepository)(nil)
