package mysql

import (
	"context"
	"errors"
	"strings"

	"videorental/domain/film"
	"videorental/infrastructure/persistence"
	"videorental/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

func (r *FilmRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save upserts by primary key and replaces the whole row, details
// document included.
func (r *FilmRepository) Save(ctx context.Context, f *film.Film) error {
	filmPO, err := po.FromFilmDomain(f)
	if err != nil {
		return err
	}
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(filmPO).Error
}

func (r *FilmRepository) FindByID(ctx context.Context, id film.ID) (*film.Film, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var filmPO po.FilmPO
	result := r.getDB(ctx).First(&filmPO, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, film.NewFilmNotFoundError(id.String())
		}
		return nil, result.Error
	}
	return filmPO.ToDomain()
}

func (r *FilmRepository) FindAll(ctx context.Context) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	if err := r.getDB(ctx).Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) FindByNameContaining(ctx context.Context, name string) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	if err := r.getDB(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) FindByDirector(ctx context.Context, director string) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	if err := r.getDB(ctx).
		Where("LOWER(director) = ?", strings.ToLower(director)).
		Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) FindByYear(ctx context.Context, year int) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	if err := r.getDB(ctx).Where("year = ?", year).Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) FindByGenre(ctx context.Context, genre string) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	if err := r.getDB(ctx).
		Where("LOWER(JSON_UNQUOTE(JSON_EXTRACT(details, '$.genre'))) = ?", strings.ToLower(genre)).
		Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) FindByActor(ctx context.Context, actor string) ([]*film.Film, error) {
	var filmPOs []po.FilmPO
	// JSON_SEARCH is case-sensitive, so actor names must match as stored.
	if err := r.getDB(ctx).
		Where("JSON_SEARCH(JSON_EXTRACT(details, '$.actors'), 'one', ?) IS NOT NULL", actor).
		Find(&filmPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(filmPOs)
}

func (r *FilmRepository) toDomainList(filmPOs []po.FilmPO) ([]*film.Film, error) {
	films := make([]*film.Film, len(filmPOs))
	for i := range filmPOs {
		f, err := filmPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		films[i] = f
	}
	return films, nil
}

func (r *FilmRepository) ExistsByID(ctx context.Context, id film.ID) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.FilmPO{}).
		Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FilmRepository) Remove(ctx context.Context, id film.ID) error {
	result := r.getDB(ctx).Delete(&po.FilmPO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return film.NewFilmNotFoundError(id.String())
	}
	return nil
}

var _ film.Repository = (*FilmRepository)(nil)
