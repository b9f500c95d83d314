package mysql

import (
	"context"
	"errors"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/rental"
	"videorental/domain/shared"
	"videorental/infrastructure/persistence"
	"videorental/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save upserts by primary key, so returning and cancelling go through
// the same write path as creation.
func (r *RentalRepository) Save(ctx context.Context, rr *rental.Rental) error {
	rentalPO := po.FromRentalDomain(rr)
	return r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rentalPO).Error
}

func (r *RentalRepository) FindByID(ctx context.Context, id rental.ID) (*rental.Rental, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var rentalPO po.RentalPO
	result := r.getDB(ctx).First(&rentalPO, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, rental.NewRentalNotFoundError(id.String())
		}
		return nil, result.Error
	}
	return rentalPO.ToDomain()
}

func (r *RentalRepository) FindAll(ctx context.Context) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) FindByCustomerID(ctx context.Context, customerID customer.ID) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).
		Where("customer_id = ?", customerID.String()).
		Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) FindByFilmID(ctx context.Context, filmID film.ID) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).
		Where("film_id = ?", filmID.String()).
		Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) FindByStatus(ctx context.Context, status rental.Status) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).
		Where("status = ?", string(status)).
		Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) FindByCustomerIDAndStatus(ctx context.Context, customerID customer.ID, status rental.Status) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).
		Where("customer_id = ? AND status = ?", customerID.String(), string(status)).
		Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) FindOverdue(ctx context.Context, today shared.Date) ([]*rental.Rental, error) {
	var rentalPOs []po.RentalPO
	if err := r.getDB(ctx).
		Where("status = ? AND expected_return_date < ?", string(rental.StatusActive), today.Time()).
		Find(&rentalPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(rentalPOs)
}

func (r *RentalRepository) toDomainList(rentalPOs []po.RentalPO) ([]*rental.Rental, error) {
	rentals := make([]*rental.Rental, len(rentalPOs))
	for i := range rentalPOs {
		rr, err := rentalPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		rentals[i] = rr
	}
	return rentals, nil
}

func (r *RentalRepository) ExistsByID(ctx context.Context, id rental.ID) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.RentalPO{}).
		Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *RentalRepository) Remove(ctx context.Context, id rental.ID) error {
	result := r.getDB(ctx).Delete(&po.RentalPO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rental.NewRentalNotFoundError(id.String())
	}
	return nil
}

var _ rental.Repository = (*RentalRepository)(nil)
