package mysql

import (
	"context"
	"errors"
	"strings"

	"videorental/domain/customer"
	"videorental/infrastructure/persistence"
	"videorental/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Duplicate entry") ||
		strings.Contains(errStr, "1062")
}

// Save upserts by primary key: the whole row is replaced and the last
// writer wins.
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	customerPO := po.FromCustomerDomain(c)

	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(customerPO).Error
	if err != nil {
		if isDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "email") {
				return customer.NewEmailAlreadyExistsError(customerPO.Email)
			}
			return customer.NewNationalIDAlreadyExistsError(customerPO.NationalID)
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var customerPO po.CustomerPO
	result := r.getDB(ctx).First(&customerPO, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.NewCustomerNotFoundError(id.String())
		}
		return nil, result.Error
	}
	return customerPO.ToDomain()
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	result := r.getDB(ctx).First(&customerPO, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.NewCustomerNotFoundError(email)
		}
		return nil, result.Error
	}
	return customerPO.ToDomain()
}

func (r *CustomerRepository) FindByNationalID(ctx context.Context, nationalID string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	result := r.getDB(ctx).First(&customerPO, "national_id = ?", nationalID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.NewCustomerNotFoundError(nationalID)
		}
		return nil, result.Error
	}
	return customerPO.ToDomain()
}

func (r *CustomerRepository) FindByNameContaining(ctx context.Context, name string) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := r.getDB(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Find(&customerPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(customerPOs)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := r.getDB(ctx).Find(&customerPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(customerPOs)
}

func (r *CustomerRepository) toDomainList(customerPOs []po.CustomerPO) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, len(customerPOs))
	for i := range customerPOs {
		c, err := customerPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		customers[i] = c
	}
	return customers, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id customer.ID) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.CustomerPO{}).
		Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.CustomerPO{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.CustomerPO{}).
		Where("national_id = ?", nationalID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) Remove(ctx context.Context, id customer.ID) error {
	result := r.getDB(ctx).Delete(&po.CustomerPO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.NewCustomerNotFoundError(id.String())
	}
	return nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
