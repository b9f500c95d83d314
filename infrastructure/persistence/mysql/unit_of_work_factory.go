package mysql

import (
	"videorental/domain/shared"

	"gorm.io/gorm"
)

type UnitOfWorkFactory struct {
	db *gorm.DB
}

func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork(f.db)
}

var _ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
